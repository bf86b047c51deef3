package cli

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/detection"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/errors"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// newReportCommand replays an access-event log through the pipeline and
// prints the resulting portfolio analysis.
func newReportCommand(configPath *string) *cobra.Command {
	var (
		inputPath string
		atFlag    string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build a portfolio report from a JSON access-event log",
		Long: `report reads a JSON array of access events ({"user_agent", "uri",
"ip_address", "timestamp"}), runs every event through detection and
valuation, and prints the aggregated portfolio analysis.`,
		Example: `  crawlvalue report --input access-events.json
  crawlvalue report --input events.json --at 2026-08-31T00:00:00Z`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			events, err := readEvents(inputPath)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if atFlag != "" {
				now, err = time.Parse(time.RFC3339, atFlag)
				if err != nil {
					return errors.Wrap(err, errors.ErrCodeValidation, "invalid --at timestamp").
						WithDetail(atFlag)
				}
			}

			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			if _, err := a.service.ProcessBatch(ctx, events); err != nil {
				return err
			}
			analysis, err := a.service.AnalyzePortfolio(ctx, common.DateRange{}, now)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), analysis)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the JSON access-event log")
	cmd.Flags().StringVar(&atFlag, "at", "", "analysis reference time (RFC 3339); defaults to now")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func readEvents(path string) ([]detection.AccessEvent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "failed to read event log").WithDetail(path)
	}
	var events []detection.AccessEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "event log is not a JSON array of access events").
			WithDetail(path)
	}
	return events, nil
}

//Personal.AI order the ending
