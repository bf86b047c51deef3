package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/detection"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// newDetectCommand classifies a single user agent and reports the verdict.
func newDetectCommand(configPath *string) *cobra.Command {
	var (
		userAgent string
		uri       string
		ipAddress string
	)

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Classify one user agent as AI-crawler traffic or not",
		Example: `  crawlvalue detect --user-agent "GPTBot/1.0"
  crawlvalue detect --user-agent "Mozilla/5.0 ..." --uri /blog/tutorial-go`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.close()

			item, err := a.service.ProcessAccess(ctx, detection.AccessEvent{
				UserAgent: userAgent,
				URI:       uri,
				IPAddress: ipAddress,
				Timestamp: common.Timestamp(time.Now().UTC()),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), item.Detection)
		},
	}

	cmd.Flags().StringVarP(&userAgent, "user-agent", "u", "", "user agent string to classify")
	cmd.Flags().StringVar(&uri, "uri", "", "accessed URI")
	cmd.Flags().StringVar(&ipAddress, "ip", "", "client IP address")
	_ = cmd.MarkFlagRequired("user-agent")
	return cmd
}

//Personal.AI order the ending
