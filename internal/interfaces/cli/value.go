package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/CrawlValue-Intelligence/internal/domain/detection"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/types/common"
)

// newValueCommand prices one crawler access end to end: detection,
// classification, and valuation for the given URI and agent.
func newValueCommand(configPath *string) *cobra.Command {
	var (
		userAgent string
		uri       string
	)

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Price one crawler access against the configured rate table",
		Example: `  crawlvalue value --uri /research/llm-study --user-agent "GPTBot/1.0"
  crawlvalue value --uri /images/skyline.jpg --user-agent "ClaudeBot/1.0"`,
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
				Timestamp: common.Timestamp(time.Now().UTC()),
			})
			if err != nil {
				return err
			}
			if !item.Detection.IsBot {
				cmd.Println("agent was not classified as a crawler; nothing to price")
				return printJSON(cmd.OutOrStdout(), item.Detection)
			}
			return printJSON(cmd.OutOrStdout(), item)
		},
	}

	cmd.Flags().StringVarP(&userAgent, "user-agent", "u", "GPTBot/1.0", "crawler user agent")
	cmd.Flags().StringVar(&uri, "uri", "", "URI of the accessed content")
	_ = cmd.MarkFlagRequired("uri")
	return cmd
}

//Personal.AI order the ending
