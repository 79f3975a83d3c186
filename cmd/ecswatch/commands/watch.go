package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ecswatch/internal/app"
)

// bindWatch attaches the watch flags and run function to the root command.
func (c *CLI) bindWatch(cmd *cobra.Command) {
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cluster, _ := cmd.Flags().GetString("cluster")
		region, _ := cmd.Flags().GetString("region")
		profile, _ := cmd.Flags().GetString("profile")
		interval, _ := cmd.Flags().GetInt("interval")
		oneShot, _ := cmd.Flags().GetBool("one-shot")
		detail, _ := cmd.Flags().GetBool("detail")
		logJSON, _ := cmd.Flags().GetBool("log-json")

		return c.app.Watch(cmd.Context(), app.WatchOptions{
			Cluster:         cluster,
			Region:          region,
			Profile:         profile,
			IntervalSeconds: interval,
			OneShot:         oneShot,
			Detail:          detail,
			LogJSON:         logJSON,
		})
	}

	cmd.Flags().StringP("cluster", "c", "", "Cluster name to watch (env: AWS_ECS_CLUSTER)")
	cmd.Flags().StringP("region", "r", "", "AWS region to target (env: AWS_DEFAULT_REGION)")
	cmd.Flags().StringP("profile", "p", "", "AWS credential profile (env: AWS_PROFILE)")
	cmd.Flags().IntP("interval", "i", 0, "Poll interval in seconds (default 2)")
	cmd.Flags().BoolP("one-shot", "o", false, "Print the summary once and exit")
	cmd.Flags().BoolP("detail", "d", false, "Print the full task description response")
	cmd.Flags().Bool("log-json", false, "Write diagnostic logs as JSON")
}
