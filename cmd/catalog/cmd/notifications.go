package cmd

import (
	"github.com/spf13/cobra"
)

// notificationsCmd represents the notifications command
var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show the latest scheme notifications",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := newClient().ListNotifications(cmd.Context())
		if err != nil {
			return err
		}
		return printNotifications(cmd.OutOrStdout(), items)
	},
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
}
