package cmd

import (
	"fmt"

	"catalog/internal/api"

	"github.com/spf13/cobra"
)

// schemesAddCmd represents the schemes add command
var schemesAddCmd = &cobra.Command{
	Use:   "add <title> <description>",
	Short: "Add a scheme",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().CreateScheme(cmd.Context(), api.CreateSchemeRequest{
			Title:       args[0],
			Description: args[1],
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s! Category: %s\n", out.Message, out.Category)
		return nil
	},
}

func init() {
	schemesCmd.AddCommand(schemesAddCmd)
}
