package cmd

import (
	"github.com/spf13/cobra"
)

var listCategory string

// schemesListCmd represents the schemes list command
var schemesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schemes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemes, err := newClient().ListSchemes(cmd.Context(), listCategory)
		if err != nil {
			return err
		}
		return printSchemes(cmd.OutOrStdout(), schemes)
	},
}

func init() {
	schemesCmd.AddCommand(schemesListCmd)

	schemesListCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only list schemes of this category")
}
