package cmd

import (
	"github.com/spf13/cobra"
)

// schemesCmd represents the schemes command
var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List and add catalog schemes",
	Long: `The schemes command reads and writes the scheme catalog.

Available subcommands:
  list  List schemes, optionally of one category
  add   Add a scheme; the server assigns its category

Examples:
  catalog schemes list
  catalog schemes list --category Category_2 --format json
  catalog schemes add "Solar roofs" "Subsidised rooftop panels for households"`,
}

func init() {
	rootCmd.AddCommand(schemesCmd)
}
