package cmd

import (
	"net/http"
	"os"
	"time"

	"catalog/internal/api"

	"github.com/spf13/cobra"
)

const defaultServerURL = "http://localhost:7521"

var (
	serverURL    string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Scheme catalog CLI",
	Long: `catalog is a command-line client for the scheme catalog server.

Available commands:
  schemes        List and add schemes
  train          Re-train the categorizer on every stored scheme
  notifications  Show the latest scheme notifications
  seed           Add every scheme of a YAML file

The server address is taken from --url, then $CATALOG_URL, then ` + defaultServerURL + `.

Use "catalog [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newClient() *api.Client {
	return api.NewClient(serverURL, api.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "url", envOr("CATALOG_URL", defaultServerURL), "Catalog server base URL")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (table, json)")
}
