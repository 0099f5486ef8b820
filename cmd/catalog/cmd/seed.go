package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"catalog/internal/api"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var seedTrain bool

// seedFile is the layout of a seed file.
type seedFile struct {
	Schemes []api.CreateSchemeRequest `yaml:"schemes"`
}

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed <file.yaml>",
	Short: "Add every scheme listed in a YAML file",
	Long: `Add every scheme listed in a YAML file, in file order.

The file holds a single "schemes" list:

  schemes:
    - title: Solar roofs
      description: Subsidised rooftop panels for households

With --train the categorizer is trained once all schemes are added.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schemes, err := readSeedFile(args[0])
		if err != nil {
			return err
		}

		client := newClient()
		out := cmd.OutOrStdout()
		for i, s := range schemes {
			res, err := client.CreateScheme(cmd.Context(), s)
			if err != nil {
				return fmt.Errorf("scheme %d (%q): %w", i+1, s.Title, err)
			}
			fmt.Fprintf(out, "added %q (%s)\n", s.Title, res.Category)
		}
		fmt.Fprintf(out, "%d scheme(s) added\n", len(schemes))

		if !seedTrain {
			return nil
		}
		res, err := client.TrainModel(cmd.Context())
		if err != nil {
			return fmt.Errorf("train: %w", err)
		}
		fmt.Fprintln(out, res.Message)
		return nil
	},
}

func readSeedFile(path string) ([]api.CreateSchemeRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Schemes) == 0 {
		return nil, errors.New("seed file lists no schemes")
	}
	for i, s := range file.Schemes {
		if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.Description) == "" {
			return nil, fmt.Errorf("scheme %d: title and description are required", i+1)
		}
	}
	return file.Schemes, nil
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&seedTrain, "train", false, "Train the model after seeding")
}
