package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/infinilabs/yaml-nested/internal/log"
)

func newFlattenCommand(app *App) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Flatten nested YAML into dot-path keys",
		Long: `Flatten a nested YAML document into a single-level mapping whose keys
are dot-joined paths, sorted alphabetically. Reads from stdin when no file
is given.

Example:
  yaml-nested flatten elasticsearch.yml
  cat config.yml | yaml-nested flatten -o config.flat.yml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var doc yaml.Node
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("failed to parse YAML: %w", err)
			}

			flat, err := app.converter().Flatten(&doc)
			if err != nil {
				return err
			}
			log.GetLogger().Debugf("flattened %d keys", len(flat))

			rendered, err := encodeNode(flat.Node(), app.Config.Output.Indent)
			if err != nil {
				return err
			}
			return writeOutput(app, outputPath, rendered)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write result to file instead of stdout")
	return cmd
}
