package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/infinilabs/yaml-nested/internal/log"
)

func newUnflattenCommand(app *App) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "unflatten [file]",
		Short: "Rebuild nested YAML from dot-path keys",
		Long: `Rebuild a nested YAML document from a flattened mapping. Keys keep
their order of first appearance. Reads from stdin when no file is given.

Fails when keys conflict, e.g. when both "a.b" and "a.b.c" hold values.

Example:
  yaml-nested unflatten config.flat.yml -o config.yml`,
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

			nested, err := app.converter().UnflattenNode(&doc)
			if err != nil {
				return err
			}
			log.GetLogger().Debugf("rebuilt nested document with %d top-level keys", len(nested.Content)/2)

			rendered, err := encodeNode(nested, app.Config.Output.Indent)
			if err != nil {
				return err
			}
			return writeOutput(app, outputPath, rendered)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write result to file instead of stdout")
	return cmd
}
