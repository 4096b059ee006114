package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCheckCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file> [file...]",
		Short: "Check that config keys normalize without conflicts",
		Long: `Check verifies that each file's keys, nested or flattened, normalize
into a single well-formed nested document. A conflict is reported when one
key's path is a strict prefix of another's, e.g. "a.b" alongside "a.b.c".

Example:
  yaml-nested check elasticsearch.yml overrides.yml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				keys, err := app.checkFile(path)
				if err != nil {
					failed++
					fmt.Fprintf(app.Out, "%s %s  %s\n", app.render(failStyle, "✗"), path, err)
					continue
				}
				fmt.Fprintf(app.Out, "%s %s  %s\n", app.render(okStyle, "✓"), path,
					app.render(dimStyle, fmt.Sprintf("%d keys", keys)))
			}

			fmt.Fprintf(app.Out, "checked %d file(s): %d ok, %d conflicted\n",
				len(args), len(args)-failed, failed)
			if failed > 0 {
				return NewExitError(1)
			}
			return nil
		},
	}
}

// checkFile normalizes one file and returns its flattened key count.
func (a *App) checkFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("failed to parse YAML: %w", err)
	}

	conv := a.converter()
	flat, err := conv.Flatten(&doc)
	if err != nil {
		return 0, err
	}
	if _, err := conv.Unflatten(flat.Entries()); err != nil {
		return 0, err
	}
	return len(flat), nil
}
