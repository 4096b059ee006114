// Command yaml-nested converts YAML configuration files between nested
// mappings and the flattened dot-path form.
package main

import "github.com/infinilabs/yaml-nested/internal/cli"

func main() {
	cli.Execute()
}
