package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zostay/bible-refs/internal/filters"
)

var dataFile string

func initRender(cmd *cobra.Command) {
	renderCmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Render a template with the bible_refs and other filters",
		Long: `Render a Go text/template with these functions available:

  bible_refs TEXT [LINK]    link the ★-delimited references in TEXT
  bible_ref TEXT [LINK]     link TEXT, which is a single reference
  markdown TEXT [INLINE]    convert markdown to HTML
  replace_all TEXT RE REP   regular expression replacement
  base64_encode TEXT
  base64_decode TEXT

Template data is read from the YAML file named by --data.`,
		Args: cobra.ExactArgs(1),
		RunE: RunRender,
	}

	renderCmd.Flags().StringVar(&dataFile, "data", "", "a YAML file holding the template data")

	cmd.AddCommand(renderCmd)
}

func RunRender(cmd *cobra.Command, args []string) error {
	tmpl, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var data map[string]any
	if dataFile != "" {
		bs, err := os.ReadFile(dataFile)
		if err != nil {
			return err
		}

		if err := yaml.Unmarshal(bs, &data); err != nil {
			return fmt.Errorf("unable to parse %s: %w", dataFile, err)
		}
	}

	return filters.Render(cmd.OutOrStdout(), args[0], string(tmpl), data)
}
