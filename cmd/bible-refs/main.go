// Package main provides a tool for linking scripture references in text.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/bible-refs/internal/config"
	"github.com/zostay/bible-refs/internal/console"
)

var (
	configFile string
	envFile    string
	verbose    int
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bible-refs",
		Short:         "Link the scripture references in my writing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultConfigPath(), "the configuration file")
	cmd.PersistentFlags().StringVar(&envFile, "env", config.DefaultEnvPath(), "the dotenv file with setting overrides")
	cmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "enable debugging verbose mode")

	initRewrite(cmd)
	initCheck(cmd)
	initLookup(cmd)
	initBooks(cmd)
	initRender(cmd)

	return cmd
}

// loadConfig loads the configuration named by the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadAll(configFile, envFile)
	if err != nil {
		return nil, err
	}

	if verbose > 1 {
		console.Palette.Fcolor(cmd.ErrOrStderr(),
			"label", "config: ", "file", configFile,
			"label", " link=", "value", fmt.Sprint(cfg.LinkEnabled()),
			"label", " markdown=", "value", fmt.Sprint(cfg.Markdown),
			"label", " replace rules=", "value", fmt.Sprint(len(cfg.Replace)),
			"base", "\n",
		)
	}

	return cfg, nil
}

func main() {
	err := newCommand().Execute()
	if err != nil {
		console.Palette.Fprintf("fail", os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
