package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/bible-refs/internal/config"
	"github.com/zostay/bible-refs/internal/console"
	"github.com/zostay/bible-refs/internal/filters"
	"github.com/zostay/bible-refs/internal/fssafe"
	"github.com/zostay/bible-refs/pkg/bibleref"
)

var (
	noLink   bool
	bare     bool
	markdown bool
	inline   bool
	inPlace  bool
	dryRun   bool
)

func initRewrite(cmd *cobra.Command) {
	rewriteCmd := &cobra.Command{
		Use:   "rewrite [file...]",
		Short: "Turn ★-delimited references into links",
		Long: `Turn ★-delimited references into links to the World English Bible.

Reads standard input when no files are named. A reference may carry a
separate target, as in ★verse 1 <Genesis 1:1>★, in which case "verse 1" is
displayed and the target becomes the title of the link.`,
		RunE: RunRewrite,
	}

	rewriteCmd.Flags().BoolVar(&noLink, "no-link", false, "emit styled spans instead of links")
	rewriteCmd.Flags().BoolVar(&bare, "bare", false, "treat each line as a single reference without ★ markers")
	rewriteCmd.Flags().BoolVar(&markdown, "markdown", false, "convert the input from markdown to HTML first")
	rewriteCmd.Flags().BoolVar(&inline, "inline", false, "strip the paragraph wrapping from the markdown output")
	rewriteCmd.Flags().BoolVarP(&inPlace, "in-place", "i", false, "rewrite the files in place, keeping a .old backup")
	rewriteCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "with --in-place, only report which files would change")

	cmd.AddCommand(rewriteCmd)
}

// pipeline builds the transformation from the configuration: markdown, then
// reference rewriting, then the replace rules.
func pipeline(cfg *config.Config, byLine bool) func(string) (string, error) {
	opts := []bibleref.Option{bibleref.WithLink(cfg.LinkEnabled())}

	return func(s string) (string, error) {
		var err error
		if cfg.Markdown {
			s, err = filters.Markdown(s, cfg.Inline)
			if err != nil {
				return "", err
			}
		}

		if byLine {
			s, err = rewriteLines(s, opts)
		} else {
			s, err = bibleref.Rewrite(s, opts...)
		}
		if err != nil {
			return "", err
		}

		for _, r := range cfg.Replace {
			s, err = filters.ReplaceAll(s, r.Regex, r.Rep)
			if err != nil {
				return "", err
			}
		}

		return s, nil
	}
}

// rewriteLines treats every non-blank line as a bare reference. Whitespace
// around the reference, including the \r of a CRLF line ending, is kept as is.
func rewriteLines(s string, opts []bibleref.Option) (string, error) {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		ref := strings.TrimSpace(line)
		if ref == "" {
			continue
		}

		out, err := bibleref.RewriteBare(ref, opts...)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}

		start := strings.Index(line, ref)
		lines[i] = line[:start] + out + line[start+len(ref):]
	}
	return strings.Join(lines, "\n"), nil
}

func RunRewrite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("no-link") {
		cfg.SetLink(!noLink)
	}
	if cmd.Flags().Changed("markdown") {
		cfg.Markdown = markdown
	}
	if cmd.Flags().Changed("inline") {
		cfg.Inline = inline
	}

	fn := pipeline(cfg, bare)
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		if inPlace {
			return errors.New("--in-place needs at least one file")
		}

		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}

		s, err := fn(string(in))
		if err != nil {
			return err
		}

		_, err = io.WriteString(out, s)
		return err
	}

	for _, file := range args {
		if inPlace {
			if err := rewriteInPlace(cmd, file, fn); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			continue
		}

		in, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		s, err := fn(string(in))
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		if _, err := io.WriteString(out, s); err != nil {
			return err
		}
	}

	return nil
}

func rewriteInPlace(cmd *cobra.Command, file string, fn func(string) (string, error)) error {
	ls := fssafe.NewFileSystemLoaderSaver(file)
	if dryRun {
		ls = fssafe.NewLoaderSaver(ls.Loader, func() (io.WriteCloser, error) {
			return nopWriteCloser{io.Discard}, nil
		})
	}

	saved, err := fssafe.Transform(ls, fn)
	if err != nil {
		return err
	}

	switch {
	case saved && dryRun:
		console.Palette.Fcolor(cmd.ErrOrStderr(), "warn", "would rewrite ", "file", file, "base", "\n")
	case saved:
		if verbose > 0 {
			console.Palette.Fcolor(cmd.ErrOrStderr(), "pass", "rewrote ", "file", file, "base", "\n")
		}
	default:
		if verbose > 0 {
			console.Palette.Fcolor(cmd.ErrOrStderr(), "meh", "unchanged ", "file", file, "base", "\n")
		}
	}

	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
