package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/bible-refs/internal/console"
	"github.com/zostay/bible-refs/pkg/bibleref"
)

// ErrBadCitations is returned by check when any citation fails.
var ErrBadCitations = errors.New("found citations that cannot be linked")

func initCheck(cmd *cobra.Command) {
	checkCmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Report every citation that cannot be linked",
		RunE:  RunCheck,
	}

	cmd.AddCommand(checkCmd)
}

// checkText reports the problems in one document and returns the number of
// bad citations found.
func checkText(w io.Writer, name, text string) int {
	cerrs := bibleref.CheckErrors(bibleref.Check(text))

	if verbose > 0 {
		total := len(bibleref.FindCitations(text))
		console.Palette.Fcolor(w,
			"file", name,
			"label", ": citations=", "value", fmt.Sprint(total),
			"label", " bad=", "value", fmt.Sprint(len(cerrs)),
			"base", "\n",
		)
	}

	for _, cerr := range cerrs {
		console.Palette.Fcolor(w,
			"file", name, "base", ": ",
			"citation", cerr.Span, "base", ": ",
			"fail", cerr.Error(), "base", "\n",
		)
	}

	return len(cerrs)
}

func RunCheck(cmd *cobra.Command, args []string) error {
	w := cmd.ErrOrStderr()

	bad := 0
	if len(args) == 0 {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		bad += checkText(w, "-", string(in))
	}

	for _, file := range args {
		in, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		bad += checkText(w, file, string(in))
	}

	if bad > 0 {
		return fmt.Errorf("%w: %d", ErrBadCitations, bad)
	}

	if verbose > 0 {
		console.Palette.Fcolor(w, "pass", "all citations are good", "base", "\n")
	}

	return nil
}
