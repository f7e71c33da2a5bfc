package bibleref

import "errors"

// Check resolves every citation in text without rewriting it. Unlike Rewrite,
// it does not stop at the first problem: all the errors are joined together
// in the order the citations appear. It returns nil when every citation is
// good.
func Check(text string) error {
	var errs []error
	for _, c := range FindCitations(text) {
		if _, _, err := resolve(c, "bible_refs"); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CheckErrors unpacks the error returned by Check into the individual
// citation errors.
func CheckErrors(err error) []*CitationError {
	if err == nil {
		return nil
	}

	var errs []error
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		errs = j.Unwrap()
	} else {
		errs = []error{err}
	}

	cerrs := make([]*CitationError, 0, len(errs))
	for _, e := range errs {
		var cerr *CitationError
		if errors.As(e, &cerr) {
			cerrs = append(cerrs, cerr)
		}
	}
	return cerrs
}
