package split

import (
	"fmt"
	"strings"
)

// A ProportionConfigError reports partition proportions that do not sum to 1
type ProportionConfigError struct {
	Proportions Proportions
}

func (e *ProportionConfigError) Error() string {
	p := e.Proportions
	return fmt.Sprintf("partition proportions %v+%v+%v sum to %v, must be non-negative and sum to 1 (tolerance %v)",
		p.Train, p.Dev, p.Test, p.Sum(), TOLERANCE)
}

// A LanguageError ties a failure to the language being processed
type LanguageError struct {
	Lang string
	Err  error
}

func (e *LanguageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Lang, e.Err)
}

func (e *LanguageError) Unwrap() error {
	return e.Err
}

// BatchErrors collects the per-language failures of a multi-language run
type BatchErrors []*LanguageError

func (b BatchErrors) Error() string {
	msgs := make([]string, len(b))
	for i, err := range b {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d language(s) failed:\n\t%s", len(b), strings.Join(msgs, "\n\t"))
}

func (b BatchErrors) Langs() []string {
	retval := make([]string, len(b))
	for i, err := range b {
		retval[i] = err.Lang
	}
	return retval
}
