/*
File: errors.go
Version: 1.0.0
Description: Error kinds raised while loading a URL corpus.
*/

package main

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInputFile means a corpus path does not resolve to a readable file.
	ErrMissingInputFile = errors.New("missing input file")
	// ErrDecoding means corpus content could not be read as text.
	ErrDecoding = errors.New("cannot decode input")
)

// CorpusError carries the corpus, path and (for decoding failures) the 1-based
// line where loading stopped. Kind is one of the sentinels above.
type CorpusError struct {
	Corpus string
	Path   string
	Line   int
	Kind   error
	Err    error
}

func (e *CorpusError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = e.Corpus
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s corpus: %v: %s", e.Corpus, e.Kind, loc)
	}
	return fmt.Sprintf("%s corpus: %v: %s: %v", e.Corpus, e.Kind, loc, e.Err)
}

func (e *CorpusError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// exitCodeFor maps a failed run to the process exit status.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrDecoding):
		return 2
	default:
		return 1
	}
}
