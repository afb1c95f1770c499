/*
File: report.go
Version: 1.0.0
Description: Renders the keyword list to an output stream as text or JSON.
*/

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

const reportHeader = "Suspicious Keywords Extracted:"

const (
	FormatText = "text"
	FormatJSON = "json"
)

type jsonReport struct {
	Header   string    `json:"header"`
	Keywords []Keyword `json:"keywords"`
}

// WriteReport writes the header followed by one ('token', count) line per
// keyword, or a single JSON document when format is "json".
func WriteReport(w io.Writer, keywords []Keyword, format string) error {
	switch format {
	case "", FormatText:
		return writeTextReport(w, keywords)
	case FormatJSON:
		return writeJSONReport(w, keywords)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeTextReport(w io.Writer, keywords []Keyword) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, reportHeader)
	for _, k := range keywords {
		fmt.Fprintf(bw, "('%s', %d)\n", k.Token, k.Count)
	}
	return bw.Flush()
}

func writeJSONReport(w io.Writer, keywords []Keyword) error {
	if keywords == nil {
		keywords = []Keyword{}
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(jsonReport{Header: reportHeader, Keywords: keywords}); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
