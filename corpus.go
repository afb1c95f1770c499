/*
File: corpus.go
Version: 1.0.0
Description: Loads a line-delimited URL corpus into a frequency table.
             Files are streamed line by line; non UTF-8 inputs are decoded
             through golang.org/x/text before tokenization.
*/

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const lineBufferSize = 64 * 1024

// CorpusStats is collected while a corpus is read, for diagnostics only.
type CorpusStats struct {
	Lines      int
	BlankLines int
	Tokens     int
	Distinct   int
}

// Corpus is one loaded input set (malicious or benign).
type Corpus struct {
	Name  string
	Path  string
	Freq  FrequencyTable
	Stats CorpusStats
}

type CorpusOptions struct {
	Encoding string
	// MaxLineBytes rejects longer lines when positive; 0 means no limit.
	MaxLineBytes int
}

// resolveEncoding maps a WHATWG encoding label to a decoder. UTF-8 returns a
// nil encoding: the raw bytes are validated instead of being repaired.
func resolveEncoding(label string) (encoding.Encoding, string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, "utf-8", nil
	}
	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, "", fmt.Errorf("unknown encoding %q", label)
	}
	if name == "utf-8" {
		return nil, name, nil
	}
	return enc, name, nil
}

// LoadCorpus opens path and reads it with ReadCorpus. The file is closed on
// every return path.
func LoadCorpus(name, path string, opts CorpusOptions) (*Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		// Not found, not permitted, or a path component that is not a directory.
		return nil, &CorpusError{Corpus: name, Path: path, Kind: ErrMissingInputFile, Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, &CorpusError{Corpus: name, Path: path, Kind: ErrMissingInputFile, Err: err}
	}
	if info.IsDir() {
		return nil, &CorpusError{Corpus: name, Path: path, Kind: ErrMissingInputFile, Err: errors.New("is a directory")}
	}

	c, err := ReadCorpus(name, file, opts)
	if err != nil {
		var ce *CorpusError
		if errors.As(err, &ce) {
			ce.Path = path
		}
		return nil, err
	}
	c.Path = path

	LogInfo("[CORPUS] Loaded %s corpus from %s: %d lines (%d blank), %d tokens, %d distinct",
		name, path, c.Stats.Lines, c.Stats.BlankLines, c.Stats.Tokens, c.Stats.Distinct)
	return c, nil
}

// ReadCorpus tokenizes every line of r into a new frequency table. Lines are
// unbounded unless opts.MaxLineBytes is positive.
func ReadCorpus(name string, r io.Reader, opts CorpusOptions) (*Corpus, error) {
	enc, encName, err := resolveEncoding(opts.Encoding)
	if err != nil {
		return nil, &CorpusError{Corpus: name, Kind: ErrDecoding, Err: err}
	}
	if enc != nil {
		// A BOM, when present, overrides the configured encoding.
		r = transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder()))
		LogDebug("[CORPUS] Decoding %s corpus as %s", name, encName)
	}

	c := &Corpus{Name: name, Freq: NewFrequencyTable()}
	reader := bufio.NewReaderSize(r, lineBufferSize)

	decodeErr := func(cause error) error {
		return &CorpusError{Corpus: name, Line: c.Stats.Lines, Kind: ErrDecoding, Err: cause}
	}

	for {
		line, readErr := reader.ReadBytes('\n')
		if readErr != nil && readErr != io.EOF {
			c.Stats.Lines++
			return nil, decodeErr(readErr)
		}
		if len(line) == 0 {
			break
		}
		c.Stats.Lines++

		line = bytes.TrimSuffix(line, []byte("\n"))
		line = bytes.TrimSuffix(line, []byte("\r"))

		if opts.MaxLineBytes > 0 && len(line) > opts.MaxLineBytes {
			return nil, decodeErr(fmt.Errorf("line exceeds %d bytes", opts.MaxLineBytes))
		}
		if !utf8.Valid(line) {
			return nil, decodeErr(fmt.Errorf("invalid %s byte sequence", encName))
		}
		// Legacy decoders substitute U+FFFD for bytes they cannot map.
		if enc != nil && bytes.ContainsRune(line, utf8.RuneError) {
			return nil, decodeErr(fmt.Errorf("invalid %s byte sequence", encName))
		}

		tokens := CleanURL(string(line))
		if len(tokens) == 0 {
			c.Stats.BlankLines++
		} else {
			c.Stats.Tokens += c.Freq.Add(tokens)
		}

		if readErr == io.EOF {
			break
		}
	}

	c.Stats.Distinct = len(c.Freq)
	return c, nil
}
