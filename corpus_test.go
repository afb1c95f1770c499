package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCorpus(t *testing.T) {
	c, err := ReadCorpus("malicious", strings.NewReader("a-b\n\nb\r\nhttp://B.example/"), CorpusOptions{})
	require.NoError(t, err)

	assert.Equal(t, "malicious", c.Name)
	assert.Equal(t, FrequencyTable{"a": 1, "b": 3, "http": 1, "example": 1}, c.Freq)
	assert.Equal(t, CorpusStats{Lines: 4, BlankLines: 1, Tokens: 6, Distinct: 4}, c.Stats)
}

func TestReadCorpusEmpty(t *testing.T) {
	c, err := ReadCorpus("benign", strings.NewReader(""), CorpusOptions{})
	require.NoError(t, err)
	assert.Empty(t, c.Freq)
	assert.Equal(t, CorpusStats{}, c.Stats)
}

func TestReadCorpusInvalidUTF8(t *testing.T) {
	_, err := ReadCorpus("malicious", strings.NewReader("ok.com\nbad\xff\xfe.com\n"), CorpusOptions{Encoding: "utf-8"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecoding))
	assert.False(t, errors.Is(err, ErrMissingInputFile))

	var ce *CorpusError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 2, ce.Line)
	assert.Equal(t, "malicious", ce.Corpus)
}

func TestReadCorpusLegacyEncoding(t *testing.T) {
	// "café-login" in windows-1252
	c, err := ReadCorpus("malicious", strings.NewReader("caf\xe9-login\n"), CorpusOptions{Encoding: "windows-1252"})
	require.NoError(t, err)
	assert.Equal(t, FrequencyTable{"caf": 1, "login": 1}, c.Freq)
}

func TestReadCorpusLongLinesWithoutLimit(t *testing.T) {
	medium := strings.Repeat("evil-", 16*1024)
	huge := strings.Repeat("x", 2<<20)

	c, err := ReadCorpus("malicious", strings.NewReader(medium+"\n"+huge+"\n"), CorpusOptions{})
	require.NoError(t, err)

	assert.Equal(t, 16*1024, c.Freq.Get("evil"))
	assert.Equal(t, 1, c.Freq.Get(huge))
	assert.Equal(t, 2, c.Stats.Lines)
}

func TestReadCorpusShiftJIS(t *testing.T) {
	// "テスト-login"
	c, err := ReadCorpus("malicious", strings.NewReader("\x83\x65\x83\x58\x83\x67-login\n"), CorpusOptions{Encoding: "shift_jis"})
	require.NoError(t, err)
	assert.Equal(t, FrequencyTable{"login": 1}, c.Freq)
}

func TestReadCorpusShiftJISInvalidSequence(t *testing.T) {
	_, err := ReadCorpus("malicious", strings.NewReader("ok\n\x81\x20bad\n"), CorpusOptions{Encoding: "shift_jis"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecoding))

	var ce *CorpusError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 2, ce.Line)
}

func TestReadCorpusUnknownEncoding(t *testing.T) {
	_, err := ReadCorpus("malicious", strings.NewReader("x"), CorpusOptions{Encoding: "klingon-8"})
	assert.True(t, errors.Is(err, ErrDecoding))
}

func TestReadCorpusLineTooLong(t *testing.T) {
	long := strings.Repeat("a", 100)
	_, err := ReadCorpus("malicious", strings.NewReader("short\n"+long+"\n"), CorpusOptions{MaxLineBytes: 16})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecoding))

	var ce *CorpusError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 2, ce.Line)
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "malicious_urls.txt", "test-payload\ntest-payload\nsafe-page\n")

	c, err := LoadCorpus("malicious", path, CorpusOptions{})
	require.NoError(t, err)
	assert.Equal(t, path, c.Path)
	assert.Equal(t, 2, c.Freq.Get("test"))
	assert.Equal(t, 1, c.Freq.Get("page"))
	assert.Equal(t, 3, c.Stats.Lines)
}

func TestLoadCorpusErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.txt", "\xc3\x28\n")
	notDir := writeFile(t, dir, "data", "not a directory\n")

	tests := []struct {
		name string
		path string
		kind error
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.txt"), kind: ErrMissingInputFile},
		{name: "directory", path: dir, kind: ErrMissingInputFile},
		{name: "parent is a regular file", path: filepath.Join(notDir, "malicious_urls.txt"), kind: ErrMissingInputFile},
		{name: "undecodable", path: bad, kind: ErrDecoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LoadCorpus("benign", tt.path, CorpusOptions{})
			assert.Nil(t, c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)

			var ce *CorpusError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.path, ce.Path)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}
