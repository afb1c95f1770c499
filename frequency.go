/*
File: frequency.go
Version: 1.0.0
Description: Per-corpus token frequency table.
*/

package main

// FrequencyTable maps a token to the number of times it occurred in a corpus.
// A table is filled once while its corpus is read and not modified afterwards.
type FrequencyTable map[string]int

func NewFrequencyTable() FrequencyTable {
	return make(FrequencyTable)
}

// Add counts every token and returns how many were added.
func (ft FrequencyTable) Add(tokens []string) int {
	for _, t := range tokens {
		ft[t]++
	}
	return len(tokens)
}

// Get returns the count for token, 0 when it never occurred.
func (ft FrequencyTable) Get(token string) int {
	return ft[token]
}

// CountTokens tokenizes every line with CleanURL into a fresh table.
func CountTokens(lines []string) FrequencyTable {
	ft := NewFrequencyTable()
	for _, line := range lines {
		ft.Add(CleanURL(line))
	}
	return ft
}
