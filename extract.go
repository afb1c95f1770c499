/*
File: extract.go
Version: 1.0.0
Description: Differential frequency filter and ranking of suspicious keywords.
*/

package main

import (
	"sort"
)

const (
	defaultMinCount = 1
	defaultTopN     = 40
)

// Keyword is a token that survived the filter, with its malicious count.
type Keyword struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

type ExtractOptions struct {
	// A token needs more than MinCount malicious occurrences.
	MinCount int
	// TopN caps the result; 0 or less keeps every candidate.
	TopN int
}

func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{MinCount: defaultMinCount, TopN: defaultTopN}
}

// isCandidate reports whether a token is over-represented in the malicious set.
func isCandidate(malCount, benignCount, minCount int) bool {
	return malCount > minCount && malCount > benignCount
}

// Extract returns the tokens of malicious that occur more than opts.MinCount
// times and more often than in benign, highest count first. Equal counts are
// ordered by token so repeated runs print the same list.
func Extract(malicious, benign FrequencyTable, opts ExtractOptions) []Keyword {
	keywords := make([]Keyword, 0)
	for token, count := range malicious {
		b := benign.Get(token)
		if !isCandidate(count, b, opts.MinCount) {
			continue
		}
		if IsDebugEnabled() {
			LogDebug("[EXTRACT] Candidate %q: malicious=%d benign=%d", token, count, b)
		}
		keywords = append(keywords, Keyword{Token: token, Count: count})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Token < keywords[j].Token
	})

	if opts.TopN > 0 && len(keywords) > opts.TopN {
		keywords = keywords[:opts.TopN]
	}
	return keywords
}

// ExtractFromFiles loads both corpora named by cfg and runs Extract. Nothing
// is returned unless both corpora load.
func ExtractFromFiles(cfg *Config) ([]Keyword, error) {
	copts := CorpusOptions{
		Encoding:     cfg.Input.Encoding,
		MaxLineBytes: cfg.Input.MaxLineBytes,
	}

	mal, err := LoadCorpus("malicious", cfg.MaliciousPath(), copts)
	if err != nil {
		return nil, err
	}
	benign, err := LoadCorpus("benign", cfg.BenignPath(), copts)
	if err != nil {
		return nil, err
	}

	opts := ExtractOptions{MinCount: cfg.Extract.MinCount, TopN: cfg.Extract.TopN}
	keywords := Extract(mal.Freq, benign.Freq, opts)
	LogInfo("[EXTRACT] %d keywords selected (min_count: %d, top_n: %d) from %d malicious / %d benign distinct tokens",
		len(keywords), opts.MinCount, opts.TopN, mal.Stats.Distinct, benign.Stats.Distinct)
	return keywords, nil
}
