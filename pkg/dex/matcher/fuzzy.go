// Dexget
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Dexget.
//
// Dexget is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dexget is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dexget.  If not, see <http://www.gnu.org/licenses/>.

package matcher

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

// DefaultMinSimilarity is the lowest Jaro-Winkler score accepted as a match.
const DefaultMinSimilarity float32 = 0.80

// FuzzyMatch is a candidate that scored at or above the minimum similarity.
// Index is the candidate's position in the pool it was drawn from.
type FuzzyMatch struct {
	Candidate  string
	Index      int
	Similarity float32
}

// FindFuzzyMatches scores every candidate against the query using
// Jaro-Winkler similarity on lower-cased text. Jaro-Winkler weights matching
// prefixes heavily, which suits names where users usually get the start
// right. Results below minSimilarity are dropped and the rest are sorted by
// similarity, best first. Equal scores keep pool order.
func FindFuzzyMatches(query string, candidates []string, minSimilarity float32) []FuzzyMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []FuzzyMatch
	for i, candidate := range candidates {
		similarity := edlib.JaroWinklerSimilarity(q, strings.ToLower(candidate))

		if similarity > 0.7 {
			log.Debug().
				Str("query", query).
				Str("candidate", candidate).
				Float32("similarity", similarity).
				Float32("minSimilarity", minSimilarity).
				Msg("fuzzy match candidate evaluation")
		}

		if similarity >= minSimilarity {
			matches = append(matches, FuzzyMatch{
				Candidate:  candidate,
				Index:      i,
				Similarity: similarity,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	return matches
}

// ApplyDamerauLevenshteinTieBreaker reorders the leading run of matches that
// share the top similarity score by Damerau-Levenshtein distance to the query,
// so a single transposition ("pikahcu") beats a substitution with the same
// Jaro-Winkler score. Matches outside the tied run keep their order.
func ApplyDamerauLevenshteinTieBreaker(query string, matches []FuzzyMatch) []FuzzyMatch {
	if len(matches) < 2 {
		return matches
	}

	tied := 1
	for tied < len(matches) && matches[tied].Similarity == matches[0].Similarity {
		tied++
	}
	if tied == 1 {
		return matches
	}

	q := strings.ToLower(strings.TrimSpace(query))
	distances := make(map[int]int, tied)
	for _, m := range matches[:tied] {
		distances[m.Index] = edlib.DamerauLevenshteinDistance(q, strings.ToLower(m.Candidate))
	}

	result := make([]FuzzyMatch, len(matches))
	copy(result, matches)
	sort.SliceStable(result[:tied], func(i, j int) bool {
		return distances[result[i].Index] < distances[result[j].Index]
	})

	return result
}

// BestMatch returns the single best candidate for query, or false when no
// candidate reaches minSimilarity.
func BestMatch(query string, candidates []string, minSimilarity float32) (FuzzyMatch, bool) {
	matches := FindFuzzyMatches(query, candidates, minSimilarity)
	if len(matches) == 0 {
		return FuzzyMatch{}, false
	}
	matches = ApplyDamerauLevenshteinTieBreaker(query, matches)
	return matches[0], true
}
