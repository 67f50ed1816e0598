// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package routing

// Reserved route keys. They share the declared route list with ordinary
// patterns but are never considered by FindBestMatch.
const (
	DefaultKey = "__default__"
	SearchKey  = "__search__"
	TabsKey    = "__tabs__"
)

// IsReserved reports whether key is one of the reserved route keys.
func IsReserved(key string) bool {
	switch key {
	case DefaultKey, SearchKey, TabsKey:
		return true
	}
	return false
}

// FindBestMatch returns the index of the most specific pattern matching path.
// When two patterns score the same the one declared first wins.
// It returns -1 when nothing matches.
func FindBestMatch(path string, patterns []string) (int, Match) {
	best := -1
	var bestMatch Match
	for i, pattern := range patterns {
		if IsReserved(pattern) {
			continue
		}
		m, ok := MatchPath(pattern, path)
		if !ok {
			continue
		}
		if best == -1 || m.Specificity > bestMatch.Specificity {
			best, bestMatch = i, m
		}
	}
	return best, bestMatch
}
