// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package routing

import "strings"

// TailParam is the parameter that receives the remainder of the path matched by "**".
const TailParam = "tail"

// Specificity weights. A constant segment always outranks any number of
// parameters, a parameter outranks any number of wildcards.
const (
	weightConstant = 1000
	weightParam    = 100
	weightWildcard = 10
	weightTail     = 1
)

// Match is the result of a successful pattern match.
type Match struct {
	Params      map[string]string
	Specificity int
}

// specificity scores the segments of a pattern independent of any path.
func specificity(pattern []string) int {
	score := 0
	for _, seg := range pattern {
		switch {
		case seg == "**":
			score += weightTail
		case seg == "*":
			score += weightWildcard
		case isParam(seg):
			score += weightParam
		default:
			score += weightConstant
		}
	}
	return score
}

// MatchPath matches path against a pattern.
//
// Patterns are "/"-separated segments: a literal matches exactly, "{name}"
// captures one segment, "*" matches one segment without capturing, and "**"
// as the last segment matches zero or more remaining segments, captured
// joined by "/" under TailParam. Empty segments are ignored on both sides and
// anything after "?" in path is not part of matching.
func MatchPath(pattern, path string) (Match, bool) {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	pSegs := splitSegments(pattern)
	segs := splitSegments(path)

	hasTail := len(pSegs) > 0 && pSegs[len(pSegs)-1] == "**"
	if hasTail {
		if len(segs) < len(pSegs)-1 {
			return Match{}, false
		}
	} else if len(segs) != len(pSegs) {
		return Match{}, false
	}

	params := make(map[string]string)
	for i, seg := range pSegs {
		if seg == "**" {
			if i != len(pSegs)-1 {
				// "**" is only meaningful as the final segment.
				return Match{}, false
			}
			params[TailParam] = strings.Join(segs[i:], "/")
			break
		}
		switch {
		case seg == "*":
		case isParam(seg):
			params[seg[1:len(seg)-1]] = segs[i]
		default:
			if seg != segs[i] {
				return Match{}, false
			}
		}
	}
	return Match{Params: params, Specificity: specificity(pSegs)}, true
}

func isParam(seg string) bool {
	return len(seg) > 2 && seg[0] == '{' && seg[len(seg)-1] == '}'
}

func splitSegments(s string) []string {
	parts := strings.Split(s, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
