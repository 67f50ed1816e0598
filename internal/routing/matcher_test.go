// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package routing

import (
	"reflect"
	"testing"
)

func TestMatchPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pattern    string
		path       string
		wantOK     bool
		wantParams map[string]string
		wantScore  int
	}{
		{"literal", "/library/albums", "/library/albums", true, map[string]string{}, 2000},
		{"literal mismatch", "/library/albums", "/library/artists", false, nil, 0},
		{"param", "/artists/{id}", "/artists/123", true, map[string]string{"id": "123"}, 1100},
		{"two params", "/artists/{id}/albums/{albumId}", "/artists/123/albums/456", true,
			map[string]string{"id": "123", "albumId": "456"}, 2200},
		{"wildcard", "/artists/*", "/artists/123", true, map[string]string{}, 1010},
		{"tail", "/files/**", "/files/a/b/c", true, map[string]string{"tail": "a/b/c"}, 1001},
		{"empty tail", "/files/**", "/files", true, map[string]string{"tail": ""}, 1001},
		{"too short", "/artists/{id}", "/artists", false, nil, 0},
		{"too long", "/artists/{id}", "/artists/1/albums", false, nil, 0},
		{"empty segments ignored", "/artists/{id}", "//artists//9/", true, map[string]string{"id": "9"}, 1100},
		{"query ignored", "/albums/{id}", "/albums/7?__leaf=t1", true, map[string]string{"id": "7"}, 1100},
		{"root", "/", "/", true, map[string]string{}, 0},
		{"tail not last", "/**/x", "/a/x", false, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, ok := MatchPath(tt.pattern, tt.path)
			if ok != tt.wantOK {
				t.Fatalf("MatchPath(%q, %q) ok = %v, want %v", tt.pattern, tt.path, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !reflect.DeepEqual(m.Params, tt.wantParams) {
				t.Errorf("params = %v, want %v", m.Params, tt.wantParams)
			}
			if m.Specificity != tt.wantScore {
				t.Errorf("specificity = %d, want %d", m.Specificity, tt.wantScore)
			}
		})
	}
}

func score(pattern string) int { return specificity(splitSegments(pattern)) }

func TestSpecificity_Ordering(t *testing.T) {
	t.Parallel()

	// A constant beats any mix of lesser segment kinds with the same length.
	if score("/a/b") <= score("/a/{x}") {
		t.Error("constant should outrank param")
	}
	if score("/a/{x}") <= score("/a/*") {
		t.Error("param should outrank wildcard")
	}
	if score("/a/*") <= score("/a/**") {
		t.Error("wildcard should outrank tail")
	}
	if got := score("/artists/{id}/albums/{albumId}"); got != 2200 {
		t.Errorf("score = %d, want 2200", got)
	}
}

func TestMatchPath_SpecificityMatchesPattern(t *testing.T) {
	t.Parallel()

	patterns := []string{"/a/{b}/c", "/a/*/**", "/x/y/z", "/{p}/{q}"}
	paths := []string{"/a/1/c", "/a/1/c/d", "/x/y/z", "/m/n"}
	for _, p := range patterns {
		for _, path := range paths {
			m, ok := MatchPath(p, path)
			if ok && m.Specificity != score(p) {
				t.Errorf("MatchPath(%q,%q) specificity %d != score %d", p, path, m.Specificity, score(p))
			}
		}
	}
}
