// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package contexturl

import "testing"

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		container string
		leaf      string
		wantURL   string
	}{
		{"simple", "/albums/42", "track-1", "/albums/42?__leaf=track-1"},
		{"reserved chars", "/albums/42", "a&b=c?d/e", "/albums/42?__leaf=a%26b%3Dc%3Fd%2Fe"},
		{"spaces and unicode", "/playlists/chill", "Ünïcode song 1", "/playlists/chill?__leaf=%C3%9Cn%C3%AFcode+song+1"},
		{"url as id", "/radio", "https://cdn.test/s.mp3?x=1", "/radio?__leaf=https%3A%2F%2Fcdn.test%2Fs.mp3%3Fx%3D1"},
		{"container with query", "/search?q=jazz", "t9", "/search?q=jazz&__leaf=t9"},
		{"marker text inside id", "/a", "__leaf=x", "/a?__leaf=__leaf%3Dx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Encode(tt.container, tt.leaf)
			if got != tt.wantURL {
				t.Errorf("Encode = %q, want %q", got, tt.wantURL)
			}
			c, id, ok := Decode(got)
			if !ok {
				t.Fatalf("Decode(%q) not ok", got)
			}
			if c != tt.container || id != tt.leaf {
				t.Errorf("Decode = (%q, %q), want (%q, %q)", c, id, tt.container, tt.leaf)
			}
		})
	}
}

func TestDecode_NotContextual(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"", "/albums/42", "/albums?leaf=x", "/albums/__leaf=x", "__leaf=x", "/a?__leaf=%zz"} {
		if _, _, ok := Decode(p); ok {
			t.Errorf("Decode(%q) ok = true, want false", p)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	if got := Normalize("/albums/42?__leaf=t1"); got != "/albums/42" {
		t.Errorf("Normalize = %q", got)
	}
	if got := Normalize("/albums/42"); got != "/albums/42" {
		t.Errorf("Normalize of plain path = %q", got)
	}
}
