// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package cache

import (
	"testing"

	"github.com/tomtom215/mediabrowser/internal/models"
)

func TestContentCache_ReturnsCopies(t *testing.T) {
	t.Parallel()

	c := NewContentCache(2, 0)
	album := &models.Container{
		Node:     models.Node{Path: "/albums/1", Title: "Album"},
		Children: []models.Node{{PlayableSource: "t1", Title: "One"}},
	}
	c.Set("/albums/1", album)

	// Mutating the original after Set must not reach the cache.
	album.Children[0].Title = "mutated"

	got, ok := c.Get("/albums/1")
	if !ok {
		t.Fatal("expected cached container")
	}
	if got.Children[0].Title != "One" {
		t.Errorf("cache shares state with caller: %q", got.Children[0].Title)
	}

	got.Children[0].Title = "mutated again"
	again, _ := c.Get("/albums/1")
	if again.Children[0].Title != "One" {
		t.Error("mutating a returned container changed the cache")
	}
}

func TestContentCache_DefaultCapacity(t *testing.T) {
	t.Parallel()

	c := NewContentCache(0, 0)
	if got := c.Stats().Capacity; got != DefaultContentCapacity {
		t.Errorf("capacity = %d, want %d", got, DefaultContentCapacity)
	}
}

func TestLeafCache_DualAlias(t *testing.T) {
	t.Parallel()

	c := NewLeafCache(10, 0)
	c.Put(models.Node{Path: "/albums/1?__leaf=t1", PlayableSource: "t1", Title: "One"})

	for _, id := range []string{"t1", "/albums/1?__leaf=t1"} {
		n, ok := c.Get(id)
		if !ok {
			t.Fatalf("Get(%q) missing", id)
		}
		if n.Title != "One" {
			t.Errorf("Get(%q).Title = %q", id, n.Title)
		}
	}
	if c.Stats().Size != 2 {
		t.Errorf("len = %d, want 2 identities", c.Stats().Size)
	}
}

func TestLeafCache_IgnoresNodesWithoutIdentity(t *testing.T) {
	t.Parallel()

	c := NewLeafCache(10, 0)
	c.Put(models.Node{Title: "nothing"})
	if c.Stats().Size != 0 {
		t.Errorf("len = %d, want 0", c.Stats().Size)
	}
}

func TestLeafCache_PutAllEvictsOldest(t *testing.T) {
	t.Parallel()

	c := NewLeafCache(2, 0)
	c.PutAll([]models.Node{
		{PlayableSource: "a"},
		{PlayableSource: "b"},
		{PlayableSource: "c"},
	})
	if _, ok := c.Get("a"); ok {
		t.Error("expected 'a' to be evicted")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("expected 'c' to be present")
	}
}

func TestSearchMemo_SingleSlot(t *testing.T) {
	t.Parallel()

	m := NewSearchMemo()
	if _, ok := m.Get("jazz"); ok {
		t.Fatal("empty memo should miss")
	}

	m.Set("jazz", []models.Node{{PlayableSource: "t1"}})
	if r, ok := m.Get("jazz"); !ok || len(r) != 1 {
		t.Fatalf("Get(jazz) = %v, %v", r, ok)
	}

	m.Set("rock", []models.Node{{PlayableSource: "t2"}})
	if _, ok := m.Get("jazz"); ok {
		t.Error("previous query should be forgotten")
	}
	if r, ok := m.Get("rock"); !ok || r[0].PlayableSource != "t2" {
		t.Errorf("Get(rock) = %v, %v", r, ok)
	}

	m.Clear()
	if _, ok := m.Get("rock"); ok {
		t.Error("Clear should forget the memo")
	}
}

func TestSearchMemo_EmptyResultsAreCached(t *testing.T) {
	t.Parallel()

	m := NewSearchMemo()
	m.Set("nothing", nil)
	r, ok := m.Get("nothing")
	if !ok {
		t.Fatal("empty result set should still be a hit")
	}
	if len(r) != 0 {
		t.Errorf("results = %v", r)
	}
}
