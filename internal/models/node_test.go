// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package models

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
)

func TestNode_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{"path only", Node{Path: "/albums", Title: "Albums"}, false},
		{"source only", Node{PlayableSource: "track-1", Title: "Track"}, false},
		{"both", Node{Path: "/albums/1", PlayableSource: "album-1"}, false},
		{"neither", Node{Title: "Orphan"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.node.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidNode) {
				t.Errorf("Validate() = %v, want ErrInvalidNode", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestNode_Identities(t *testing.T) {
	t.Parallel()

	n := Node{Path: "/albums/1?__leaf=t1", PlayableSource: "t1"}
	ids := n.Identities()
	if len(ids) != 2 || ids[0] != "t1" || ids[1] != "/albums/1?__leaf=t1" {
		t.Errorf("Identities() = %v", ids)
	}

	if got := (Node{PlayableSource: "x", Path: "x"}).Identities(); len(got) != 1 {
		t.Errorf("duplicate identities should collapse, got %v", got)
	}
	if got := (Node{}).Identities(); len(got) != 0 {
		t.Errorf("empty node should have no identities, got %v", got)
	}
}

func TestContainer_CloneIsDeep(t *testing.T) {
	t.Parallel()

	c := &Container{
		Node:     Node{Path: "/a", Title: "A"},
		Children: []Node{(Node{PlayableSource: "t1"}).WithFavorited(true)},
	}
	cp := c.Clone()
	cp.Children[0].Title = "changed"
	*cp.Children[0].Favorited = false

	if c.Children[0].Title != "" {
		t.Error("clone shares children slice with original")
	}
	if !*c.Children[0].Favorited {
		t.Error("clone shares favorited pointer with original")
	}

	var nilContainer *Container
	if nilContainer.Clone() != nil {
		t.Error("Clone of nil container should be nil")
	}
}

func TestContainer_Playable(t *testing.T) {
	t.Parallel()

	c := &Container{Children: []Node{
		{Path: "/sub", Title: "Folder"},
		{PlayableSource: "t1"},
		{PlayableSource: "t2"},
	}}
	got := c.Playable()
	if len(got) != 2 || got[0].PlayableSource != "t1" || got[1].PlayableSource != "t2" {
		t.Errorf("Playable() = %+v", got)
	}
}

func TestContainer_JSONFlattensNode(t *testing.T) {
	t.Parallel()

	raw := `{"path":"/albums/1","title":"Album","children":[{"src":"t1","title":"One","favorited":false}]}`
	var c Container
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c.Path != "/albums/1" || c.Title != "Album" {
		t.Errorf("embedded node not decoded: %+v", c.Node)
	}
	if len(c.Children) != 1 || c.Children[0].Favorited == nil || *c.Children[0].Favorited {
		t.Errorf("children not decoded with explicit favorited=false: %+v", c.Children)
	}
}
