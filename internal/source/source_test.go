// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package source

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/mediabrowser/internal/models"
)

func TestStatic_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := &models.Container{Node: models.Node{Path: "/", Title: "Home"}, Children: []models.Node{{Path: "/albums"}}}
	s := NewStatic(c)
	if s.Kind() != KindStatic {
		t.Errorf("Kind() = %s", s.Kind())
	}

	got, err := s.Resolve(context.Background(), Request{Path: "/"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got.Children[0].Path = "/changed"
	if c.Children[0].Path != "/albums" {
		t.Error("static container was mutated through the result")
	}

	if _, err := NewStatic(nil).Resolve(context.Background(), Request{}); !errors.Is(err, ErrInvalidSource) {
		t.Errorf("nil container err = %v", err)
	}
}

func TestCallback_PassesRequest(t *testing.T) {
	t.Parallel()

	cb := NewCallback(func(ctx context.Context, req Request) (*models.Container, error) {
		return &models.Container{Node: models.Node{Path: req.Path, Title: req.Param("id")}}, nil
	})
	got, err := cb.Resolve(context.Background(), Request{Path: "/artists/7", Params: map[string]string{"id": "7"}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Title != "7" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestCallback_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	if _, err := NewCallback(func(context.Context, Request) (*models.Container, error) { return nil, boom }).
		Resolve(context.Background(), Request{}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if _, err := NewCallback(func(context.Context, Request) (*models.Container, error) { return nil, nil }).
		Resolve(context.Background(), Request{}); !errors.Is(err, ErrNoContent) {
		t.Errorf("err = %v, want ErrNoContent", err)
	}
	if _, err := NewCallback(nil).Resolve(context.Background(), Request{}); !errors.Is(err, ErrInvalidSource) {
		t.Errorf("err = %v, want ErrInvalidSource", err)
	}
}
