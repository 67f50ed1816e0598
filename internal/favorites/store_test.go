// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package favorites

import (
	"context"
	"reflect"
	"testing"
)

func createTestStore(t *testing.T) *BadgerStore {
	t.Helper()

	s, err := OpenBadgerStore("")
	if err != nil {
		t.Fatalf("Failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBadgerStore_PutAndLoad(t *testing.T) {
	t.Parallel()

	s := createTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"t2", "t1", "/albums/3"} {
		if err := s.Put(ctx, id, true); err != nil {
			t.Fatalf("Put(%q): %v", id, err)
		}
	}
	if err := s.Put(ctx, "t2", false); err != nil {
		t.Fatalf("Put(t2,false): %v", err)
	}

	ids, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := []string{"/albums/3", "t1"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("Load() = %v, want %v", ids, want)
	}
}

func TestBadgerStore_RemoveMissingIsNoop(t *testing.T) {
	t.Parallel()

	s := createTestStore(t)
	if err := s.Put(context.Background(), "never-added", false); err != nil {
		t.Errorf("removing a missing id should not fail: %v", err)
	}
}

func TestBadgerStore_Replace(t *testing.T) {
	t.Parallel()

	s := createTestStore(t)
	ctx := context.Background()

	if err := s.Replace(ctx, []string{"a", "b"}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if err := s.Replace(ctx, []string{"c", ""}); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	ids, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := []string{"c"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("Load() = %v, want %v", ids, want)
	}
}

func TestBadgerStore_CancelledContext(t *testing.T) {
	t.Parallel()

	s := createTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Put(ctx, "x", true); err == nil {
		t.Error("Put with cancelled context should fail")
	}
}
