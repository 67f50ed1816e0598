// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordCacheAccess(t *testing.T) {
	beforeHits := testutil.ToFloat64(CacheHits.WithLabelValues("test_access"))
	beforeMisses := testutil.ToFloat64(CacheMisses.WithLabelValues("test_access"))

	RecordCacheAccess("test_access", true)
	RecordCacheAccess("test_access", true)
	RecordCacheAccess("test_access", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("test_access")) - beforeHits; got != 2 {
		t.Errorf("hits delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("test_access")) - beforeMisses; got != 1 {
		t.Errorf("misses delta = %v, want 1", got)
	}
}

func TestRecordResolve_Outcomes(t *testing.T) {
	RecordResolve("test_source", 5*time.Millisecond, nil)
	RecordResolve("test_source", 10*time.Millisecond, errors.New("boom"))

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	mf := findFamily(families, "catalog_resolve_duration_seconds")
	if mf == nil {
		t.Fatal("catalog_resolve_duration_seconds not registered")
	}

	outcomes := map[string]uint64{}
	for _, m := range mf.GetMetric() {
		var source, outcome string
		for _, lp := range m.GetLabel() {
			switch lp.GetName() {
			case "source":
				source = lp.GetValue()
			case "outcome":
				outcome = lp.GetValue()
			}
		}
		if source == "test_source" {
			outcomes[outcome] = m.GetHistogram().GetSampleCount()
		}
	}
	if outcomes["success"] < 1 || outcomes["error"] < 1 {
		t.Errorf("outcomes = %v, want success and error samples", outcomes)
	}
}

func TestRecordNavigationError(t *testing.T) {
	before := testutil.ToFloat64(NavigationErrors.WithLabelValues("network-error"))
	RecordNavigationError("network-error")
	if got := testutil.ToFloat64(NavigationErrors.WithLabelValues("network-error")) - before; got != 1 {
		t.Errorf("delta = %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/test", "200"))
	RecordAPIRequest("GET", "/api/v1/test", "200", 20*time.Millisecond)
	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/test", "200")) - before; got != 1 {
		t.Errorf("delta = %v, want 1", got)
	}
}

func findFamily(families []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}
