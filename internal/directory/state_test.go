package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bell-lookup/internal/channel"
)

func strp(s string) *string { return &s }

type fakeSource struct {
	recs []channel.Record
	err  error
	hits int
}

func (f *fakeSource) FetchChannels(context.Context) ([]channel.Record, error) {
	f.hits++
	return f.recs, f.err
}

func sample() []channel.Channel {
	return []channel.Channel{
		{ID: 1, Name: "TSN", Number: "502", Category: "Sports", Bundles: "Bundle 1,Bundle 3"},
		{ID: 2, Name: "CNN", Number: "1500", Category: "News", Bundles: "Bundle 2"},
		{ID: 3, Name: "CTV News Channel", Number: "501", Category: "News", Bundles: "Bundle 1,Bundle 2,Bundle 3"},
	}
}

func names(list []channel.Channel) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

func TestNewStateIsLoading(t *testing.T) {
	s := New()
	if !s.Loading() {
		t.Fatal("initial state must be loading")
	}
	if s.Summary() != "Connecting to Database..." {
		t.Fatalf("Summary = %q", s.Summary())
	}
	if s.NoResults() {
		t.Fatal("NoResults must be false while loading")
	}
	if s.Bundle() != channel.BundleAll || s.Category() != channel.All {
		t.Fatalf("unexpected default selection %+v", s.Criteria())
	}
}

func TestStateTransitionsAreCopies(t *testing.T) {
	base := New().Loaded(sample())
	q := base.WithQuery("tsn")
	if base.Query() != "" {
		t.Fatal("WithQuery mutated the receiver")
	}
	if diff := cmp.Diff([]string{"TSN"}, names(q.Matches())); diff != "" {
		t.Fatalf("matches (-want +got):\n%s", diff)
	}
	b := q.WithBundle(channel.Bundle2)
	if len(b.Matches()) != 0 || !b.NoResults() {
		t.Fatalf("TSN is not in Bundle 2, got %v", names(b.Matches()))
	}
	if q.Bundle() != channel.BundleAll {
		t.Fatal("WithBundle mutated the receiver")
	}
}

func TestDerivedValues(t *testing.T) {
	s := New().Loaded(sample()).WithCategory("News")
	if diff := cmp.Diff([]string{"CNN", "CTV News Channel"}, names(s.Matches())); diff != "" {
		t.Fatalf("matches (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"All", "News", "Sports"}, s.Categories()); diff != "" {
		t.Fatalf("categories (-want +got):\n%s", diff)
	}
	if s.Summary() != "Showing 2 channels" {
		t.Fatalf("Summary = %q", s.Summary())
	}
	if got := s.WithQuery("cnn").Summary(); got != "Showing 1 channel" {
		t.Fatalf("Summary = %q", got)
	}
}

func TestLoadNormalizes(t *testing.T) {
	src := &fakeSource{recs: []channel.Record{
		{Index: 1, Name: strp("TSN"), AddOnName: strp("N/A")},
		{Index: 2, Name: strp("CNN")},
	}}
	list, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"TSN", "CNN"}, names(list)); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}
	if list[0].AddOn != nil {
		t.Fatal("placeholder add-on must normalize to nil")
	}
}

func TestApplyFailureOnInitialLoad(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	list, err := Load(context.Background(), src)
	s := Apply(New(), list, err)
	if s.Loading() {
		t.Fatal("loading must clear on failure")
	}
	if len(s.Matches()) != 0 || !s.NoResults() {
		t.Fatal("failed initial load must show no results")
	}
	if s.Summary() != "Showing 0 channels" {
		t.Fatalf("Summary = %q", s.Summary())
	}
	if src.hits != 1 {
		t.Fatalf("expected a single fetch, got %d", src.hits)
	}
}

func TestApplyFailureKeepsPreviousList(t *testing.T) {
	s := New().Loaded(sample()).Reloading()
	if !s.Loading() || len(s.Channels()) != 3 {
		t.Fatal("Reloading must keep the list and set loading")
	}
	s = Apply(s, nil, errors.New("timeout"))
	if s.Loading() || len(s.Channels()) != 3 {
		t.Fatalf("failed reload must keep list, got %d loading=%v", len(s.Channels()), s.Loading())
	}
}

func TestApplySuccessReplacesWholesale(t *testing.T) {
	s := New().Loaded(sample())
	s = Apply(s, sample()[:1], nil)
	if diff := cmp.Diff([]string{"TSN"}, names(s.Channels())); diff != "" {
		t.Fatalf("list (-want +got):\n%s", diff)
	}
}
