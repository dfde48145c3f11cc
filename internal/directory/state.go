// Package directory holds the channel lookup view state and its load policy.
package directory

import "bell-lookup/internal/channel"

// State is an immutable snapshot of the lookup view. Every change returns a
// new State; derived values are computed from the snapshot on each call.
type State struct {
	channels []channel.Channel
	criteria channel.Criteria
	loading  bool
}

// New returns the initial state: no channels, default selections, loading.
func New() State {
	return State{criteria: channel.DefaultCriteria(), loading: true}
}

func (s State) WithQuery(q string) State {
	s.criteria.Query = q
	return s
}

func (s State) WithBundle(b channel.Bundle) State {
	s.criteria.Bundle = b
	return s
}

func (s State) WithCategory(c string) State {
	s.criteria.Category = c
	return s
}

// Reloading marks a fetch in progress without touching the list.
func (s State) Reloading() State {
	s.loading = true
	return s
}

// Loaded swaps in list wholesale and clears loading.
func (s State) Loaded(list []channel.Channel) State {
	s.channels = list
	s.loading = false
	return s
}

// Failed clears loading and keeps whatever list was there before.
func (s State) Failed() State {
	s.loading = false
	return s
}

func (s State) Loading() bool               { return s.loading }
func (s State) Criteria() channel.Criteria  { return s.criteria }
func (s State) Query() string               { return s.criteria.Query }
func (s State) Bundle() channel.Bundle      { return s.criteria.Bundle }
func (s State) Category() string            { return s.criteria.Category }
func (s State) Channels() []channel.Channel { return s.channels }

// Matches is the filtered list in load order.
func (s State) Matches() []channel.Channel {
	return channel.Filter(s.channels, s.criteria)
}

// Categories lists the category options for the loaded list.
func (s State) Categories() []string {
	return channel.Categories(s.channels)
}

func (s State) Summary() string {
	return channel.Summary(len(s.Matches()), s.loading)
}

// NoResults is true once loading is done and nothing matches.
func (s State) NoResults() bool {
	return !s.loading && len(s.Matches()) == 0
}
