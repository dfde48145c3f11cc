package ui

import (
	"github.com/sahilm/fuzzy"

	"bell-lookup/internal/channel"
)

const maxSuggestions = 3

type channelNames []channel.Channel

func (n channelNames) String(i int) string { return n[i].Name }
func (n channelNames) Len() int            { return len(n) }

// suggestions returns up to maxSuggestions distinct channel names that
// fuzzy-match query, best first.
func suggestions(query string, list []channel.Channel) []string {
	if query == "" || len(list) == 0 {
		return nil
	}
	matches := fuzzy.FindFrom(query, channelNames(list))
	out := make([]string, 0, maxSuggestions)
	seen := make(map[string]bool, maxSuggestions)
	for _, mt := range matches {
		name := list[mt.Index].Name
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
