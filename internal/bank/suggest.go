package bank

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns usernames matching query, best match first. An empty
// query lists every username in store order. exclude is left out of the
// result.
func (s *Store) Suggest(query, exclude string, limit int) []string {
	var out []string
	if query == "" {
		for _, u := range s.Usernames() {
			if u != exclude {
				out = append(out, u)
			}
		}
	} else {
		ranks := fuzzy.RankFindFold(query, s.Usernames())
		sort.Stable(ranks)
		for _, r := range ranks {
			if r.Target != exclude {
				out = append(out, r.Target)
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
