// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxEditDistance bounds how far a misspelling may be from a suggestion.
const maxEditDistance = 2

// NameIndex remembers record names resolved during this session.
// It only feeds suggestions; records are always fetched fresh.
type NameIndex struct {
	mu    sync.RWMutex
	names []string
	seen  map[string]struct{}
}

// NewNameIndex creates an empty index.
func NewNameIndex() *NameIndex {
	return &NameIndex{seen: make(map[string]struct{})}
}

// Add records names, ignoring duplicates and blanks.
func (n *NameIndex) Add(names ...string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		if _, ok := n.seen[name]; ok {
			continue
		}

		n.seen[name] = struct{}{}
		n.names = append(n.names, name)
	}
}

// Suggest returns up to limit remembered names close to term, best first.
// Names containing the term's letters in order rank ahead of names that are
// only a small edit away.
func (n *NameIndex) Suggest(term string, limit int) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || limit <= 0 {
		return nil
	}

	n.mu.RLock()
	names := append([]string(nil), n.names...)
	n.mu.RUnlock()

	type candidate struct {
		name     string
		distance int
		subseq   bool
	}

	candidates := make([]candidate, 0, len(names))

	for _, rank := range fuzzy.RankFindNormalizedFold(term, names) {
		if rank.Target == term {
			continue
		}

		candidates = append(candidates, candidate{name: rank.Target, distance: rank.Distance, subseq: true})
	}

	for _, name := range names {
		if name == term || fuzzy.MatchNormalizedFold(term, name) {
			continue
		}

		if d := fuzzy.LevenshteinDistance(term, name); d <= maxEditDistance {
			candidates = append(candidates, candidate{name: name, distance: d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].subseq != candidates[j].subseq {
			return candidates[i].subseq
		}

		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}

		return candidates[i].name < candidates[j].name
	})

	out := make([]string, 0, limit)
	for _, c := range candidates {
		if len(out) == limit {
			break
		}

		out = append(out, c.name)
	}

	return out
}
