// Package worldgraph answers adjacency questions about the multiverse
// map: the canon worlds baked into the compendium plus the campaign's
// custom worlds. Canon adjacency is fixed; custom adjacency is whatever
// the player curated, treated as undirected.
package worldgraph

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/solo-blaster/companion/internal/campaign/domain"
	"github.com/solo-blaster/companion/internal/compendium"
)

// AllNames returns every world name reachable in the campaign: canon
// worlds first-class, custom worlds merged in, deduplicated and sorted
// with locale-aware collation.
func AllNames(c domain.Campaign) []string {
	canon, err := compendium.CanonWorlds()
	if err != nil {
		canon = nil
	}

	seen := make(map[string]bool, len(canon)+len(c.Worlds))
	names := make([]string, 0, len(canon)+len(c.Worlds))
	for _, world := range canon {
		if !seen[world.Name] {
			seen[world.Name] = true
			names = append(names, world.Name)
		}
	}
	for _, world := range c.Worlds {
		if world.Name != "" && !seen[world.Name] {
			seen[world.Name] = true
			names = append(names, world.Name)
		}
	}

	collate.New(language.English).SortStrings(names)
	return names
}

// Adjacent reports whether two worlds share a portal route. A world is
// never adjacent to itself.
func Adjacent(c domain.Campaign, a, b string) bool {
	if a == "" || b == "" || a == b {
		return false
	}

	canon, err := compendium.CanonAdjacency()
	if err == nil {
		if containsName(canon[a], b) || containsName(canon[b], a) {
			return true
		}
	}

	for _, world := range c.Worlds {
		if world.Name == a && containsName(world.Adjacencies, b) {
			return true
		}
		if world.Name == b && containsName(world.Adjacencies, a) {
			return true
		}
	}
	return false
}

// AdjacentTo returns every world adjacent to the named one, sorted.
func AdjacentTo(c domain.Campaign, name string) []string {
	var adjacent []string
	for _, candidate := range AllNames(c) {
		if Adjacent(c, name, candidate) {
			adjacent = append(adjacent, candidate)
		}
	}
	return adjacent
}

func containsName(names []string, want string) bool {
	for _, name := range names {
		if name == want {
			return true
		}
	}
	return false
}
