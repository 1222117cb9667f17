package worldgraph

import (
	"testing"

	"github.com/solo-blaster/companion/internal/campaign/domain"
)

func testCampaign() domain.Campaign {
	return domain.Campaign{
		Worlds: []domain.World{
			{
				ID:          "w1",
				Name:        "Aberfeldy",
				Kind:        domain.WorldCustom,
				Adjacencies: []string{"Vastiche", "Zephyr Row"},
			},
			{
				ID:   "w2",
				Name: "Zephyr Row",
				Kind: domain.WorldCustom,
			},
		},
	}
}

func TestAllNamesMergesCanonAndCustom(t *testing.T) {
	names := AllNames(testCampaign())
	if len(names) != 14 {
		t.Fatalf("expected 12 canon + 2 custom names, got %d: %v", len(names), names)
	}
	if names[0] != "Aberfeldy" {
		t.Fatalf("expected collated order starting with Aberfeldy, got %v", names[:3])
	}

	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true
	}
	if !seen["Null"] || !seen["Zephyr Row"] {
		t.Fatalf("missing expected names in %v", names)
	}
}

func TestAdjacentCanon(t *testing.T) {
	c := testCampaign()
	if !Adjacent(c, "Null", "Vastiche") {
		t.Fatal("expected canon adjacency Null-Vastiche")
	}
	if !Adjacent(c, "Vastiche", "Null") {
		t.Fatal("expected canon adjacency to be symmetric")
	}
	if Adjacent(c, "Null", "Calorium") {
		t.Fatal("expected Null-Calorium not adjacent")
	}
	if Adjacent(c, "Null", "Null") {
		t.Fatal("expected no self adjacency")
	}
	if Adjacent(c, "", "Null") {
		t.Fatal("expected blank name not adjacent")
	}
}

func TestAdjacentCustom(t *testing.T) {
	c := testCampaign()
	if !Adjacent(c, "Aberfeldy", "Vastiche") {
		t.Fatal("expected custom world adjacent to canon world")
	}
	// Undirected: only Aberfeldy lists Zephyr Row.
	if !Adjacent(c, "Zephyr Row", "Aberfeldy") {
		t.Fatal("expected custom adjacency to work in both directions")
	}
}

func TestAdjacentTo(t *testing.T) {
	c := testCampaign()
	adjacent := AdjacentTo(c, "Aberfeldy")
	want := map[string]bool{"Vastiche": true, "Zephyr Row": true}
	if len(adjacent) != len(want) {
		t.Fatalf("unexpected adjacency list %v", adjacent)
	}
	for _, name := range adjacent {
		if !want[name] {
			t.Fatalf("unexpected neighbour %q", name)
		}
	}
}
