package domain

import (
	"strings"

	apperrors "github.com/solo-blaster/companion/internal/errors"
)

// ApplyAddNPC appends an NPC. Blank names fall back to "NPC" and unknown
// kinds to terrestrial, mirroring the defensive defaults used on load.
func ApplyAddNPC(c Campaign, npc NPC, now int64) Campaign {
	if strings.TrimSpace(npc.Name) == "" {
		npc.Name = "NPC"
	}
	if npc.Kind != NPCExtraterrestrial {
		npc.Kind = NPCTerrestrial
	}
	npc.CreatedAt = now
	npc.UpdatedAt = now
	c.NPCs = append(append([]NPC(nil), c.NPCs...), npc)
	return c
}

// ApplyUpdateNPC replaces an NPC's mutable fields by id.
func ApplyUpdateNPC(c Campaign, npc NPC, now int64) (Campaign, error) {
	next := append([]NPC(nil), c.NPCs...)
	for i := range next {
		if next[i].ID != npc.ID {
			continue
		}
		npc.CreatedAt = next[i].CreatedAt
		npc.UpdatedAt = now
		if npc.Kind != NPCExtraterrestrial {
			npc.Kind = NPCTerrestrial
		}
		next[i] = npc
		c.NPCs = next
		return c, nil
	}
	return Campaign{}, apperrors.New(apperrors.CodeNotFound, "npc not found")
}

// ApplyRemoveNPC deletes an NPC by id.
func ApplyRemoveNPC(c Campaign, npcID string) (Campaign, error) {
	next := make([]NPC, 0, len(c.NPCs))
	found := false
	for _, npc := range c.NPCs {
		if npc.ID == npcID {
			found = true
			continue
		}
		next = append(next, npc)
	}
	if !found {
		return Campaign{}, apperrors.New(apperrors.CodeNotFound, "npc not found")
	}
	c.NPCs = next
	return c, nil
}

// ApplyAddWorld appends a custom world. Adjacency entries are trimmed and
// deduplicated; the graph itself is not validated here.
func ApplyAddWorld(c Campaign, world World, now int64) Campaign {
	world.Kind = WorldCustom
	world.Name = strings.TrimSpace(world.Name)
	if world.Name == "" {
		world.Name = "Unnamed World"
	}
	world.Adjacencies = cleanNames(world.Adjacencies)
	world.CreatedAt = now
	c.Worlds = append(append([]World(nil), c.Worlds...), world)
	return c
}

// ApplyUpdateWorld replaces a custom world's fields by id.
func ApplyUpdateWorld(c Campaign, world World) (Campaign, error) {
	next := append([]World(nil), c.Worlds...)
	for i := range next {
		if next[i].ID != world.ID {
			continue
		}
		world.Kind = WorldCustom
		world.CreatedAt = next[i].CreatedAt
		world.Adjacencies = cleanNames(world.Adjacencies)
		next[i] = world
		c.Worlds = next
		return c, nil
	}
	return Campaign{}, apperrors.New(apperrors.CodeNotFound, "world not found")
}

// ApplyRemoveWorld deletes a custom world by id. Portals that referenced
// the world are kept; the normalizer tolerates dangling references.
func ApplyRemoveWorld(c Campaign, worldID string) (Campaign, error) {
	next := make([]World, 0, len(c.Worlds))
	found := false
	for _, world := range c.Worlds {
		if world.ID == worldID {
			found = true
			continue
		}
		next = append(next, world)
	}
	if !found {
		return Campaign{}, apperrors.New(apperrors.CodeNotFound, "world not found")
	}
	c.Worlds = next
	return c, nil
}

// ApplyAddPortal appends a portal link to the character's map. Adjacency
// of the two endpoints is the UI's concern at creation time.
func ApplyAddPortal(c Campaign, portal Portal) Campaign {
	portal.From = strings.TrimSpace(portal.From)
	portal.To = strings.TrimSpace(portal.To)
	c.Character.Portals = append(append([]Portal(nil), c.Character.Portals...), portal)
	return c
}

// ApplyRemovePortal deletes a portal by id.
func ApplyRemovePortal(c Campaign, portalID string) (Campaign, error) {
	next := make([]Portal, 0, len(c.Character.Portals))
	found := false
	for _, portal := range c.Character.Portals {
		if portal.ID == portalID {
			found = true
			continue
		}
		next = append(next, portal)
	}
	if !found {
		return Campaign{}, apperrors.New(apperrors.CodeNotFound, "portal not found")
	}
	c.Character.Portals = next
	return c, nil
}

func cleanNames(names []string) []string {
	cleaned := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		cleaned = append(cleaned, name)
	}
	return cleaned
}
