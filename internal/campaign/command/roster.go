package command

import (
	"time"

	"github.com/solo-blaster/companion/internal/campaign/domain"
)

// AddNPC adds a non-player character to the roster. ID and timestamps
// are filled in when blank.
type AddNPC struct {
	NPC domain.NPC
}

func (AddNPC) Name() string { return "npc.add" }

func (cmd AddNPC) Apply(c domain.Campaign, now time.Time) (domain.Campaign, error) {
	npc := cmd.NPC
	npcID, err := ensureID(npc.ID)
	if err != nil {
		return c, err
	}
	npc.ID = npcID
	return domain.ApplyAddNPC(c, npc, domain.Millis(now)), nil
}

// UpdateNPC replaces an existing roster entry by id.
type UpdateNPC struct {
	NPC domain.NPC
}

func (UpdateNPC) Name() string { return "npc.update" }

func (cmd UpdateNPC) Apply(c domain.Campaign, now time.Time) (domain.Campaign, error) {
	return domain.ApplyUpdateNPC(c, cmd.NPC, domain.Millis(now))
}

// RemoveNPC deletes a roster entry by id.
type RemoveNPC struct {
	ID string
}

func (RemoveNPC) Name() string { return "npc.remove" }

func (cmd RemoveNPC) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyRemoveNPC(c, cmd.ID)
}

// AddWorld adds a custom world to the campaign's map.
type AddWorld struct {
	World domain.World
}

func (AddWorld) Name() string { return "world.add" }

func (cmd AddWorld) Apply(c domain.Campaign, now time.Time) (domain.Campaign, error) {
	world := cmd.World
	worldID, err := ensureID(world.ID)
	if err != nil {
		return c, err
	}
	world.ID = worldID
	return domain.ApplyAddWorld(c, world, domain.Millis(now)), nil
}

// UpdateWorld replaces an existing custom world by id.
type UpdateWorld struct {
	World domain.World
}

func (UpdateWorld) Name() string { return "world.update" }

func (cmd UpdateWorld) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyUpdateWorld(c, cmd.World)
}

// RemoveWorld deletes a custom world by id. Portals referencing it are
// kept; the world graph tolerates dangling names.
type RemoveWorld struct {
	ID string
}

func (RemoveWorld) Name() string { return "world.remove" }

func (cmd RemoveWorld) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyRemoveWorld(c, cmd.ID)
}

// AddPortal records a portal discovered between two worlds.
type AddPortal struct {
	Portal domain.Portal
}

func (AddPortal) Name() string { return "portal.add" }

func (cmd AddPortal) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	portal := cmd.Portal
	portalID, err := ensureID(portal.ID)
	if err != nil {
		return c, err
	}
	portal.ID = portalID
	return domain.ApplyAddPortal(c, portal), nil
}

// RemovePortal deletes a portal by id.
type RemovePortal struct {
	ID string
}

func (RemovePortal) Name() string { return "portal.remove" }

func (cmd RemovePortal) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyRemovePortal(c, cmd.ID)
}
