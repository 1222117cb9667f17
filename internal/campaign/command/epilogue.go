package command

import (
	"time"

	"github.com/solo-blaster/companion/internal/campaign/domain"
)

// AddLegacy records a named legacy. The legacy counter follows the list
// length.
type AddLegacy struct {
	ID       string
	ItemName string
}

func (AddLegacy) Name() string { return "epilogue.add_legacy" }

func (cmd AddLegacy) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	itemID, err := ensureID(cmd.ID)
	if err != nil {
		return c, err
	}
	return domain.ApplyAddLegacy(c, itemID, cmd.ItemName)
}

// RenameLegacy renames a legacy by id.
type RenameLegacy struct {
	ID       string
	ItemName string
}

func (RenameLegacy) Name() string { return "epilogue.rename_legacy" }

func (cmd RenameLegacy) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyRenameLegacy(c, cmd.ID, cmd.ItemName)
}

// RemoveLegacy deletes a legacy by id.
type RemoveLegacy struct {
	ID string
}

func (RemoveLegacy) Name() string { return "epilogue.remove_legacy" }

func (cmd RemoveLegacy) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyRemoveLegacy(c, cmd.ID)
}

// AddDoom records a named doom. The doom counter follows the list
// length.
type AddDoom struct {
	ID       string
	ItemName string
}

func (AddDoom) Name() string { return "epilogue.add_doom" }

func (cmd AddDoom) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	itemID, err := ensureID(cmd.ID)
	if err != nil {
		return c, err
	}
	return domain.ApplyAddDoom(c, itemID, cmd.ItemName)
}

// RenameDoom renames a doom by id.
type RenameDoom struct {
	ID       string
	ItemName string
}

func (RenameDoom) Name() string { return "epilogue.rename_doom" }

func (cmd RenameDoom) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyRenameDoom(c, cmd.ID, cmd.ItemName)
}

// RemoveDoom deletes a doom by id.
type RemoveDoom struct {
	ID string
}

func (RemoveDoom) Name() string { return "epilogue.remove_doom" }

func (cmd RemoveDoom) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyRemoveDoom(c, cmd.ID)
}
