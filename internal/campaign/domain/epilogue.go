package domain

import (
	"strings"

	apperrors "github.com/solo-blaster/companion/internal/errors"
)

// SyncEpilogueCounts re-derives Resources.Legacy and Resources.Doom from
// the epilogue lists. List length is authoritative whenever a list is
// non-empty; an empty list leaves the stored counter alone so older saves
// that tracked counts without named items keep them.
func SyncEpilogueCounts(c Campaign) Campaign {
	if len(c.Epilogue.Legacies) > 0 {
		c.Resources.Legacy = len(c.Epilogue.Legacies)
	}
	if len(c.Epilogue.Dooms) > 0 {
		c.Resources.Doom = len(c.Epilogue.Dooms)
	}
	return c
}

// ApplyAddLegacy appends a named legacy and re-derives the counters.
func ApplyAddLegacy(c Campaign, itemID, name string) (Campaign, error) {
	item, err := newEpilogueItem(itemID, name)
	if err != nil {
		return Campaign{}, err
	}
	c.Epilogue.Legacies = append(append([]EpilogueItem(nil), c.Epilogue.Legacies...), item)
	c.Resources.Legacy = len(c.Epilogue.Legacies)
	return c, nil
}

// ApplyAddDoom appends a named doom and re-derives the counters.
func ApplyAddDoom(c Campaign, itemID, name string) (Campaign, error) {
	item, err := newEpilogueItem(itemID, name)
	if err != nil {
		return Campaign{}, err
	}
	c.Epilogue.Dooms = append(append([]EpilogueItem(nil), c.Epilogue.Dooms...), item)
	c.Resources.Doom = len(c.Epilogue.Dooms)
	return c, nil
}

// ApplyRenameLegacy renames a legacy by id.
func ApplyRenameLegacy(c Campaign, itemID, name string) (Campaign, error) {
	renamed, err := renameEpilogueItem(c.Epilogue.Legacies, itemID, name)
	if err != nil {
		return Campaign{}, err
	}
	c.Epilogue.Legacies = renamed
	return c, nil
}

// ApplyRenameDoom renames a doom by id.
func ApplyRenameDoom(c Campaign, itemID, name string) (Campaign, error) {
	renamed, err := renameEpilogueItem(c.Epilogue.Dooms, itemID, name)
	if err != nil {
		return Campaign{}, err
	}
	c.Epilogue.Dooms = renamed
	return c, nil
}

// ApplyRemoveLegacy removes a legacy by id and re-derives the counter.
// Removing the last item drops the counter to zero.
func ApplyRemoveLegacy(c Campaign, itemID string) (Campaign, error) {
	remaining, err := removeEpilogueItem(c.Epilogue.Legacies, itemID)
	if err != nil {
		return Campaign{}, err
	}
	c.Epilogue.Legacies = remaining
	c.Resources.Legacy = len(remaining)
	return c, nil
}

// ApplyRemoveDoom removes a doom by id and re-derives the counter.
func ApplyRemoveDoom(c Campaign, itemID string) (Campaign, error) {
	remaining, err := removeEpilogueItem(c.Epilogue.Dooms, itemID)
	if err != nil {
		return Campaign{}, err
	}
	c.Epilogue.Dooms = remaining
	c.Resources.Doom = len(remaining)
	return c, nil
}

func newEpilogueItem(itemID, name string) (EpilogueItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return EpilogueItem{}, apperrors.New(apperrors.CodeEpilogueNameEmpty, "epilogue item name is required")
	}
	return EpilogueItem{ID: itemID, Name: name}, nil
}

func renameEpilogueItem(items []EpilogueItem, itemID, name string) ([]EpilogueItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.New(apperrors.CodeEpilogueNameEmpty, "epilogue item name is required")
	}
	next := append([]EpilogueItem(nil), items...)
	for i := range next {
		if next[i].ID == itemID {
			next[i].Name = name
			return next, nil
		}
	}
	return nil, apperrors.New(apperrors.CodeNotFound, "epilogue item not found")
}

func removeEpilogueItem(items []EpilogueItem, itemID string) ([]EpilogueItem, error) {
	next := make([]EpilogueItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == itemID {
			found = true
			continue
		}
		next = append(next, item)
	}
	if !found {
		return nil, apperrors.New(apperrors.CodeNotFound, "epilogue item not found")
	}
	return next, nil
}
