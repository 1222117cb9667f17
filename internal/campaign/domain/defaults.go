package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultResources returns the canonical empty resource bundle. Both dual
// tracks start with 2 Boost and 2 Kick.
func DefaultResources() Resources {
	return Resources{
		AttitudeBoost: 2,
		AttitudeKick:  2,
		TurboBoost:    2,
		TurboKick:     2,
	}
}

// DefaultCharacter returns the canonical not-yet-built character sheet.
// Every call returns an independent value with no shared nested slices.
func DefaultCharacter() Character {
	return Character{
		Created:   false,
		Playbook:  "Loner",
		Name:      "Unnamed Loner",
		Traits:    []string{},
		OtherGear: []string{},
		OwnedMods: []string{},
		Portals:   []Portal{},
	}
}

// NewCampaign mints a fresh campaign with defaults, a generated id, and a
// single empty live journal chapter. A blank name falls back to
// DefaultCampaignName.
func NewCampaign(name string, now func() time.Time, idGen func() (string, error)) (Campaign, error) {
	if now == nil {
		now = time.Now
	}
	if idGen == nil {
		idGen = func() (string, error) { return "", fmt.Errorf("id generator is required") }
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = DefaultCampaignName
	}

	campaignID, err := idGen()
	if err != nil {
		return Campaign{}, fmt.Errorf("generate campaign id: %w", err)
	}
	chapterID, err := idGen()
	if err != nil {
		return Campaign{}, fmt.Errorf("generate chapter id: %w", err)
	}

	createdAt := Millis(now())
	return Campaign{
		ID:            campaignID,
		Name:          trimmed,
		SchemaVersion: SchemaVersion,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
		Locked:        false,
		Character:     DefaultCharacter(),
		Resources:     DefaultResources(),
		Run:           RunState{Tracks: []Track{}},
		Journal: []JournalChapter{
			{ID: chapterID, Title: LiveChapterTitle, CreatedAt: createdAt, UpdatedAt: createdAt},
		},
		Epilogue: EpilogueState{Legacies: []EpilogueItem{}, Dooms: []EpilogueItem{}},
		NPCs:     []NPC{},
		Worlds:   []World{},
	}, nil
}
