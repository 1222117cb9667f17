// Package domain defines the versioned campaign schema for the Solo
// Blaster companion and the pure transformation helpers that operate on
// it. Values are treated as immutable: helpers return updated copies and
// never mutate their receivers.
package domain

import "time"

// SchemaVersion is the current persisted schema version. Records tagged
// with an older (or missing) version are migrated on load.
const SchemaVersion = 3

// LiveChapterTitle is the reserved title of the one journal chapter that
// is edited in place. All other chapters are read-only snapshots.
const LiveChapterTitle = "Journal"

// DefaultCampaignName is used when a campaign is created with a blank name.
const DefaultCampaignName = "New Campaign"

// TrackType distinguishes progress clocks from danger clocks.
type TrackType string

const (
	// TrackProgress counts toward the run's goal.
	TrackProgress TrackType = "progress"
	// TrackDanger counts toward a complication.
	TrackDanger TrackType = "danger"
)

// Track is a tick clock attached to a run. Ticks stays within
// [0, Length].
type Track struct {
	ID     string    `json:"id"`
	Type   TrackType `json:"type"`
	Name   string    `json:"name"`
	Length int       `json:"length"`
	Ticks  int       `json:"ticks"`
}

// RunState holds the state of the current (or last) run.
type RunState struct {
	IsActive       bool    `json:"isActive"`
	Goal           string  `json:"goal,omitempty"`
	Prize          string  `json:"prize,omitempty"`
	BiteStart      int     `json:"biteStart,omitempty"`
	DisasterRolled bool    `json:"disasterRolled"`
	Tracks         []Track `json:"tracks"`
}

// JournalChapter is one entry in the campaign journal. Content is stored
// as sanitized HTML produced by the editor layer.
type JournalChapter struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	HTML      string `json:"html"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// EpilogueItem is a named doom or legacy earned during play.
type EpilogueItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EpilogueState holds the end-of-campaign lists. Resources.Legacy and
// Resources.Doom mirror the list lengths; SyncEpilogueCounts is the only
// place that mirroring happens.
type EpilogueState struct {
	Legacies []EpilogueItem `json:"legacies"`
	Dooms    []EpilogueItem `json:"dooms"`
}

// Resources are the campaign-wide numeric counters. Attitude and Turbo
// are dual tracks split into Boost and Kick halves.
type Resources struct {
	AttitudeBoost int `json:"attitudeBoost"`
	AttitudeKick  int `json:"attitudeKick"`
	TurboBoost    int `json:"turboBoost"`
	TurboKick     int `json:"turboKick"`
	Bite          int `json:"bite"`
	Trouble       int `json:"trouble"`
	Style         int `json:"style"`
	Doom          int `json:"doom"`
	Legacy        int `json:"legacy"`
}

// TroubleMax is the Trouble ceiling; reaching it triggers a Disaster Roll
// in the UI. The data layer only clamps.
const TroubleMax = 8

// StyleMax is the Style ceiling.
const StyleMax = 10

// ComponentKind names one of the four signature-gear component counters.
type ComponentKind string

const (
	ComponentCoil ComponentKind = "coil"
	ComponentDisc ComponentKind = "disc"
	ComponentLens ComponentKind = "lens"
	ComponentGem  ComponentKind = "gem"
)

// Components is the inventory of gear components. Counters never go
// negative.
type Components struct {
	Coil int `json:"coil"`
	Disc int `json:"disc"`
	Lens int `json:"lens"`
	Gem  int `json:"gem"`
}

// Raygun holds the two raygun flavor selections.
type Raygun struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Hoverboard holds the hoverboard cosmetic selections.
type Hoverboard struct {
	GripColor   string `json:"gripColor"`
	GripCut     string `json:"gripCut"`
	DeckGraphic string `json:"deckGraphic"`
	BoardType   string `json:"boardType"`
}

// Factions records the three faction relationships from character
// creation.
type Factions struct {
	Fan     string `json:"fan"`
	Annoyed string `json:"annoyed"`
	Family  string `json:"family"`
}

// SignatureGear is the player's chosen signature item, its variant, and
// the mods currently installed on it.
type SignatureGear struct {
	GearID        string   `json:"gearId"`
	GearName      string   `json:"gearName"`
	Type          string   `json:"type"`
	FreeModName   string   `json:"freeModName,omitempty"`
	Looks         []string `json:"looks"`
	InstalledMods []string `json:"installedMods"`
}

// Portal is a directional link between two worlds. Adjacency is validated
// at creation time by the UI; stored portals are kept as-is even when the
// worlds they name no longer exist.
type Portal struct {
	ID     string `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	TwoWay bool   `json:"twoWay"`
	Note   string `json:"note,omitempty"`
}

// Character is the Loner's sheet.
type Character struct {
	Created      bool           `json:"created"`
	Playbook     string         `json:"playbook"`
	Name         string         `json:"name"`
	Pronouns     string         `json:"pronouns"`
	Look         string         `json:"look"`
	Family       [2]string      `json:"family"`
	Vibes        string         `json:"vibes"`
	Hangouts     [2]string      `json:"hangouts"`
	Hook         string         `json:"hook"`
	Traits       []string       `json:"traits"`
	Autodidact   [2]string      `json:"autodidact"`
	Raygun       Raygun         `json:"raygun"`
	Hoverboard   Hoverboard     `json:"hoverboard"`
	Factions     Factions       `json:"factions"`
	PersonalGear string         `json:"personalGear"`
	OtherGear    []string       `json:"otherGear"`
	SignatureGear *SignatureGear `json:"signatureGear,omitempty"`
	Components   Components     `json:"components"`
	OwnedMods    []string       `json:"ownedMods"`
	Portals      []Portal       `json:"portals"`
	Notes        string         `json:"notes"`
}

// WorldKind distinguishes compiled-in canon worlds from player-created
// ones. Only custom worlds are persisted per campaign.
type WorldKind string

const (
	WorldCanon  WorldKind = "canon"
	WorldCustom WorldKind = "custom"
)

// World is a player-created world with a user-curated adjacency list.
// Adjacencies are world display names and may reference canon worlds.
type World struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        WorldKind `json:"kind"`
	Colours     string    `json:"colours,omitempty"`
	Landscape   string    `json:"landscape,omitempty"`
	Ruins       string    `json:"ruins,omitempty"`
	Twist       string    `json:"twist,omitempty"`
	Adjacencies []string  `json:"adjacencies"`
	CreatedAt   int64     `json:"createdAt"`
}

// NPCKind distinguishes terrestrial from extraterrestrial NPCs.
type NPCKind string

const (
	NPCTerrestrial      NPCKind = "terrestrial"
	NPCExtraterrestrial NPCKind = "extraterrestrial"
)

// NPC is a named non-player character.
type NPC struct {
	ID        string  `json:"id"`
	Kind      NPCKind `json:"kind"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Wants     string  `json:"wants"`
	Likes     string  `json:"likes"`
	Dislikes  string  `json:"dislikes"`
	Notes     string  `json:"notes"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

// Campaign is the root aggregate: one complete solo play-through. Every
// nested entity is exclusively owned by its campaign. A campaign loaded
// from storage always has every field populated; the normalizer
// guarantees it.
type Campaign struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	SchemaVersion int              `json:"schemaVersion"`
	CreatedAt     int64            `json:"createdAt"`
	UpdatedAt     int64            `json:"updatedAt"`
	Locked        bool             `json:"locked"`
	Character     Character        `json:"character"`
	Resources     Resources        `json:"resources"`
	Run           RunState         `json:"run"`
	Journal       []JournalChapter `json:"journalChapters"`
	Epilogue      EpilogueState    `json:"epilogue"`
	NPCs          []NPC            `json:"npcs"`
	Worlds        []World          `json:"worlds"`
}

// Millis converts a time to the epoch-millisecond representation used
// throughout the persisted schema.
func Millis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}
