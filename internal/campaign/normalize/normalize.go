// Package normalize turns arbitrary persisted or imported data into a
// fully populated campaign. It is the single trust boundary between raw
// bytes and the typed schema: every load and import passes through
// Campaign before any other code sees the value.
package normalize

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/solo-blaster/companion/internal/campaign/domain"
	"github.com/solo-blaster/companion/internal/platform/id"
)

const liveChapterTitle = domain.LiveChapterTitle

// Campaign normalizes a loose JSON-decoded value into a campaign at the
// current schema version. It is total (any input yields a usable
// campaign, never a panic) and idempotent (normalizing its own output is
// a no-op modulo nothing: ids and timestamps are only minted for missing
// fields).
func Campaign(raw any) domain.Campaign {
	return CampaignAt(raw, time.Now, id.NewID)
}

// CampaignAt is Campaign with injectable clock and id generation.
func CampaignAt(raw any, now func() time.Time, idGen func() (string, error)) domain.Campaign {
	if now == nil {
		now = time.Now
	}
	if idGen == nil {
		idGen = id.NewID
	}

	m := mapValue(raw)
	runMigrations(m)

	d := &decoder{nowMillis: domain.Millis(now()), newID: idGen}

	c := domain.Campaign{
		ID:            d.id(m["id"]),
		Name:          stringOrTrimmed(m["name"], domain.DefaultCampaignName),
		SchemaVersion: domain.SchemaVersion,
		Locked:        boolValue(m["locked"]),
		Character:     d.character(mapValue(m["character"])),
		Resources:     d.resources(mapValue(m["resources"])),
		Run:           d.run(mapValue(m["run"])),
		Journal:       d.journal(m["journalChapters"]),
		Epilogue:      d.epilogue(mapValue(m["epilogue"])),
		NPCs:          d.npcs(m["npcs"]),
		Worlds:        d.worlds(m["worlds"]),
	}
	c.CreatedAt = int64Value(m["createdAt"], d.nowMillis)
	c.UpdatedAt = int64Value(m["updatedAt"], c.CreatedAt)

	c.Resources = domain.ClampResources(c.Resources)
	return domain.SyncEpilogueCounts(c)
}

type decoder struct {
	nowMillis int64
	newID     func() (string, error)
}

var fallbackSeq atomic.Int64

// id keeps an existing non-blank id and mints one otherwise.
func (d *decoder) id(existing any) string {
	if s, ok := existing.(string); ok && trimmed(s) != "" {
		return s
	}
	generated, err := d.newID()
	if err != nil {
		return fmt.Sprintf("fallback-%d", fallbackSeq.Add(1))
	}
	return generated
}

func (d *decoder) character(m map[string]any) domain.Character {
	ch := domain.DefaultCharacter()
	ch.Created = boolValue(m["created"])
	ch.Playbook = stringOr(m["playbook"], ch.Playbook)
	ch.Name = stringOr(m["name"], ch.Name)
	ch.Pronouns = stringValue(m["pronouns"])
	ch.Look = stringValue(m["look"])
	ch.Family = pairValue(m["family"])
	ch.Vibes = stringValue(m["vibes"])
	ch.Hangouts = pairValue(m["hangouts"])
	ch.Hook = stringValue(m["hook"])
	ch.Traits = stringList(m["traits"])
	ch.Autodidact = pairValue(m["autodidact"])

	raygun := mapValue(m["raygun"])
	ch.Raygun = domain.Raygun{
		A: stringValue(raygun["a"]),
		B: stringValue(raygun["b"]),
	}

	board := mapValue(m["hoverboard"])
	ch.Hoverboard = domain.Hoverboard{
		GripColor:   stringValue(board["gripColor"]),
		GripCut:     stringValue(board["gripCut"]),
		DeckGraphic: stringValue(board["deckGraphic"]),
		BoardType:   stringValue(board["boardType"]),
	}

	factions := mapValue(m["factions"])
	ch.Factions = domain.Factions{
		Fan:     factionName(factions["fan"]),
		Annoyed: factionName(factions["annoyed"]),
		Family:  factionName(factions["family"]),
	}

	ch.PersonalGear = stringValue(m["personalGear"])
	ch.OtherGear = stringList(m["otherGear"])
	ch.SignatureGear = d.signatureGear(m["signatureGear"])
	ch.Components = decodeComponents(mapValue(m["components"]))
	ch.OwnedMods = cleanStrings(stringList(m["ownedMods"]))
	ch.Portals = d.portals(m["portals"])
	ch.Notes = stringValue(m["notes"])
	return ch
}

// factionName accepts both the current plain string and the older object
// form that carried a name alongside a relation.
func factionName(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if m, ok := v.(map[string]any); ok {
		return stringValue(m["name"])
	}
	return ""
}

func (d *decoder) signatureGear(v any) *domain.SignatureGear {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return &domain.SignatureGear{
		GearID:        stringValue(m["gearId"]),
		GearName:      stringValue(m["gearName"]),
		Type:          stringValue(m["type"]),
		FreeModName:   stringValue(m["freeModName"]),
		Looks:         stringList(m["looks"]),
		InstalledMods: cleanStrings(stringList(m["installedMods"])),
	}
}

func (d *decoder) portals(v any) []domain.Portal {
	out := []domain.Portal{}
	items, _ := v.([]any)
	for _, item := range items {
		pm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, domain.Portal{
			ID:     d.id(pm["id"]),
			From:   stringValue(pm["from"]),
			To:     stringValue(pm["to"]),
			TwoWay: boolValue(pm["twoWay"]),
			Note:   stringValue(pm["note"]),
		})
	}
	return out
}

func decodeComponents(m map[string]any) domain.Components {
	return domain.Components{
		Coil: maxInt(0, intValue(m["coil"], 0)),
		Disc: maxInt(0, intValue(m["disc"], 0)),
		Lens: maxInt(0, intValue(m["lens"], 0)),
		Gem:  maxInt(0, intValue(m["gem"], 0)),
	}
}

func (d *decoder) resources(m map[string]any) domain.Resources {
	res := domain.DefaultResources()
	res.AttitudeBoost = intValue(m["attitudeBoost"], res.AttitudeBoost)
	res.AttitudeKick = intValue(m["attitudeKick"], res.AttitudeKick)
	res.TurboBoost = intValue(m["turboBoost"], res.TurboBoost)
	res.TurboKick = intValue(m["turboKick"], res.TurboKick)
	res.Bite = intValue(m["bite"], 0)
	res.Trouble = intValue(m["trouble"], 0)
	res.Style = intValue(m["style"], 0)
	res.Doom = intValue(m["doom"], 0)
	res.Legacy = intValue(m["legacy"], 0)
	return res
}

func (d *decoder) run(m map[string]any) domain.RunState {
	run := domain.RunState{
		IsActive:       boolValue(m["isActive"]),
		Goal:           stringValue(m["goal"]),
		Prize:          stringValue(m["prize"]),
		BiteStart:      maxInt(0, intValue(m["biteStart"], 0)),
		DisasterRolled: boolValue(m["disasterRolled"]),
		Tracks:         []domain.Track{},
	}
	items, _ := m["tracks"].([]any)
	for _, item := range items {
		tm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		length := maxInt(1, intValue(tm["length"], 1))
		ticks := intValue(tm["ticks"], 0)
		if ticks < 0 {
			ticks = 0
		}
		if ticks > length {
			ticks = length
		}
		kind := domain.TrackProgress
		if stringValue(tm["type"]) == string(domain.TrackDanger) {
			kind = domain.TrackDanger
		}
		run.Tracks = append(run.Tracks, domain.Track{
			ID:     d.id(tm["id"]),
			Type:   kind,
			Name:   stringValue(tm["name"]),
			Length: length,
			Ticks:  ticks,
		})
	}
	return run
}

func (d *decoder) journal(v any) []domain.JournalChapter {
	chapters := []domain.JournalChapter{}
	items, _ := v.([]any)
	for _, item := range items {
		cm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		createdAt := int64Value(cm["createdAt"], d.nowMillis)
		chapters = append(chapters, domain.JournalChapter{
			ID:        d.id(cm["id"]),
			Title:     stringValue(cm["title"]),
			HTML:      stringValue(cm["html"]),
			CreatedAt: createdAt,
			UpdatedAt: int64Value(cm["updatedAt"], createdAt),
		})
	}
	if domain.LiveChapterIndex(chapters) < 0 {
		chapters = append(chapters, domain.JournalChapter{
			ID:        d.id(nil),
			Title:     liveChapterTitle,
			CreatedAt: d.nowMillis,
			UpdatedAt: d.nowMillis,
		})
	}
	return chapters
}

func (d *decoder) epilogue(m map[string]any) domain.EpilogueState {
	return domain.EpilogueState{
		Legacies: d.epilogueItems(m["legacies"]),
		Dooms:    d.epilogueItems(m["dooms"]),
	}
}

func (d *decoder) epilogueItems(v any) []domain.EpilogueItem {
	out := []domain.EpilogueItem{}
	items, _ := v.([]any)
	for _, item := range items {
		im, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, domain.EpilogueItem{
			ID:   d.id(im["id"]),
			Name: stringValue(im["name"]),
		})
	}
	return out
}

func (d *decoder) npcs(v any) []domain.NPC {
	out := []domain.NPC{}
	items, _ := v.([]any)
	for _, item := range items {
		nm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		kind := domain.NPCTerrestrial
		if stringValue(nm["kind"]) == string(domain.NPCExtraterrestrial) {
			kind = domain.NPCExtraterrestrial
		}
		createdAt := int64Value(nm["createdAt"], d.nowMillis)
		out = append(out, domain.NPC{
			ID:        d.id(nm["id"]),
			Kind:      kind,
			Name:      stringOr(nm["name"], "NPC"),
			Location:  stringValue(nm["location"]),
			Wants:     stringValue(nm["wants"]),
			Likes:     stringValue(nm["likes"]),
			Dislikes:  stringValue(nm["dislikes"]),
			Notes:     stringValue(nm["notes"]),
			CreatedAt: createdAt,
			UpdatedAt: int64Value(nm["updatedAt"], createdAt),
		})
	}
	return out
}

// worlds decodes the persisted world list. Canon worlds are compiled in,
// so everything stored here is custom regardless of what the record says.
func (d *decoder) worlds(v any) []domain.World {
	out := []domain.World{}
	items, _ := v.([]any)
	for _, item := range items {
		wm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, domain.World{
			ID:          d.id(wm["id"]),
			Name:        stringOrTrimmed(wm["name"], "Unnamed World"),
			Kind:        domain.WorldCustom,
			Colours:     stringValue(wm["colours"]),
			Landscape:   stringValue(wm["landscape"]),
			Ruins:       stringValue(wm["ruins"]),
			Twist:       stringValue(wm["twist"]),
			Adjacencies: cleanStrings(stringList(wm["adjacencies"])),
			CreatedAt:   int64Value(wm["createdAt"], d.nowMillis),
		})
	}
	return out
}

// stringOrTrimmed trims the stored value and falls back when the result
// is empty.
func stringOrTrimmed(v any, def string) string {
	if s, ok := v.(string); ok {
		if t := trimmed(s); t != "" {
			return t
		}
	}
	return def
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
