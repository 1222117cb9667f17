package command

import (
	"testing"
	"time"

	"github.com/solo-blaster/companion/internal/campaign/domain"
	apperrors "github.com/solo-blaster/companion/internal/errors"
)

func testCampaign(t *testing.T) domain.Campaign {
	t.Helper()
	seq := 0
	c, err := domain.NewCampaign("Test", nil, func() (string, error) {
		seq++
		return string(rune('a' + seq)), nil
	})
	if err != nil {
		t.Fatalf("new campaign: %v", err)
	}
	return c
}

func apply(t *testing.T, c domain.Campaign, cmd Command) domain.Campaign {
	t.Helper()
	updated, err := cmd.Apply(c, time.UnixMilli(1000))
	if err != nil {
		t.Fatalf("%s: %v", cmd.Name(), err)
	}
	return updated
}

func TestSetCampaignName(t *testing.T) {
	c := testCampaign(t)

	c = apply(t, c, SetCampaignName{CampaignName: "  Neon Nights  "})
	if c.Name != "Neon Nights" {
		t.Fatalf("expected trimmed name, got %q", c.Name)
	}

	if _, err := (SetCampaignName{CampaignName: "   "}).Apply(c, time.Now()); !apperrors.IsCode(err, apperrors.CodeCampaignNameEmpty) {
		t.Fatalf("expected CAMPAIGN_NAME_EMPTY, got %v", err)
	}
}

func TestSetCharacterMarksCreated(t *testing.T) {
	c := testCampaign(t)
	sheet := domain.DefaultCharacter()
	sheet.Name = "Jax"

	c = apply(t, c, SetCharacter{Character: sheet})
	if !c.Character.Created {
		t.Fatal("expected created flag set")
	}
	if c.Character.Name != "Jax" {
		t.Fatalf("expected replaced sheet, got %q", c.Character.Name)
	}
}

func TestAllowedWhileLocked(t *testing.T) {
	if !AllowedWhileLocked(AppendJournal{}) {
		t.Fatal("expected journal appends allowed while locked")
	}
	for _, cmd := range []Command{
		SetCampaignName{CampaignName: "x"},
		AdjustResource{Resource: domain.ResourceBite, Delta: 1},
		StartRun{Goal: "g"},
		SetJournal{},
		ArchiveJournal{},
		StartEpilogue{},
	} {
		if AllowedWhileLocked(cmd) {
			t.Fatalf("%s should not be allowed while locked", cmd.Name())
		}
	}
}

func TestAddTrackMintsID(t *testing.T) {
	c := testCampaign(t)
	c = apply(t, c, AddTrack{Type: domain.TrackProgress, Title: "Infiltrate", Length: 4})
	if len(c.Run.Tracks) != 1 || c.Run.Tracks[0].ID == "" {
		t.Fatalf("expected track with minted id, got %+v", c.Run.Tracks)
	}

	c = apply(t, c, AddTrack{ID: "keep", Type: domain.TrackDanger, Title: "Heat", Length: 6})
	if c.Run.Tracks[1].ID != "keep" {
		t.Fatalf("expected caller id kept, got %q", c.Run.Tracks[1].ID)
	}
}

func TestStartEpilogueLocks(t *testing.T) {
	c := testCampaign(t)
	c = apply(t, c, StartEpilogue{})
	if !c.Locked {
		t.Fatal("expected campaign locked")
	}
}

func TestInstallModErrorLeavesCampaignUntouched(t *testing.T) {
	c := testCampaign(t)
	c.Character.SignatureGear = &domain.SignatureGear{GearID: "blaster"}

	cost := domain.Cost{Coil: 3}
	updated, err := (InstallMod{ModName: "Overdrive", Cost: cost}).Apply(c, time.Now())
	if !apperrors.IsCode(err, apperrors.CodeComponentsInsufficient) {
		t.Fatalf("expected COMPONENTS_INSUFFICIENT, got %v", err)
	}
	if len(updated.Character.SignatureGear.InstalledMods) != 0 {
		t.Fatal("expected no mods installed after failure")
	}
}

func TestAppendJournalStampsChapter(t *testing.T) {
	c := testCampaign(t)
	c = apply(t, c, AppendJournal{HTML: "<p>Entry</p>"})
	live := c.Journal[domain.LiveChapterIndex(c.Journal)]
	if live.HTML != "<p>Entry</p>" {
		t.Fatalf("unexpected html %q", live.HTML)
	}
	if live.UpdatedAt != 1000 {
		t.Fatalf("expected updatedAt 1000, got %d", live.UpdatedAt)
	}
}
