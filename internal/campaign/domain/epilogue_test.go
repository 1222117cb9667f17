package domain

import (
	"testing"

	apperrors "github.com/solo-blaster/companion/internal/errors"
)

func TestEpilogueCountsStayInSync(t *testing.T) {
	c := testCampaign(t)

	c, err := ApplyAddDoom(c, "d1", "Debt")
	if err != nil {
		t.Fatalf("add doom: %v", err)
	}
	c, err = ApplyAddLegacy(c, "l1", "Reputation")
	if err != nil {
		t.Fatalf("add legacy: %v", err)
	}
	if c.Resources.Doom != 1 || c.Resources.Legacy != 1 {
		t.Fatalf("expected doom=1 legacy=1, got doom=%d legacy=%d", c.Resources.Doom, c.Resources.Legacy)
	}

	c, err = ApplyAddDoom(c, "d2", "Rivalry")
	if err != nil {
		t.Fatalf("add second doom: %v", err)
	}
	if c.Resources.Doom != 2 {
		t.Fatalf("expected doom=2, got %d", c.Resources.Doom)
	}

	c, err = ApplyRemoveDoom(c, "d1")
	if err != nil {
		t.Fatalf("remove doom: %v", err)
	}
	if c.Resources.Doom != 1 {
		t.Fatalf("expected doom=1 after removal, got %d", c.Resources.Doom)
	}

	c, err = ApplyRemoveDoom(c, "d2")
	if err != nil {
		t.Fatalf("remove last doom: %v", err)
	}
	if c.Resources.Doom != 0 || len(c.Epilogue.Dooms) != 0 {
		t.Fatalf("expected empty dooms and doom=0, got %d items doom=%d", len(c.Epilogue.Dooms), c.Resources.Doom)
	}
}

func TestApplyRenameEpilogueItems(t *testing.T) {
	c := testCampaign(t)
	c, err := ApplyAddLegacy(c, "l1", "Reputation")
	if err != nil {
		t.Fatalf("add legacy: %v", err)
	}

	c, err = ApplyRenameLegacy(c, "l1", "Legend")
	if err != nil {
		t.Fatalf("rename legacy: %v", err)
	}
	if c.Epilogue.Legacies[0].Name != "Legend" {
		t.Fatalf("expected renamed legacy, got %q", c.Epilogue.Legacies[0].Name)
	}

	if _, err := ApplyRenameLegacy(c, "missing", "x"); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if _, err := ApplyRenameDoom(c, "l1", " "); !apperrors.IsCode(err, apperrors.CodeEpilogueNameEmpty) {
		t.Fatalf("expected EPILOGUE_NAME_EMPTY, got %v", err)
	}
}

func TestSyncEpilogueCountsPreservesScalarForEmptyLists(t *testing.T) {
	c := testCampaign(t)
	c.Resources.Doom = 3
	c.Resources.Legacy = 2

	synced := SyncEpilogueCounts(c)
	if synced.Resources.Doom != 3 || synced.Resources.Legacy != 2 {
		t.Fatalf("expected stored counts kept for empty lists, got doom=%d legacy=%d", synced.Resources.Doom, synced.Resources.Legacy)
	}

	c.Epilogue.Dooms = []EpilogueItem{{ID: "d1", Name: "Debt"}}
	synced = SyncEpilogueCounts(c)
	if synced.Resources.Doom != 1 {
		t.Fatalf("expected list length authoritative, got %d", synced.Resources.Doom)
	}
}
