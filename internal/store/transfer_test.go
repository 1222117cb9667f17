package store

import (
	"context"
	"encoding/json"
	"testing"

	apperrors "github.com/solo-blaster/companion/internal/errors"
	"github.com/solo-blaster/companion/internal/storage/memory"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, memory.New())
	created, _ := s.CreateCampaign(ctx, "Original")

	data, err := s.ExportCampaign(created.ID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !json.Valid(data) {
		t.Fatal("expected valid JSON export")
	}

	imported, err := s.ImportCampaign(ctx, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported.ID == created.ID {
		t.Fatal("expected import to mint a fresh id")
	}
	if imported.Name != "Original" {
		t.Fatalf("expected name preserved, got %q", imported.Name)
	}
	if imported.CreatedAt != created.CreatedAt {
		t.Fatalf("expected creation time preserved, got %d", imported.CreatedAt)
	}

	state := s.Snapshot()
	if len(state.Campaigns) != 2 {
		t.Fatalf("expected two campaigns, got %d", len(state.Campaigns))
	}
	if state.Campaigns[0].ID != imported.ID || state.ActiveCampaignID != imported.ID {
		t.Fatal("expected import prepended and activated")
	}
}

func TestImportLegacyExport(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, memory.New())

	legacy := `{"id": "legacy-save", "name": "Old Save", "resources": {"attitude": 4}, "journalHtml": "<p>Back then</p>"}`
	imported, err := s.ImportCampaign(ctx, []byte(legacy))
	if err != nil {
		t.Fatalf("import legacy: %v", err)
	}
	if imported.Resources.AttitudeBoost != 4 {
		t.Fatalf("expected legacy resources migrated, got %d", imported.Resources.AttitudeBoost)
	}
	if imported.ID == "legacy-save" {
		t.Fatal("expected import to mint a fresh id")
	}
}

func TestImportStampsModificationTime(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, memory.New())

	stale := `{"id": "stale", "name": "Stale Save", "createdAt": 7, "updatedAt": 5}`
	imported, err := s.ImportCampaign(ctx, []byte(stale))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported.CreatedAt != 7 {
		t.Fatalf("expected creation time preserved, got %d", imported.CreatedAt)
	}
	if imported.UpdatedAt != 1_000_000 {
		t.Fatalf("expected modification time stamped, got %d", imported.UpdatedAt)
	}
}

func TestImportRejectsInvalidPayloads(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, memory.New())

	if _, err := s.ImportCampaign(ctx, []byte("{not json")); !apperrors.IsCode(err, apperrors.CodeImportInvalidJSON) {
		t.Fatalf("expected IMPORT_INVALID_JSON, got %v", err)
	}
	if _, err := s.ImportCampaign(ctx, []byte(`[1, 2, 3]`)); !apperrors.IsCode(err, apperrors.CodeImportNotACampaign) {
		t.Fatalf("expected IMPORT_NOT_A_CAMPAIGN, got %v", err)
	}
	if _, err := s.ImportCampaign(ctx, []byte(`{"foo": 1}`)); !apperrors.IsCode(err, apperrors.CodeImportNotACampaign) {
		t.Fatalf("expected IMPORT_NOT_A_CAMPAIGN for missing identity, got %v", err)
	}
	if _, err := s.ImportCampaign(ctx, []byte(`{"id": "  ", "name": "Blank"}`)); !apperrors.IsCode(err, apperrors.CodeImportNotACampaign) {
		t.Fatalf("expected IMPORT_NOT_A_CAMPAIGN for blank id, got %v", err)
	}
	if len(s.Snapshot().Campaigns) != 0 {
		t.Fatal("expected no campaigns after failed imports")
	}
}

func TestExportUnknownCampaign(t *testing.T) {
	s := newTestStore(t, memory.New())
	if _, err := s.ExportCampaign("missing"); !apperrors.IsCode(err, apperrors.CodeCampaignNotFound) {
		t.Fatalf("expected CAMPAIGN_NOT_FOUND, got %v", err)
	}
}
