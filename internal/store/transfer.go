package store

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/solo-blaster/companion/internal/campaign/domain"
	"github.com/solo-blaster/companion/internal/campaign/normalize"
	apperrors "github.com/solo-blaster/companion/internal/errors"
)

// ExportCampaign renders one campaign as indented JSON suitable for a
// download or a clipboard.
func (s *Store) ExportCampaign(campaignID string) ([]byte, error) {
	campaign, ok := s.Campaign(campaignID)
	if !ok {
		return nil, campaignNotFound(campaignID)
	}
	data, err := json.MarshalIndent(campaign, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "encode campaign", err)
	}
	return data, nil
}

// ImportCampaign ingests a previously exported campaign. The payload
// must be a JSON object carrying an id and a name; everything else
// about its shape is tolerated and repaired by the normalizer,
// including exports from older schema versions. The import gets a
// fresh id so it can never collide with an existing campaign, keeps
// its creation time, and becomes active with a fresh modification
// time.
func (s *Store) ImportCampaign(ctx context.Context, data []byte) (domain.Campaign, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Campaign{}, apperrors.Wrap(apperrors.CodeImportInvalidJSON, "decode import", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return domain.Campaign{}, apperrors.New(apperrors.CodeImportNotACampaign, "import is not a campaign object")
	}
	if !truthy(obj["id"]) || !truthy(obj["name"]) {
		return domain.Campaign{}, apperrors.New(apperrors.CodeImportNotACampaign, "import is missing campaign identity")
	}

	// Drop the stored id before normalizing so a fresh one is minted.
	delete(obj, "id")
	campaign := normalize.CampaignAt(obj, s.now, s.newID)
	campaign.UpdatedAt = domain.Millis(s.now())

	s.mu.Lock()
	s.state.Campaigns = append([]domain.Campaign{campaign}, s.state.Campaigns...)
	s.state.ActiveCampaignID = campaign.ID
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify()
	return campaign, nil
}

// truthy mirrors the identity check applied to imported records: a
// value counts only when it is a non-blank string, a nonzero number, or
// true.
func truthy(value any) bool {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) != ""
	case float64:
		return v != 0
	case bool:
		return v
	}
	return false
}
