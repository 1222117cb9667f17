package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/solo-blaster/companion/internal/campaign/command"
	"github.com/solo-blaster/companion/internal/campaign/domain"
	"github.com/solo-blaster/companion/internal/dice"
	apperrors "github.com/solo-blaster/companion/internal/errors"
	"github.com/solo-blaster/companion/internal/store"
	"github.com/solo-blaster/companion/internal/worldgraph"
)

// maxDiceCount caps one dice_roll invocation.
const maxDiceCount = 100

// resolveCampaignID maps an optional campaign_id input to a concrete
// campaign, falling back to the active campaign when blank.
func resolveCampaignID(st *store.Store, campaignID string) (domain.Campaign, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		c, ok := st.ActiveCampaign()
		if !ok {
			return domain.Campaign{}, apperrors.New(apperrors.CodeCampaignNotFound, "no active campaign")
		}
		return c, nil
	}
	c, ok := st.Campaign(campaignID)
	if !ok {
		return domain.Campaign{}, apperrors.New(apperrors.CodeCampaignNotFound, "campaign not found").
			WithMetadata(map[string]string{"CampaignID": campaignID})
	}
	return c, nil
}

func resourcesViewOf(res domain.Resources) resourcesView {
	return resourcesView{
		AttitudeBoost: res.AttitudeBoost,
		AttitudeKick:  res.AttitudeKick,
		TurboBoost:    res.TurboBoost,
		TurboKick:     res.TurboKick,
		Bite:          res.Bite,
		Trouble:       res.Trouble,
		Style:         res.Style,
		Doom:          res.Doom,
		Legacy:        res.Legacy,
	}
}

func campaignCreateHandler(st *store.Store) mcp.ToolHandlerFor[campaignCreateInput, campaignCreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input campaignCreateInput) (*mcp.CallToolResult, campaignCreateResult, error) {
		c, err := st.CreateCampaign(ctx, input.Name)
		if err != nil {
			return nil, campaignCreateResult{}, err
		}
		return nil, campaignCreateResult{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}, nil
	}
}

func campaignSwitchHandler(st *store.Store) mcp.ToolHandlerFor[campaignSwitchInput, campaignSwitchResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input campaignSwitchInput) (*mcp.CallToolResult, campaignSwitchResult, error) {
		if err := st.SetActiveCampaign(ctx, input.CampaignID); err != nil {
			return nil, campaignSwitchResult{}, err
		}
		c, ok := st.Campaign(input.CampaignID)
		if !ok {
			return nil, campaignSwitchResult{}, apperrors.New(apperrors.CodeCampaignNotFound, "campaign not found")
		}
		return nil, campaignSwitchResult{ID: c.ID, Name: c.Name}, nil
	}
}

func campaignExportHandler(st *store.Store) mcp.ToolHandlerFor[campaignExportInput, campaignExportResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input campaignExportInput) (*mcp.CallToolResult, campaignExportResult, error) {
		c, err := resolveCampaignID(st, input.CampaignID)
		if err != nil {
			return nil, campaignExportResult{}, err
		}
		data, err := st.ExportCampaign(c.ID)
		if err != nil {
			return nil, campaignExportResult{}, err
		}
		return nil, campaignExportResult{CampaignID: c.ID, JSON: string(data)}, nil
	}
}

func campaignImportHandler(st *store.Store) mcp.ToolHandlerFor[campaignImportInput, campaignImportResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input campaignImportInput) (*mcp.CallToolResult, campaignImportResult, error) {
		c, err := st.ImportCampaign(ctx, []byte(input.JSON))
		if err != nil {
			return nil, campaignImportResult{}, err
		}
		return nil, campaignImportResult{ID: c.ID, Name: c.Name}, nil
	}
}

func resourceAdjustHandler(st *store.Store) mcp.ToolHandlerFor[resourceAdjustInput, resourceAdjustResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input resourceAdjustInput) (*mcp.CallToolResult, resourceAdjustResult, error) {
		c, err := resolveCampaignID(st, input.CampaignID)
		if err != nil {
			return nil, resourceAdjustResult{}, err
		}
		applied, err := st.Apply(ctx, c.ID, command.AdjustResource{
			Resource: domain.ResourceName(input.Resource),
			Delta:    input.Delta,
		})
		if err != nil {
			return nil, resourceAdjustResult{}, err
		}
		updated, ok := st.Campaign(c.ID)
		if !ok {
			return nil, resourceAdjustResult{}, apperrors.New(apperrors.CodeCampaignNotFound, "campaign not found")
		}
		return nil, resourceAdjustResult{Applied: applied, Resources: resourcesViewOf(updated.Resources)}, nil
	}
}

func journalAppendHandler(st *store.Store) mcp.ToolHandlerFor[journalAppendInput, journalAppendResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input journalAppendInput) (*mcp.CallToolResult, journalAppendResult, error) {
		c, err := resolveCampaignID(st, input.CampaignID)
		if err != nil {
			return nil, journalAppendResult{}, err
		}
		applied, err := st.Apply(ctx, c.ID, command.AppendJournal{HTML: input.HTML})
		if err != nil {
			return nil, journalAppendResult{}, err
		}
		return nil, journalAppendResult{Applied: applied}, nil
	}
}

func epilogueStartHandler(st *store.Store) mcp.ToolHandlerFor[epilogueStartInput, epilogueStartResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input epilogueStartInput) (*mcp.CallToolResult, epilogueStartResult, error) {
		c, err := resolveCampaignID(st, input.CampaignID)
		if err != nil {
			return nil, epilogueStartResult{}, err
		}
		applied, err := st.Apply(ctx, c.ID, command.StartEpilogue{})
		if err != nil {
			return nil, epilogueStartResult{}, err
		}
		updated, ok := st.Campaign(c.ID)
		if !ok {
			return nil, epilogueStartResult{}, apperrors.New(apperrors.CodeCampaignNotFound, "campaign not found")
		}
		return nil, epilogueStartResult{Applied: applied, Locked: updated.Locked}, nil
	}
}

func diceRollHandler(roller *dice.Roller) mcp.ToolHandlerFor[diceRollInput, diceRollResult] {
	var mu sync.Mutex
	return func(_ context.Context, _ *mcp.CallToolRequest, input diceRollInput) (*mcp.CallToolResult, diceRollResult, error) {
		sides := input.Sides
		if sides == 0 {
			sides = 6
		}
		count := input.Count
		if count == 0 {
			count = 1
		}
		if count < 1 || count > maxDiceCount {
			return nil, diceRollResult{}, fmt.Errorf("count must be between 1 and %d", maxDiceCount)
		}

		mu.Lock()
		defer mu.Unlock()

		result := diceRollResult{Rolls: make([]int, 0, count)}
		for i := 0; i < count; i++ {
			value, err := roller.Roll(sides)
			if err != nil {
				return nil, diceRollResult{}, err
			}
			result.Rolls = append(result.Rolls, value)
			result.Total += value
		}
		return nil, result, nil
	}
}

func sheetGetHandler(st *store.Store) mcp.ToolHandlerFor[sheetGetInput, sheetGetResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input sheetGetInput) (*mcp.CallToolResult, sheetGetResult, error) {
		c, err := resolveCampaignID(st, input.CampaignID)
		if err != nil {
			return nil, sheetGetResult{}, err
		}
		return nil, sheetGetResult{
			ID:            c.ID,
			Name:          c.Name,
			Locked:        c.Locked,
			CharacterName: c.Character.Name,
			Playbook:      c.Character.Playbook,
			Resources:     resourcesViewOf(c.Resources),
			RunActive:     c.Run.IsActive,
			TrackCount:    len(c.Run.Tracks),
			ChapterCount:  len(c.Journal),
			NPCCount:      len(c.NPCs),
			WorldCount:    len(c.Worlds),
			UpdatedAt:     c.UpdatedAt,
		}, nil
	}
}

func worldAdjacentHandler(st *store.Store) mcp.ToolHandlerFor[worldAdjacentInput, worldAdjacentResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input worldAdjacentInput) (*mcp.CallToolResult, worldAdjacentResult, error) {
		c, err := resolveCampaignID(st, input.CampaignID)
		if err != nil {
			return nil, worldAdjacentResult{}, err
		}
		world := strings.TrimSpace(input.World)
		if world == "" {
			return nil, worldAdjacentResult{}, fmt.Errorf("world name is required")
		}
		return nil, worldAdjacentResult{
			World:    world,
			Adjacent: worldgraph.AdjacentTo(c, world),
		}, nil
	}
}

func campaignListResourceHandler(st *store.Store) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := CampaignListURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		state := st.Snapshot()
		payload := campaignListPayload{ActiveCampaignID: state.ActiveCampaignID}
		for _, c := range state.Campaigns {
			payload.Campaigns = append(payload.Campaigns, campaignListEntry{
				ID:        c.ID,
				Name:      c.Name,
				Locked:    c.Locked,
				CreatedAt: c.CreatedAt,
				UpdatedAt: c.UpdatedAt,
			})
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal campaign list: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}
