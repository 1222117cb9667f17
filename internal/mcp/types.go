package mcp

import "github.com/modelcontextprotocol/go-sdk/mcp"

// CampaignListURI is the resource URI for the campaign catalog.
const CampaignListURI = "companion://campaigns"

type campaignCreateInput struct {
	Name string `json:"name" jsonschema:"campaign name"`
}

type campaignCreateResult struct {
	ID        string `json:"id" jsonschema:"campaign identifier"`
	Name      string `json:"name" jsonschema:"campaign name"`
	CreatedAt int64  `json:"created_at" jsonschema:"epoch milliseconds when the campaign was created"`
}

func campaignCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "campaign_create",
		Description: "Creates a campaign and makes it the active one",
	}
}

type campaignSwitchInput struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier to activate"`
}

type campaignSwitchResult struct {
	ID   string `json:"id" jsonschema:"campaign identifier"`
	Name string `json:"name" jsonschema:"campaign name"`
}

func campaignSwitchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "campaign_switch",
		Description: "Switches the active campaign",
	}
}

type campaignExportInput struct {
	CampaignID string `json:"campaign_id,omitempty" jsonschema:"campaign identifier (defaults to the active campaign)"`
}

type campaignExportResult struct {
	CampaignID string `json:"campaign_id" jsonschema:"campaign identifier"`
	JSON       string `json:"json" jsonschema:"campaign document as indented JSON"`
}

func campaignExportTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "campaign_export",
		Description: "Exports a campaign as a portable JSON document",
	}
}

type campaignImportInput struct {
	JSON string `json:"json" jsonschema:"campaign document to import, as JSON"`
}

type campaignImportResult struct {
	ID   string `json:"id" jsonschema:"identifier minted for the imported campaign"`
	Name string `json:"name" jsonschema:"campaign name"`
}

func campaignImportTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "campaign_import",
		Description: "Imports a campaign document and makes it the active campaign",
	}
}

type resourceAdjustInput struct {
	CampaignID string `json:"campaign_id,omitempty" jsonschema:"campaign identifier (defaults to the active campaign)"`
	Resource   string `json:"resource" jsonschema:"resource counter (attitudeBoost, attitudeKick, turboBoost, turboKick, bite, trouble, style)"`
	Delta      int    `json:"delta" jsonschema:"signed change to apply; the counter is clamped to its legal range"`
}

type resourceAdjustResult struct {
	Applied   bool          `json:"applied" jsonschema:"false when the campaign is locked"`
	Resources resourcesView `json:"resources" jsonschema:"resource counters after the adjustment"`
}

type resourcesView struct {
	AttitudeBoost int `json:"attitude_boost"`
	AttitudeKick  int `json:"attitude_kick"`
	TurboBoost    int `json:"turbo_boost"`
	TurboKick     int `json:"turbo_kick"`
	Bite          int `json:"bite"`
	Trouble       int `json:"trouble"`
	Style         int `json:"style"`
	Doom          int `json:"doom"`
	Legacy        int `json:"legacy"`
}

func resourceAdjustTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "resource_adjust",
		Description: "Adjusts one campaign resource counter by a delta",
	}
}

type journalAppendInput struct {
	CampaignID string `json:"campaign_id,omitempty" jsonschema:"campaign identifier (defaults to the active campaign)"`
	HTML       string `json:"html" jsonschema:"HTML fragment to append to the live journal chapter"`
}

type journalAppendResult struct {
	Applied bool `json:"applied" jsonschema:"true when the entry was appended"`
}

func journalAppendTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "journal_append",
		Description: "Appends an entry to the campaign journal; allowed even on retired campaigns",
	}
}

type epilogueStartInput struct {
	CampaignID string `json:"campaign_id,omitempty" jsonschema:"campaign identifier (defaults to the active campaign)"`
}

type epilogueStartResult struct {
	Applied bool `json:"applied" jsonschema:"false when the campaign was already locked"`
	Locked  bool `json:"locked" jsonschema:"campaign lock state after the call"`
}

func epilogueStartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "epilogue_start",
		Description: "Starts the campaign epilogue and locks the campaign against further edits",
	}
}

type diceRollInput struct {
	Sides int `json:"sides,omitempty" jsonschema:"number of sides per die (default 6)"`
	Count int `json:"count,omitempty" jsonschema:"number of dice to roll (default 1, max 100)"`
}

type diceRollResult struct {
	Rolls []int `json:"rolls" jsonschema:"individual die results"`
	Total int   `json:"total" jsonschema:"sum of all dice"`
}

func diceRollTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "dice_roll",
		Description: "Rolls dice for oracle and beat resolution",
	}
}

type sheetGetInput struct {
	CampaignID string `json:"campaign_id,omitempty" jsonschema:"campaign identifier (defaults to the active campaign)"`
}

type sheetGetResult struct {
	ID            string        `json:"id" jsonschema:"campaign identifier"`
	Name          string        `json:"name" jsonschema:"campaign name"`
	Locked        bool          `json:"locked" jsonschema:"true once the epilogue has started"`
	CharacterName string        `json:"character_name" jsonschema:"blaster name"`
	Playbook      string        `json:"playbook" jsonschema:"signature gear playbook"`
	Resources     resourcesView `json:"resources" jsonschema:"resource counters"`
	RunActive     bool          `json:"run_active" jsonschema:"true while a run is in progress"`
	TrackCount    int           `json:"track_count" jsonschema:"number of active run tracks"`
	ChapterCount  int           `json:"chapter_count" jsonschema:"number of journal chapters"`
	NPCCount      int           `json:"npc_count" jsonschema:"number of roster NPCs"`
	WorldCount    int           `json:"world_count" jsonschema:"number of custom worlds"`
	UpdatedAt     int64         `json:"updated_at" jsonschema:"epoch milliseconds of the last change"`
}

func sheetGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "sheet_get",
		Description: "Reads a campaign sheet summary",
	}
}

type worldAdjacentInput struct {
	CampaignID string `json:"campaign_id,omitempty" jsonschema:"campaign identifier (defaults to the active campaign)"`
	World      string `json:"world" jsonschema:"world name to look up"`
}

type worldAdjacentResult struct {
	World    string   `json:"world" jsonschema:"world name"`
	Adjacent []string `json:"adjacent" jsonschema:"worlds reachable by portal, canon and custom"`
}

func worldAdjacentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "world_adjacent",
		Description: "Lists the worlds adjacent to a named world on the multiverse map",
	}
}

func campaignListResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         CampaignListURI,
		Name:        "campaigns",
		Description: "All campaigns with the active-campaign marker",
		MIMEType:    "application/json",
	}
}

type campaignListPayload struct {
	ActiveCampaignID string              `json:"active_campaign_id"`
	Campaigns        []campaignListEntry `json:"campaigns"`
}

type campaignListEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Locked    bool   `json:"locked"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}
