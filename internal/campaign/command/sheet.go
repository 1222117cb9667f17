package command

import (
	"strings"
	"time"

	"github.com/solo-blaster/companion/internal/campaign/domain"
	apperrors "github.com/solo-blaster/companion/internal/errors"
)

// SetCampaignName renames the campaign. Blank names are rejected rather
// than silently replaced: an existing campaign already has a name worth
// keeping.
type SetCampaignName struct {
	CampaignName string
}

func (SetCampaignName) Name() string { return "campaign.set_name" }

func (cmd SetCampaignName) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	name := strings.TrimSpace(cmd.CampaignName)
	if name == "" {
		return c, apperrors.New(apperrors.CodeCampaignNameEmpty, "campaign name is empty")
	}
	c.Name = name
	return c, nil
}

// SetCharacter replaces the character sheet wholesale, as character
// creation does on confirm. The sheet is marked created.
type SetCharacter struct {
	Character domain.Character
}

func (SetCharacter) Name() string { return "character.set" }

func (cmd SetCharacter) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	ch := cmd.Character
	ch.Created = true
	c.Character = ch
	return c, nil
}

// SetCharacterNotes updates the free-form notes field only.
type SetCharacterNotes struct {
	Notes string
}

func (SetCharacterNotes) Name() string { return "character.set_notes" }

func (cmd SetCharacterNotes) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	c.Character.Notes = cmd.Notes
	return c, nil
}

// AdjustComponent changes one component counter by a delta, floored at
// zero.
type AdjustComponent struct {
	Kind  domain.ComponentKind
	Delta int
}

func (AdjustComponent) Name() string { return "gear.adjust_component" }

func (cmd AdjustComponent) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	c.Character.Components = c.Character.Components.Adjust(cmd.Kind, cmd.Delta)
	return c, nil
}

// InstallMod installs a mod on the signature gear, charging its
// component cost unless the mod is already installed.
type InstallMod struct {
	ModName string
	Cost    domain.Cost
}

func (InstallMod) Name() string { return "gear.install_mod" }

func (cmd InstallMod) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	ch, err := domain.ApplyInstallMod(c.Character, cmd.ModName, cmd.Cost)
	if err != nil {
		return c, err
	}
	c.Character = ch
	return c, nil
}

// UninstallMod removes an installed mod and refunds its cost. The mod
// stays in the owned list.
type UninstallMod struct {
	ModName string
	Cost    domain.Cost
}

func (UninstallMod) Name() string { return "gear.uninstall_mod" }

func (cmd UninstallMod) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	ch, err := domain.ApplyUninstallMod(c.Character, cmd.ModName, cmd.Cost)
	if err != nil {
		return c, err
	}
	c.Character = ch
	return c, nil
}

// AdjustResource changes one named resource counter by a delta, subject
// to that counter's clamp range.
type AdjustResource struct {
	Resource domain.ResourceName
	Delta    int
}

func (AdjustResource) Name() string { return "resource.adjust" }

func (cmd AdjustResource) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	res, err := domain.ApplyResourceChange(c.Resources, cmd.Resource, cmd.Delta)
	if err != nil {
		return c, err
	}
	c.Resources = res
	return c, nil
}
