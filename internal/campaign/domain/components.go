package domain

import (
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/solo-blaster/companion/internal/errors"
)

// Cost is a component price, one count per component kind. The zero value
// is a free cost.
type Cost struct {
	Coil int
	Disc int
	Lens int
	Gem  int
}

// Total returns the number of components the cost consumes across all
// kinds.
func (c Cost) Total() int {
	return c.Coil + c.Disc + c.Lens + c.Gem
}

var costPattern = regexp.MustCompile(`(\d+)\s*(coil|coils|disc|discs|lens|lenses|gem|gems)`)

// ParseCost parses a raw cost string from the rulebook, such as
// "2 Coils, 1 Gem". Unrecognized fragments are ignored; parsing never
// fails.
func ParseCost(raw string) Cost {
	var cost Cost
	for _, match := range costPattern.FindAllStringSubmatch(strings.ToLower(raw), -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		switch {
		case strings.HasPrefix(match[2], "coil"):
			cost.Coil += n
		case strings.HasPrefix(match[2], "disc"):
			cost.Disc += n
		case strings.HasPrefix(match[2], "lens"):
			cost.Lens += n
		default:
			cost.Gem += n
		}
	}
	return cost
}

// CanAfford reports whether the inventory covers the cost.
func (inv Components) CanAfford(cost Cost) bool {
	return inv.Coil >= cost.Coil &&
		inv.Disc >= cost.Disc &&
		inv.Lens >= cost.Lens &&
		inv.Gem >= cost.Gem
}

// Spend deducts a cost from the inventory, clamping every counter at
// zero. Affordability is validated separately; the clamp is a last line
// of defense so a counter can never surface negative.
func (inv Components) Spend(cost Cost) Components {
	return Components{
		Coil: clampMin(inv.Coil-cost.Coil, 0),
		Disc: clampMin(inv.Disc-cost.Disc, 0),
		Lens: clampMin(inv.Lens-cost.Lens, 0),
		Gem:  clampMin(inv.Gem-cost.Gem, 0),
	}
}

// Refund returns a cost to the inventory.
func (inv Components) Refund(cost Cost) Components {
	return Components{
		Coil: inv.Coil + cost.Coil,
		Disc: inv.Disc + cost.Disc,
		Lens: inv.Lens + cost.Lens,
		Gem:  inv.Gem + cost.Gem,
	}
}

// Get returns the counter for a component kind.
func (inv Components) Get(kind ComponentKind) int {
	switch kind {
	case ComponentCoil:
		return inv.Coil
	case ComponentDisc:
		return inv.Disc
	case ComponentLens:
		return inv.Lens
	case ComponentGem:
		return inv.Gem
	}
	return 0
}

// Adjust returns the inventory with one counter changed by delta, clamped
// at zero. Unknown kinds leave the inventory untouched.
func (inv Components) Adjust(kind ComponentKind, delta int) Components {
	next := inv
	switch kind {
	case ComponentCoil:
		next.Coil = clampMin(inv.Coil+delta, 0)
	case ComponentDisc:
		next.Disc = clampMin(inv.Disc+delta, 0)
	case ComponentLens:
		next.Lens = clampMin(inv.Lens+delta, 0)
	case ComponentGem:
		next.Gem = clampMin(inv.Gem+delta, 0)
	}
	return next
}

// ApplyInstallMod installs a mod on the character's signature gear,
// charging its cost. Installing a mod that is already installed is a
// no-op: it is never charged twice. The mod name is also recorded in
// OwnedMods, which is retained even if the mod is later uninstalled.
func ApplyInstallMod(ch Character, modName string, cost Cost) (Character, error) {
	modName = strings.TrimSpace(modName)
	if modName == "" {
		return Character{}, apperrors.New(apperrors.CodeModNameEmpty, "mod name is required")
	}
	if ch.SignatureGear == nil {
		return Character{}, apperrors.New(apperrors.CodeSignatureGearMissing, "character has no signature gear")
	}
	if containsString(ch.SignatureGear.InstalledMods, modName) {
		return ch, nil
	}
	if !ch.Components.CanAfford(cost) {
		return Character{}, apperrors.New(apperrors.CodeComponentsInsufficient, "cannot afford mod cost").
			WithMetadata(map[string]string{
				"Need": strconv.Itoa(cost.Total()),
				"Have": strconv.Itoa(ch.Components.Total()),
			})
	}

	updated := ch
	updated.Components = ch.Components.Spend(cost)
	updated.OwnedMods = appendUnique(ch.OwnedMods, modName)
	gear := *ch.SignatureGear
	gear.InstalledMods = appendUnique(gear.InstalledMods, modName)
	updated.SignatureGear = &gear
	return updated, nil
}

// ApplyUninstallMod removes a mod from the signature gear and refunds its
// cost. Removing a mod that is not installed is a no-op. OwnedMods keeps
// the name as a historical record.
func ApplyUninstallMod(ch Character, modName string, cost Cost) (Character, error) {
	modName = strings.TrimSpace(modName)
	if modName == "" {
		return Character{}, apperrors.New(apperrors.CodeModNameEmpty, "mod name is required")
	}
	if ch.SignatureGear == nil {
		return Character{}, apperrors.New(apperrors.CodeSignatureGearMissing, "character has no signature gear")
	}
	if !containsString(ch.SignatureGear.InstalledMods, modName) {
		return ch, nil
	}

	updated := ch
	updated.Components = ch.Components.Refund(cost)
	gear := *ch.SignatureGear
	gear.InstalledMods = removeString(gear.InstalledMods, modName)
	updated.SignatureGear = &gear
	return updated, nil
}

// Total returns the total number of components held.
func (inv Components) Total() int {
	return inv.Coil + inv.Disc + inv.Lens + inv.Gem
}

func clampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}

func clampRange(v, floor, ceil int) int {
	if v < floor {
		return floor
	}
	if v > ceil {
		return ceil
	}
	return v
}

func containsString(list []string, want string) bool {
	for _, entry := range list {
		if entry == want {
			return true
		}
	}
	return false
}

func appendUnique(list []string, entry string) []string {
	if containsString(list, entry) {
		return append([]string(nil), list...)
	}
	next := make([]string, 0, len(list)+1)
	next = append(next, list...)
	return append(next, entry)
}

func removeString(list []string, entry string) []string {
	next := make([]string, 0, len(list))
	for _, existing := range list {
		if existing != entry {
			next = append(next, existing)
		}
	}
	return next
}
