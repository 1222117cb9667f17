// Package compendium exposes the compiled-in rulebook content: signature
// gear definitions with their mods and costs, the shared looks table,
// and the canon worlds with their portal adjacencies. The data ships as
// embedded YAML and is parsed once on first use.
package compendium

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/solo-blaster/companion/internal/campaign/domain"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Mod is one purchasable signature-gear mod.
type Mod struct {
	Name        string `yaml:"name"`
	Cost        string `yaml:"cost"`
	Description string `yaml:"description"`
}

// ParsedCost returns the component cost parsed from the rulebook string.
func (m Mod) ParsedCost() domain.Cost {
	return domain.ParseCost(m.Cost)
}

// Gear is one signature gear definition.
type Gear struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Function string   `yaml:"function"`
	Types    []string `yaml:"types"`
	Mods     []Mod    `yaml:"mods"`
}

// CanonWorld is a compiled-in world with its portal adjacency list.
type CanonWorld struct {
	Name        string   `yaml:"name"`
	Adjacencies []string `yaml:"adjacencies"`
}

type gearFile struct {
	Looks []string `yaml:"looks"`
	Gear  []Gear   `yaml:"gear"`
}

type worldsFile struct {
	Worlds []CanonWorld `yaml:"worlds"`
}

var (
	loadOnce sync.Once
	loadErr  error
	gearData gearFile
	worlds   worldsFile
)

func load() error {
	loadOnce.Do(func() {
		gearRaw, err := dataFS.ReadFile("data/signature_gear.yaml")
		if err != nil {
			loadErr = fmt.Errorf("read gear data: %w", err)
			return
		}
		if err := yaml.Unmarshal(gearRaw, &gearData); err != nil {
			loadErr = fmt.Errorf("parse gear data: %w", err)
			return
		}

		worldsRaw, err := dataFS.ReadFile("data/worlds.yaml")
		if err != nil {
			loadErr = fmt.Errorf("read worlds data: %w", err)
			return
		}
		if err := yaml.Unmarshal(worldsRaw, &worlds); err != nil {
			loadErr = fmt.Errorf("parse worlds data: %w", err)
		}
	})
	return loadErr
}

// SignatureGear returns every gear definition.
func SignatureGear() ([]Gear, error) {
	if err := load(); err != nil {
		return nil, err
	}
	return gearData.Gear, nil
}

// GearByID returns one gear definition.
func GearByID(gearID string) (Gear, bool) {
	if err := load(); err != nil {
		return Gear{}, false
	}
	for _, gear := range gearData.Gear {
		if gear.ID == gearID {
			return gear, true
		}
	}
	return Gear{}, false
}

// ModByName finds a mod on a gear by case-insensitive name.
func ModByName(gearID, modName string) (Mod, bool) {
	gear, ok := GearByID(gearID)
	if !ok {
		return Mod{}, false
	}
	for _, mod := range gear.Mods {
		if strings.EqualFold(mod.Name, modName) {
			return mod, true
		}
	}
	return Mod{}, false
}

// SignatureLooks returns the shared looks table.
func SignatureLooks() ([]string, error) {
	if err := load(); err != nil {
		return nil, err
	}
	return gearData.Looks, nil
}

// CanonWorlds returns the compiled-in worlds in rulebook order.
func CanonWorlds() ([]CanonWorld, error) {
	if err := load(); err != nil {
		return nil, err
	}
	return worlds.Worlds, nil
}

// CanonAdjacency returns the canon adjacency lists keyed by world name.
func CanonAdjacency() (map[string][]string, error) {
	if err := load(); err != nil {
		return nil, err
	}
	adjacency := make(map[string][]string, len(worlds.Worlds))
	for _, world := range worlds.Worlds {
		adjacency[world.Name] = world.Adjacencies
	}
	return adjacency, nil
}
