// Package companion implements the campaign CLI: listing, creating and
// switching campaigns, export and import, resource adjustments, dice,
// and the sheet summary.
package companion

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/solo-blaster/companion/internal/campaign/command"
	"github.com/solo-blaster/companion/internal/campaign/domain"
	"github.com/solo-blaster/companion/internal/compendium"
	"github.com/solo-blaster/companion/internal/dice"
	apperrors "github.com/solo-blaster/companion/internal/errors"
	"github.com/solo-blaster/companion/internal/platform/config"
	"github.com/solo-blaster/companion/internal/random"
	"github.com/solo-blaster/companion/internal/storage"
	"github.com/solo-blaster/companion/internal/store"
	"github.com/solo-blaster/companion/internal/worldgraph"
)

const usage = `usage: companion [flags] <command> [args]

commands:
  list                      list campaigns
  create <name>             create a campaign and make it active
  delete <id>               delete a campaign
  switch <id>               change the active campaign
  export [id]               write a campaign document to stdout
  import <file|->           import a campaign document
  reset                     delete all campaigns
  sheet [id]                show the campaign sheet summary
  adjust <resource> <delta> adjust a resource counter
  worlds [name]             list worlds, or the worlds adjacent to one
  gear [id]                 list signature gear, or one gear's mods
  roll [sides] [count]      roll dice`

// ParseConfig loads COMPANION_* settings from the environment and lets
// flags override them. The returned args are the subcommand and its
// arguments.
func ParseConfig(fs *flag.FlagSet, args []string) (config.Settings, []string, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Settings{}, nil, err
	}

	fs.StringVar(&cfg.StorageDriver, "driver", cfg.StorageDriver, "storage driver: bbolt, sqlite, or memory")
	fs.StringVar(&cfg.StoragePath, "db", cfg.StoragePath, "database file location")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for error messages")
	if err := fs.Parse(args); err != nil {
		return config.Settings{}, nil, err
	}
	return cfg, fs.Args(), nil
}

// Run executes one companion subcommand.
func Run(ctx context.Context, cfg config.Settings, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	name, rest := args[0], args[1:]

	switch name {
	case "roll":
		return runRoll(rest, out)
	case "gear":
		return runGear(rest, out)
	}

	driver, err := storage.ParseDriver(cfg.StorageDriver)
	if err != nil {
		return err
	}
	backend, err := storage.Open(storage.Config{Driver: driver, Path: cfg.StoragePath})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	st := store.New(backend)
	if err := st.Init(ctx); err != nil {
		backend.Close()
		return fmt.Errorf("load state: %w", err)
	}
	defer st.Close()

	switch name {
	case "list":
		return runList(st, out)
	case "create":
		return runCreate(ctx, st, rest, out)
	case "delete":
		return runDelete(ctx, st, rest)
	case "switch":
		return runSwitch(ctx, st, rest)
	case "export":
		return runExport(st, rest, out)
	case "import":
		return runImport(ctx, st, rest, in, out)
	case "reset":
		return st.ResetAll(ctx)
	case "sheet":
		return runSheet(st, rest, out)
	case "adjust":
		return runAdjust(ctx, st, rest, out)
	case "worlds":
		return runWorlds(st, rest, out)
	}
	return fmt.Errorf("unknown command %q\n%s", name, usage)
}

// resolve maps an optional id argument to a campaign, defaulting to the
// active one.
func resolve(st *store.Store, args []string) (domain.Campaign, error) {
	if len(args) > 0 && args[0] != "" {
		c, ok := st.Campaign(args[0])
		if !ok {
			return domain.Campaign{}, apperrors.New(apperrors.CodeCampaignNotFound, "campaign not found").
				WithMetadata(map[string]string{"CampaignID": args[0]})
		}
		return c, nil
	}
	c, ok := st.ActiveCampaign()
	if !ok {
		return domain.Campaign{}, apperrors.New(apperrors.CodeCampaignNotFound, "no active campaign")
	}
	return c, nil
}

func runList(st *store.Store, out io.Writer) error {
	state := st.Snapshot()
	if len(state.Campaigns) == 0 {
		fmt.Fprintln(out, "no campaigns")
		return nil
	}
	for _, c := range state.Campaigns {
		marker := " "
		if c.ID == state.ActiveCampaignID {
			marker = "*"
		}
		status := ""
		if c.Locked {
			status = " [retired]"
		}
		fmt.Fprintf(out, "%s %s  %s%s  (updated %s)\n",
			marker, c.ID, c.Name, status,
			time.UnixMilli(c.UpdatedAt).UTC().Format(time.RFC3339))
	}
	return nil
}

func runCreate(ctx context.Context, st *store.Store, args []string, out io.Writer) error {
	c, err := st.CreateCampaign(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created %s (%s)\n", c.Name, c.ID)
	return nil
}

func runDelete(ctx context.Context, st *store.Store, args []string) error {
	if len(args) != 1 {
		return errors.New("delete takes one campaign id")
	}
	return st.DeleteCampaign(ctx, args[0])
}

func runSwitch(ctx context.Context, st *store.Store, args []string) error {
	if len(args) != 1 {
		return errors.New("switch takes one campaign id")
	}
	return st.SetActiveCampaign(ctx, args[0])
}

func runExport(st *store.Store, args []string, out io.Writer) error {
	c, err := resolve(st, args)
	if err != nil {
		return err
	}
	data, err := st.ExportCampaign(c.ID)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func runImport(ctx context.Context, st *store.Store, args []string, in io.Reader, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("import takes one file path, or - for stdin")
	}

	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}

	c, err := st.ImportCampaign(ctx, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "imported %s (%s)\n", c.Name, c.ID)
	return nil
}

func runSheet(st *store.Store, args []string, out io.Writer) error {
	c, err := resolve(st, args)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s (%s)\n", c.Name, c.ID)
	if c.Locked {
		fmt.Fprintln(out, "retired: epilogue in progress")
	}
	if c.Character.Created {
		fmt.Fprintf(out, "blaster: %s (%s)\n", c.Character.Name, c.Character.Playbook)
	} else {
		fmt.Fprintln(out, "blaster: not created yet")
	}
	res := c.Resources
	fmt.Fprintf(out, "attitude %d/%d  turbo %d/%d  bite %d\n",
		res.AttitudeBoost, res.AttitudeKick, res.TurboBoost, res.TurboKick, res.Bite)
	fmt.Fprintf(out, "trouble %d/%d  style %d/%d\n",
		res.Trouble, domain.TroubleMax, res.Style, domain.StyleMax)
	if c.Run.IsActive {
		fmt.Fprintf(out, "run: %s (%d tracks)\n", c.Run.Goal, len(c.Run.Tracks))
	}
	fmt.Fprintf(out, "journal: %d chapters  npcs: %d  worlds: %d\n",
		len(c.Journal), len(c.NPCs), len(c.Worlds))
	return nil
}

func runAdjust(ctx context.Context, st *store.Store, args []string, out io.Writer) error {
	if len(args) != 2 {
		return errors.New("adjust takes a resource name and a delta")
	}
	delta, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("parse delta: %w", err)
	}

	c, err := resolve(st, nil)
	if err != nil {
		return err
	}
	applied, err := st.Apply(ctx, c.ID, command.AdjustResource{
		Resource: domain.ResourceName(args[0]),
		Delta:    delta,
	})
	if err != nil {
		return err
	}
	if !applied {
		fmt.Fprintln(out, "campaign is retired; adjustment skipped")
		return nil
	}

	updated, _ := st.Campaign(c.ID)
	fmt.Fprintf(out, "%s: attitude %d/%d turbo %d/%d bite %d trouble %d style %d\n",
		args[0],
		updated.Resources.AttitudeBoost, updated.Resources.AttitudeKick,
		updated.Resources.TurboBoost, updated.Resources.TurboKick,
		updated.Resources.Bite, updated.Resources.Trouble, updated.Resources.Style)
	return nil
}

func runWorlds(st *store.Store, args []string, out io.Writer) error {
	c, err := resolve(st, nil)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		for _, name := range worldgraph.AllNames(c) {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	name := strings.Join(args, " ")
	adjacent := worldgraph.AdjacentTo(c, name)
	if len(adjacent) == 0 {
		fmt.Fprintf(out, "%s has no adjacent worlds\n", name)
		return nil
	}
	for _, neighbour := range adjacent {
		fmt.Fprintln(out, neighbour)
	}
	return nil
}

func runGear(args []string, out io.Writer) error {
	if len(args) == 0 {
		gear, err := compendium.SignatureGear()
		if err != nil {
			return err
		}
		for _, g := range gear {
			fmt.Fprintf(out, "%s  %s\n", g.ID, g.Name)
		}
		return nil
	}

	g, ok := compendium.GearByID(args[0])
	if !ok {
		return fmt.Errorf("unknown signature gear %q", args[0])
	}
	fmt.Fprintf(out, "%s: %s\n", g.Name, g.Function)
	for _, mod := range g.Mods {
		fmt.Fprintf(out, "  %s (%s)\n", mod.Name, mod.Cost)
	}
	return nil
}

func runRoll(args []string, out io.Writer) error {
	sides, count := 6, 1
	var err error
	if len(args) > 0 {
		if sides, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("parse sides: %w", err)
		}
	}
	if len(args) > 1 {
		if count, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("parse count: %w", err)
		}
	}
	if count < 1 || count > 100 {
		return errors.New("count must be between 1 and 100")
	}

	seed, err := random.NewSeed()
	if err != nil {
		return err
	}
	roller := dice.New(seed)

	total := 0
	rolls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		value, err := roller.Roll(sides)
		if err != nil {
			return err
		}
		total += value
		rolls = append(rolls, strconv.Itoa(value))
	}
	fmt.Fprintf(out, "%s = %d\n", strings.Join(rolls, " + "), total)
	return nil
}
