package companion

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/solo-blaster/companion/internal/platform/config"
)

func testConfig(t *testing.T) config.Settings {
	t.Helper()
	return config.Settings{
		StorageDriver: "bbolt",
		StoragePath:   filepath.Join(t.TempDir(), "companion.db"),
		Locale:        "en-US",
	}
}

func run(t *testing.T, cfg config.Settings, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, args, strings.NewReader(stdin), &out); err != nil {
		t.Fatalf("run %v: %v", args, err)
	}
	return out.String()
}

func TestParseConfigSplitsSubcommand(t *testing.T) {
	fs := flag.NewFlagSet("companion", flag.ContinueOnError)
	cfg, args, err := ParseConfig(fs, []string{"-driver", "memory", "create", "My Campaign"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.StorageDriver != "memory" {
		t.Fatalf("expected flag driver, got %q", cfg.StorageDriver)
	}
	if len(args) != 2 || args[0] != "create" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestRunRequiresACommand(t *testing.T) {
	err := Run(context.Background(), testConfig(t), nil, strings.NewReader(""), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "usage:") {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestCreateAndList(t *testing.T) {
	cfg := testConfig(t)

	if got := run(t, cfg, "", "list"); got != "no campaigns\n" {
		t.Fatalf("expected empty listing, got %q", got)
	}

	created := run(t, cfg, "", "create", "Neon", "Drift")
	if !strings.Contains(created, "created Neon Drift") {
		t.Fatalf("unexpected create output %q", created)
	}

	listing := run(t, cfg, "", "list")
	if !strings.Contains(listing, "Neon Drift") || !strings.HasPrefix(listing, "*") {
		t.Fatalf("expected active campaign listed, got %q", listing)
	}
}

func TestSwitchAndDelete(t *testing.T) {
	cfg := testConfig(t)
	run(t, cfg, "", "create", "First")
	run(t, cfg, "", "create", "Second")

	listing := run(t, cfg, "", "list")
	lines := strings.Split(strings.TrimSpace(listing), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "Second") {
		t.Fatalf("expected newest first, got %q", listing)
	}

	// The id is the second field of the non-active line.
	firstID := strings.Fields(lines[1])[0]
	run(t, cfg, "", "switch", firstID)
	listing = run(t, cfg, "", "list")
	if !strings.Contains(listing, "* "+firstID) {
		t.Fatalf("expected %s active, got %q", firstID, listing)
	}

	run(t, cfg, "", "delete", firstID)
	listing = run(t, cfg, "", "list")
	if strings.Contains(listing, firstID) || !strings.HasPrefix(listing, "*") {
		t.Fatalf("expected pointer moved after delete, got %q", listing)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	run(t, cfg, "", "create", "Portable")

	exported := run(t, cfg, "", "export")
	if !strings.Contains(exported, `"Portable"`) {
		t.Fatalf("expected campaign document, got %q", exported)
	}

	imported := run(t, cfg, exported, "import", "-")
	if !strings.Contains(imported, "imported Portable") {
		t.Fatalf("unexpected import output %q", imported)
	}

	listing := run(t, cfg, "", "list")
	if strings.Count(listing, "Portable") != 2 {
		t.Fatalf("expected both copies listed, got %q", listing)
	}
}

func TestAdjustAndSheet(t *testing.T) {
	cfg := testConfig(t)
	run(t, cfg, "", "create", "Sheeted")

	adjusted := run(t, cfg, "", "adjust", "trouble", "3")
	if !strings.Contains(adjusted, "trouble 3") {
		t.Fatalf("unexpected adjust output %q", adjusted)
	}

	sheet := run(t, cfg, "", "sheet")
	if !strings.Contains(sheet, "Sheeted") || !strings.Contains(sheet, "trouble 3/8") {
		t.Fatalf("unexpected sheet %q", sheet)
	}
	if !strings.Contains(sheet, "blaster: not created yet") {
		t.Fatalf("expected uncreated blaster line, got %q", sheet)
	}
}

func TestReset(t *testing.T) {
	cfg := testConfig(t)
	run(t, cfg, "", "create", "Gone")
	run(t, cfg, "", "reset")
	if got := run(t, cfg, "", "list"); got != "no campaigns\n" {
		t.Fatalf("expected empty listing after reset, got %q", got)
	}
}

func TestWorlds(t *testing.T) {
	cfg := testConfig(t)
	run(t, cfg, "", "create", "Mapped")

	listing := run(t, cfg, "", "worlds")
	if !strings.Contains(listing, "Null") || !strings.Contains(listing, "Calorium") {
		t.Fatalf("expected canon worlds listed, got %q", listing)
	}

	adjacent := run(t, cfg, "", "worlds", "Calorium")
	if !strings.Contains(adjacent, "Empyrean") || !strings.Contains(adjacent, "Operaeblum") {
		t.Fatalf("unexpected Calorium adjacency %q", adjacent)
	}

	none := run(t, cfg, "", "worlds", "Nowhere")
	if !strings.Contains(none, "no adjacent worlds") {
		t.Fatalf("expected empty adjacency message, got %q", none)
	}
}

func TestGear(t *testing.T) {
	cfg := testConfig(t)

	listing := run(t, cfg, "", "gear")
	if !strings.Contains(listing, "gravityblaster") {
		t.Fatalf("expected gear catalog, got %q", listing)
	}

	detail := run(t, cfg, "", "gear", "gravityblaster")
	if !strings.Contains(detail, "Endurance Engine") {
		t.Fatalf("expected mods listed, got %q", detail)
	}

	err := Run(context.Background(), cfg, []string{"gear", "nope"}, strings.NewReader(""), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unknown signature gear") {
		t.Fatalf("expected unknown gear error, got %v", err)
	}
}

func TestRoll(t *testing.T) {
	got := run(t, testConfig(t), "", "roll", "6", "2")
	if !strings.Contains(got, "=") || !strings.Contains(got, "+") {
		t.Fatalf("unexpected roll output %q", got)
	}
}

func TestUnknownCommand(t *testing.T) {
	err := Run(context.Background(), testConfig(t), []string{"bogus"}, strings.NewReader(""), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), `unknown command "bogus"`) {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}
