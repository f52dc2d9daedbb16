package cli

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/birdwatch/birdwatch/internal/config"
	"github.com/birdwatch/birdwatch/internal/sightings"
	"github.com/birdwatch/birdwatch/internal/testutil"
)

// newTestCatalog builds a JSON-backed catalog inside a test environment
func newTestCatalog(t *testing.T) (*sightings.Catalog, *testutil.TestEnv) {
	t.Helper()

	env := testutil.SetupTestEnv(t)
	cfg := config.DefaultConfig()
	cfg.Storage.Path = env.Path("sightings.json")
	cfg.Export.Dir = env.ProjectDir

	cat, closeFn, err := newCatalog(cfg)
	if err != nil {
		t.Fatalf("newCatalog failed: %v", err)
	}
	t.Cleanup(func() { closeFn() })

	cat.Now = func() time.Time {
		return time.Date(2024, 5, 1, 7, 8, 9, 0, time.Local)
	}
	return cat, env
}

func TestLogSightingOutput(t *testing.T) {
	cat, env := newTestCatalog(t)

	count := 2
	var out bytes.Buffer
	err := logSighting(&out, cat, sightings.LogRequest{
		Species:  "American Robin",
		Location: "Central Park",
		Notes:    "Singing in tree",
		Count:    &count,
	})
	if err != nil {
		t.Fatalf("logSighting failed: %v", err)
	}

	if out.String() != "Sighting logged: 2 American Robin at Central Park\n" {
		t.Errorf("Unexpected output %q", out.String())
	}
	if !env.FileExists("sightings.json") {
		t.Error("Expected sightings.json to be written")
	}
}

func TestListSightingsOutput(t *testing.T) {
	cat, env := newTestCatalog(t)

	var out bytes.Buffer
	if err := listSightings(&out, cat, sightings.Filter{}); err != nil {
		t.Fatalf("listSightings failed: %v", err)
	}
	if out.String() != "No sightings logged yet.\n" {
		t.Errorf("Unexpected empty output %q", out.String())
	}

	env.WriteSightings("sightings.json", testutil.SampleSightings())

	tests := []struct {
		name   string
		filter sightings.Filter
		want   string
	}{
		{
			name:   "species filter",
			filter: sightings.Filter{Species: "AMERICAN ROBIN"},
			want: "Logged sightings:\n" +
				"1. 2 American Robin at Central Park\n" +
				"   Notes: Singing in tree\n" +
				"2. 3 american robin at Backyard\n",
		},
		{
			name:   "both filters",
			filter: sightings.Filter{Species: "blue jay", Location: "backyard"},
			want: "Logged sightings:\n" +
				"1. 1 Blue Jay at Backyard\n" +
				"2. 1 Blue Jay at Backyard\n",
		},
		{
			name:   "no matches",
			filter: sightings.Filter{Species: "Nonexistent"},
			want:   "No sightings found for species: Nonexistent\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := listSightings(&out, cat, tt.filter); err != nil {
				t.Fatalf("listSightings failed: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Expected:\n%s\ngot:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestListSightingsMalformedStore(t *testing.T) {
	cat, env := newTestCatalog(t)
	env.CreateFile("sightings.json", "not json")

	var out bytes.Buffer
	err := listSightings(&out, cat, sightings.Filter{})
	if !errors.Is(err, sightings.ErrMalformedStore) {
		t.Errorf("Expected ErrMalformedStore, got %v", err)
	}
}

func TestExportSightingsOutput(t *testing.T) {
	cat, env := newTestCatalog(t)

	var out bytes.Buffer
	if err := exportSightings(&out, cat, ""); err != nil {
		t.Fatalf("exportSightings failed: %v", err)
	}
	if out.String() != "No sightings to export.\n" {
		t.Errorf("Unexpected output %q", out.String())
	}

	env.WriteSightings("sightings.json", testutil.SampleSightings())

	out.Reset()
	if err := exportSightings(&out, cat, ""); err != nil {
		t.Fatalf("exportSightings failed: %v", err)
	}

	want := filepath.Join(env.ProjectDir, "bird_sightings_20240501_070809.csv")
	if out.String() != "Successfully exported 5 sightings to "+want+"\n" {
		t.Errorf("Unexpected output %q", out.String())
	}
	if !env.FileExists(want) {
		t.Errorf("Expected %s to exist", want)
	}
}

func TestExportSightingsWriteFailureIsReported(t *testing.T) {
	cat, env := newTestCatalog(t)
	env.WriteSightings("sightings.json", testutil.SampleSightings())

	var out bytes.Buffer
	err := exportSightings(&out, cat, env.Path(filepath.Join("missing", "out.csv")))
	if err != nil {
		t.Fatalf("Expected write failure to be reported, not returned: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Error exporting sightings: ") {
		t.Errorf("Unexpected output %q", out.String())
	}
	if env.FileExists(filepath.Join("missing", "out.csv")) {
		t.Error("Expected no export file")
	}
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		required bool
		want     string
		wantErr  bool
	}{
		{"plain answer", "Central Park\n", true, "Central Park", false},
		{"windows newline", "Central Park\r\n", true, "Central Park", false},
		{"required repeats on empty", "\n\nPond\n", true, "Pond", false},
		{"optional accepts empty", "\n", false, "", false},
		{"optional at eof", "", false, "", false},
		{"answer without newline", "Yard", true, "Yard", false},
		{"required at eof", "\n", true, "", true},
		{"keeps inner whitespace", "  Back yard \n", true, "  Back yard ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := prompt(bufio.NewReader(strings.NewReader(tt.input)), &out, "Location", tt.required)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if !strings.HasPrefix(out.String(), "Location: ") {
				t.Errorf("Expected prompt label, got %q", out.String())
			}
		})
	}
}

func TestNewCatalogSQLite(t *testing.T) {
	env := testutil.SetupTestEnv(t)

	cfg := config.DefaultConfig()
	cfg.Storage.Backend = config.BackendSQLite
	cfg.Storage.SQLitePath = env.Path("data/sightings.db")

	cat, closeFn, err := newCatalog(cfg)
	if err != nil {
		t.Fatalf("newCatalog failed: %v", err)
	}
	defer closeFn()

	var out bytes.Buffer
	if err := logSighting(&out, cat, sightings.LogRequest{Species: "Heron", Location: "Lake"}); err != nil {
		t.Fatalf("logSighting failed: %v", err)
	}
	if out.String() != "Sighting logged: 1 Heron at Lake\n" {
		t.Errorf("Unexpected output %q", out.String())
	}
	if !env.FileExists("data/sightings.db") {
		t.Error("Expected sqlite database to be created")
	}
}

func TestShowConfig(t *testing.T) {
	var out bytes.Buffer
	if err := showConfig(&out, config.DefaultConfig()); err != nil {
		t.Fatalf("showConfig failed: %v", err)
	}

	for _, want := range []string{"backend: json", "path: sightings.json", "8080"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestInitConfig(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	path := filepath.Join(env.ProjectConf, "config.yaml")

	if err := initConfig(path, config.WriteProjectDefault, false); err != nil {
		t.Fatalf("initConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected config to exist: %v", err)
	}

	err := initConfig(path, config.WriteProjectDefault, false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected already exists error, got %v", err)
	}

	if err := initConfig(path, config.WriteDefault, true); err != nil {
		t.Errorf("Expected --force to overwrite, got %v", err)
	}
	if !strings.Contains(env.ReadFile(path), "sqlite_path") {
		t.Error("Expected overwritten config to be the global template")
	}
}
