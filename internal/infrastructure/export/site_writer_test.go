package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/league-insights/internal/domain/season"
)

func TestSiteWriter_WriteOverview(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer, err := NewSiteWriter(dir, nil)
	if err != nil {
		t.Fatalf("NewSiteWriter error: %v", err)
	}

	overview := season.Overview{
		Season:    "2024",
		LeagueKey: "449.l.1234",
		FinalPlacements: []season.Placement{
			{TeamKey: "t1", FinalPlace: 1, FinalLabel: "1st"},
		},
	}
	if err := writer.WriteOverview(context.Background(), "449.l.1234", overview); err != nil {
		t.Fatalf("WriteOverview error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "overview-449-l-1234.json"))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	var decoded map[string]any
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode artifact: %v", err)
	}
	if decoded["league_key"] != "449.l.1234" || decoded["season"] != "2024" {
		t.Fatalf("unexpected artifact identity: %v", decoded)
	}
	if _, ok := decoded["final_placements"]; !ok {
		t.Fatal("expected final_placements in artifact")
	}

	manifestRaw, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var manifest []map[string]string
	if err := sonic.Unmarshal(manifestRaw, &manifest); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if len(manifest) != 1 || manifest[0]["league_key"] != "449.l.1234" {
		t.Fatalf("unexpected manifest: %v", manifest)
	}
}

func TestSiteWriter_ManifestSorted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writer, err := NewSiteWriter(dir, nil)
	if err != nil {
		t.Fatalf("NewSiteWriter error: %v", err)
	}

	ctx := context.Background()
	for _, key := range []string{"449.l.2", "449.l.1", "449.l.3"} {
		if err := writer.WriteOverview(ctx, key, season.Overview{LeagueKey: key}); err != nil {
			t.Fatalf("WriteOverview(%s) error: %v", key, err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var manifest []map[string]string
	if err := sonic.Unmarshal(raw, &manifest); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if len(manifest) != 3 {
		t.Fatalf("expected 3 manifest rows, got %d", len(manifest))
	}
	for i, want := range []string{"449.l.1", "449.l.2", "449.l.3"} {
		if manifest[i]["league_key"] != want {
			t.Fatalf("manifest out of order at %d: %v", i, manifest)
		}
	}
}

func TestNewSiteWriter_RequiresDir(t *testing.T) {
	t.Parallel()

	if _, err := NewSiteWriter("  ", nil); err == nil {
		t.Fatal("expected error for empty dir")
	}
}

func TestArtifactName(t *testing.T) {
	t.Parallel()

	if got := artifactName("449.l.1234"); got != "overview-449-l-1234.json" {
		t.Fatalf("unexpected artifact name: %s", got)
	}
}
