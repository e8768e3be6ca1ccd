package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/league-insights/internal/domain/season"
	"github.com/riskibarqy/league-insights/internal/platform/logging"
)

// SiteWriter persists derived overviews as JSON artifacts for the
// static site. Files are written atomically (temp file then rename) so
// a crashed export never leaves a half-written artifact behind.
type SiteWriter struct {
	dir    string
	logger *logging.Logger

	mu       sync.Mutex
	manifest map[string]string
}

func NewSiteWriter(dir string, logger *logging.Logger) (*SiteWriter, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("site writer output dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create site output dir %s: %w", dir, err)
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &SiteWriter{
		dir:      dir,
		logger:   logger,
		manifest: make(map[string]string),
	}, nil
}

func (w *SiteWriter) WriteOverview(ctx context.Context, leagueKey string, overview season.Overview) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	payload, err := sonic.ConfigStd.MarshalIndent(overview, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal overview league=%s: %w", leagueKey, err)
	}
	if _, err := buf.Write(payload); err != nil {
		return fmt.Errorf("buffer overview league=%s: %w", leagueKey, err)
	}
	if err := buf.WriteByte('\n'); err != nil {
		return fmt.Errorf("buffer overview league=%s: %w", leagueKey, err)
	}

	name := artifactName(leagueKey)
	if err := w.writeAtomic(name, buf.Bytes()); err != nil {
		return err
	}

	w.mu.Lock()
	w.manifest[leagueKey] = name
	w.mu.Unlock()
	if err := w.writeManifest(); err != nil {
		return err
	}

	w.logger.DebugContext(ctx, "wrote overview artifact",
		"league_key", leagueKey,
		"file", name,
		"bytes", buf.Len(),
	)
	return nil
}

type manifestEntry struct {
	LeagueKey string `json:"league_key"`
	File      string `json:"file"`
}

func (w *SiteWriter) writeManifest() error {
	w.mu.Lock()
	entries := make([]manifestEntry, 0, len(w.manifest))
	for leagueKey, name := range w.manifest {
		entries = append(entries, manifestEntry{LeagueKey: leagueKey, File: name})
	}
	w.mu.Unlock()

	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].LeagueKey < entries[j-1].LeagueKey; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}

	payload, err := sonic.ConfigStd.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	return w.writeAtomic("manifest.json", append(payload, '\n'))
}

func (w *SiteWriter) writeAtomic(name string, data []byte) error {
	target := filepath.Join(w.dir, name)
	tmp, err := os.CreateTemp(w.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp artifact for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close artifact %s: %w", name, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("publish artifact %s: %w", name, err)
	}

	return nil
}

// artifactName flattens a league key into a filesystem-safe file name,
// e.g. "449.l.1234" becomes "overview-449-l-1234.json".
func artifactName(leagueKey string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, leagueKey)

	return "overview-" + sanitized + ".json"
}
