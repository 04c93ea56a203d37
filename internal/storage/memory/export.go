package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// replayExport is the on-disk JSON shape of one exported replay.
type replayExport struct {
	FileName string          `json:"fileName"`
	Record   any             `json:"record"`
	Payload  json.RawMessage `json:"payload"`
}

// exportJSON writes every stored replay to OutputDir, one JSON file per
// replay, optionally gzipped.
func (b *Backend) exportJSON() error {
	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.replays))
	for name := range b.replays {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		r := b.replays[name]
		export := replayExport{
			FileName: r.FileName,
			Record:   r.Record,
			Payload:  json.RawMessage(r.Payload),
		}
		if err := b.writeExport(exportFileName(name), export); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) writeExport(name string, export replayExport) error {
	path := filepath.Join(b.cfg.OutputDir, name)
	if b.cfg.CompressOutput {
		path += ".gz"
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if b.cfg.CompressOutput {
		gz := gzip.NewWriter(f)
		if err := json.NewEncoder(gz).Encode(export); err != nil {
			gz.Close()
			return fmt.Errorf("encoding export: %w", err)
		}
		return gz.Close()
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

// exportFileName swaps the replay extension for .json.
func exportFileName(replayName string) string {
	base := filepath.Base(replayName)
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".mtreplay") {
		base = base[:len(base)-len(ext)]
	}
	return base + ".json"
}
