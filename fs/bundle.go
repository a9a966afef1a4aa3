// Package fs provides file-based persistence for captured court records.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rjoshi/ecourts"
)

// Ensure Writer implements ecourts.BundleWriter at compile time.
var _ ecourts.BundleWriter = (*Writer)(nil)

// Writer persists each capture as a JSON document plus a rendered text
// summary sharing one timestamp-derived identifier. Both documents are fully
// materialized in memory before any file exists, then written to temporary
// files and renamed into place, so a partial file is never observable under a
// final name.
type Writer struct {
	renderer     ecourts.DocumentRenderer
	causeListDir string
	ordersDir    string

	// Now returns the current time. Overridable in tests.
	Now func() time.Time
}

// NewWriter creates a new Writer. Cause-list captures land in causeListDir,
// case-status captures in ordersDir; either is created on first write.
func NewWriter(renderer ecourts.DocumentRenderer, causeListDir, ordersDir string) *Writer {
	return &Writer{
		renderer:     renderer,
		causeListDir: causeListDir,
		ordersDir:    ordersDir,
		Now:          time.Now,
	}
}

// WriteCauseList persists a cause-list record set. Zero records writes a
// valid empty document; absence of hearings is an outcome worth keeping.
func (w *Writer) WriteCauseList(ctx context.Context, records []*ecourts.CaseRecord) (*ecourts.ExportBundle, error) {
	if records == nil {
		records = []*ecourts.CaseRecord{}
	}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	summary, err := w.renderer.RenderCauseList(records)
	if err != nil {
		return nil, err
	}
	data, err := marshalJSON(records)
	if err != nil {
		return nil, err
	}

	bundle, err := w.write(w.causeListDir, "causelist_", data, summary)
	if err != nil {
		return nil, err
	}
	bundle.Kind = ecourts.QueryCauseList
	bundle.Records = len(records)
	return bundle, nil
}

// WriteCaseStatus persists a single case-status record.
func (w *Writer) WriteCaseStatus(ctx context.Context, record *ecourts.CaseStatusRecord) (*ecourts.ExportBundle, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	summary, err := w.renderer.RenderCaseStatus(record)
	if err != nil {
		return nil, err
	}
	data, err := marshalJSON(record)
	if err != nil {
		return nil, err
	}

	bundle, err := w.write(w.ordersDir, "order_", data, summary)
	if err != nil {
		return nil, err
	}
	bundle.Kind = ecourts.QueryCaseStatus
	bundle.Records = 1
	return bundle, nil
}

// write allocates an unused identifier under dir and lands both documents.
func (w *Writer) write(dir, prefix string, data []byte, summary string) (*ecourts.ExportBundle, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	id, dataPath, summaryPath := w.allocate(dir, prefix)

	if err := writeAtomic(dataPath, data); err != nil {
		return nil, err
	}
	if err := writeAtomic(summaryPath, []byte(summary)); err != nil {
		return nil, err
	}

	return &ecourts.ExportBundle{
		ID:          id,
		DataPath:    dataPath,
		SummaryPath: summaryPath,
	}, nil
}

// allocate derives an identifier from the wall-clock second and bumps a
// numeric suffix until neither output name is taken. Captures landing within
// the same second get distinct names, never an overwrite.
func (w *Writer) allocate(dir, prefix string) (id, dataPath, summaryPath string) {
	base := w.Now().Format("02_01_2006_15_04_05")
	for n := 1; ; n++ {
		id = base
		if n > 1 {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		dataPath = filepath.Join(dir, prefix+id+".json")
		summaryPath = filepath.Join(dir, prefix+id+".txt")
		if !exists(dataPath) && !exists(summaryPath) {
			return id, dataPath, summaryPath
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// writeAtomic writes content to a temporary file in the destination
// directory, syncs it, and renames it into place.
func writeAtomic(path string, content []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".ecourts-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// marshalJSON encodes v with two-space indentation and HTML escaping off, so
// case numbers like "A&B vs C" read back as written.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
