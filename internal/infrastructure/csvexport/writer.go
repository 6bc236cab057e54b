package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"jan-server/services/chat-insights/internal/domain/conversation"
)

// Write emits a header row and one row per table row.
func Write(w io.Writer, table *conversation.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(conversation.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < table.Len(); i++ {
		if err := cw.Write(table.Record(i).Values()); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table to path through a temporary file in the same
// directory, so readers never observe a partial file.
func WriteFile(path string, table *conversation.Table) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	// CreateTemp opens with 0600; the export is meant to be shared.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := Write(tmp, table); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %q: %w", path, err)
	}
	return nil
}
