// Backup export/import. The document carries full record sets including
// soft-deleted tombstones, so a round-trip through a file cannot
// resurrect anything the user already deleted.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/notespend/notespend/pkg/types"
)

// ImportReport summarizes an import: how many records each section
// applied, and the first error per failed section. Sections are applied
// independently; one failing does not roll back the others.
type ImportReport struct {
	Notes     int
	Expenses  int
	Links     int
	Passwords int
	Errors    map[string]error
}

// Failed reports whether any section failed to apply.
func (r *ImportReport) Failed() bool {
	return len(r.Errors) > 0
}

// Export writes the full backup document to w: every note, expense, saved
// link, and password entry regardless of deletion state, plus an export
// timestamp. Password ciphertexts are exported as stored, still sealed.
func (s *Store) Export(w io.Writer) error {
	doc := types.BackupDocument{
		Timestamp: time.Now().Format(timeLayout),
	}

	sections := []struct {
		name string
		dst  *[]json.RawMessage
	}{
		{types.NotesCollection, &doc.Notes},
		{types.ExpensesCollection, &doc.Expenses},
		{types.LinksCollection, &doc.Links},
		{types.PasswordsCollection, &doc.Passwords},
	}
	for _, sec := range sections {
		coll, err := s.Collection(sec.name)
		if err != nil {
			return err
		}
		records, err := coll.FetchBy(nil)
		if err != nil {
			return fmt.Errorf("exporting %s: %w", sec.name, err)
		}
		for _, rec := range records {
			data, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("encoding %s record: %w", sec.name, err)
			}
			*sec.dst = append(*sec.dst, data)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("writing backup document: %w", err)
	}
	return nil
}

// ExportToFile writes the backup document to path atomically: temp file in
// the same directory, fsync, then rename over the destination.
func (s *Store) ExportToFile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".backup-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := s.Export(w); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Import reads a backup document from r and merges it into the store by
// primary key. Records present in the store but absent from the document
// are untouched; tombstones in the document overwrite live records, which
// is what keeps restore-from-old-backup from undeleting things. Returns
// ErrImportFormat (wrapped) if the payload is not a backup document.
func (s *Store) Import(r io.Reader) (*ImportReport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading import payload: %w", err)
	}

	var doc types.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrImportFormat, err)
	}
	if doc.Notes == nil && doc.Expenses == nil && doc.Links == nil && doc.Passwords == nil {
		return nil, fmt.Errorf("%w: no recognized sections", types.ErrImportFormat)
	}

	report := &ImportReport{Errors: make(map[string]error)}

	report.Notes = s.importSection(types.NotesCollection, doc.Notes, report.Errors)
	report.Expenses = s.importSection(types.ExpensesCollection, doc.Expenses, report.Errors)
	report.Links = s.importSection(types.LinksCollection, doc.Links, report.Errors)
	report.Passwords = s.importSection(types.PasswordsCollection, doc.Passwords, report.Errors)

	return report, nil
}

// importSection decodes one section and bulk-upserts it. Returns the number
// of records handed to BulkPut; a mid-batch failure leaves the earlier
// records of the batch committed, mirroring BulkPut's contract.
func (s *Store) importSection(name string, raws []json.RawMessage, errs map[string]error) int {
	if len(raws) == 0 {
		return 0
	}

	coll, err := s.Collection(name)
	if err != nil {
		errs[name] = err
		return 0
	}

	records := make([]any, 0, len(raws))
	for i, raw := range raws {
		rec := newRecord(name)
		if err := json.Unmarshal(raw, rec); err != nil {
			errs[name] = fmt.Errorf("%w: %s record %d: %v", types.ErrImportFormat, name, i, err)
			return 0
		}
		records = append(records, rec)
	}

	if err := coll.BulkPut(records); err != nil {
		errs[name] = fmt.Errorf("importing %s: %w", name, err)
		return 0
	}
	return len(records)
}
