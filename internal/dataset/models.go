package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// ErrInvalidID is returned for record ids that are not plain file names
var ErrInvalidID = errors.New("invalid record id")

// PromptRecord is one generation job of a batch run
type PromptRecord struct {
	ID          string `json:"id" parquet:"id"`
	Instruction string `json:"instruction" parquet:"instruction"`
	// ImagePath is relative to the dataset file unless absolute
	ImagePath string `json:"image_path,omitempty" parquet:"image_path"`
}

// HasImage reports whether the record references an image
func (r *PromptRecord) HasImage() bool {
	return r.ImagePath != ""
}

// ResolveImagePath returns the image path relative to the dataset directory
func (r *PromptRecord) ResolveImagePath(datasetPath string) string {
	if r.ImagePath == "" || filepath.IsAbs(r.ImagePath) {
		return r.ImagePath
	}
	return filepath.Join(filepath.Dir(datasetPath), r.ImagePath)
}

// OutputName is the file the record's layout is written to
func (r *PromptRecord) OutputName() string {
	return r.ID + ".svg"
}

// ValidID reports whether id can name a file inside the output directory
func ValidID(id string) bool {
	return filepath.IsLocal(id) && !strings.ContainsAny(id, `/\`)
}

// normalize gives unnamed records a positional id and makes ids unique by
// suffixing repeats ("lot", "lot-2", ...). Ids that would leave the output
// directory are rejected.
func normalize(records []PromptRecord) ([]PromptRecord, error) {
	seen := make(map[string]bool, len(records))
	for i := range records {
		id := records[i].ID
		if id == "" {
			id = fmt.Sprintf("record-%04d", i+1)
		}
		if !ValidID(id) {
			return nil, fmt.Errorf("%w: record %d has id %q", ErrInvalidID, i+1, id)
		}

		unique := id
		for n := 2; seen[unique]; n++ {
			unique = fmt.Sprintf("%s-%d", id, n)
		}
		if unique != id {
			slog.Warn("Duplicate record id renamed", "id", id, "renamed", unique)
		}
		seen[unique] = true
		records[i].ID = unique
	}
	return records, nil
}
