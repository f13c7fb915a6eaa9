// Package distribute consumes resolved destination maps: the insert variant
// writes text in place, the copy variant routes it to the system clipboard.
package distribute

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"snipyard/internal/domain"
	"snipyard/internal/ports"
)

// Distributor implements ports.Sink. Text for the "here" sentinel goes to
// Here; every other destination is treated as a file path, resolved against
// Dir when relative.
type Distributor struct {
	Here io.Writer
	Dir  string
}

// Ensure Distributor implements Sink
var _ ports.Sink = (*Distributor)(nil)

// New creates a distributor writing "here" text to w and resolving relative
// file destinations against dir.
func New(w io.Writer, dir string) *Distributor {
	return &Distributor{Here: w, Dir: dir}
}

// Insert writes each destination in map insertion order: "here" to the
// configured writer, files by inserting at the beginning of the file
// (created when absent). Failing destinations are collected and reported
// after the rest have been attempted.
func (d *Distributor) Insert(m *domain.DestinationMap) error {
	var errs []error
	for _, dest := range m.Destinations() {
		text, _ := m.Text(dest)

		if dest == domain.HereDestination {
			if d.Here != nil {
				if _, err := io.WriteString(d.Here, text); err != nil {
					errs = append(errs, fmt.Errorf("here: %w", err))
				}
			}
			continue
		}

		if err := d.prepend(dest, text); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", dest, err))
		}
	}
	return errors.Join(errs...)
}

// prepend inserts text at the top of the destination file, creating it when
// it does not exist yet.
func (d *Distributor) prepend(dest, text string) error {
	path := dest
	if !filepath.IsAbs(path) && d.Dir != "" {
		path = filepath.Join(d.Dir, path)
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	content := text
	if len(existing) > 0 {
		content = text + "\n" + string(existing)
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// Copy places the destinations' text on the shared clipboard, joined in
// insertion order. The system clipboard holds a single value, so the texts
// are separated by a blank line rather than written as separate entries.
func (d *Distributor) Copy(m *domain.DestinationMap) error {
	return clipboard.WriteAll(combined(m))
}

func combined(m *domain.DestinationMap) string {
	var parts []string
	for _, dest := range m.Destinations() {
		text, _ := m.Text(dest)
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n\n")
}
