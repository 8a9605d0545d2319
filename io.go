// File: typeconf/io.go
package typeconf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Encode writes the file back out in canonical form: sections in declaration
// order, one "key = value" assignment per entry, list elements joined with
// ", " and multi-line strings emitted as indented continuation lines.
// Loading the encoded text again yields an equivalent file.
func (f *File) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for i, section := range f.sections {
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "[%s]\n", section.Selector.String()); err != nil {
			return err
		}
		for _, entry := range section.Entries {
			if err := writeEntry(bw, entry); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// String returns the canonical encoding as a string.
func (f *File) String() string {
	var sb strings.Builder
	_ = f.Encode(&sb) // strings.Builder writes cannot fail
	return sb.String()
}

// WriteFile encodes the file to path atomically: the data is written to a
// temporary file in the target directory and renamed into place.
func (f *File) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := f.Encode(&buf); err != nil {
		return err
	}
	return atomicWriteFile(path, buf.Bytes())
}

// Encode flattens the resolution into a single global section holding its
// explicit values, in catalog order. Loading the output and resolving any
// module path yields the same effective values.
func (r *Resolved) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "[%s]\n", GlobalSection); err != nil {
		return err
	}
	for _, spec := range r.registry.Options() {
		if !r.explicit[spec.Name] {
			continue
		}
		entry := Entry{Option: spec.Name, Value: r.values[spec.Name]}
		if err := writeEntry(bw, entry); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// writeEntry emits one assignment, using continuation lines for values that
// span multiple lines.
func writeEntry(w *bufio.Writer, entry Entry) error {
	lines := strings.Split(formatValue(entry.Value), "\n")
	if _, err := fmt.Fprintf(w, "%s = %s\n", entry.Option, lines[0]); err != nil {
		return err
	}
	for _, line := range lines[1:] {
		if _, err := fmt.Fprintf(w, "    %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

// formatValue renders a coerced value in the syntax the parser accepts.
func formatValue(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// atomicWriteFile writes data to path via a temporary file in the same
// directory followed by a rename.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath)

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
