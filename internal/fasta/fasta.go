// Package fasta reads FASTA-like inputs: a header line starting with '>'
// names a record, and the following lines up to the next header are
// concatenated into its sequence.
package fasta

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const headerMarker = '>'

// Record is one named sequence.
type Record struct {
	Name     string
	Sequence string
}

// Parse reads every record from r. Blank lines are ignored; sequence data
// before the first header is an error.
func Parse(r io.Reader) ([]Record, error) {
	var (
		records []Record
		seq     strings.Builder
	)
	flush := func() {
		if len(records) > 0 {
			records[len(records)-1].Sequence = seq.String()
		}
		seq.Reset()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text[0] == headerMarker {
			flush()
			records = append(records, Record{Name: strings.TrimSpace(text[1:])})
			continue
		}
		if len(records) == 0 {
			return nil, errors.Errorf("line %d: sequence data before the first header", line)
		}
		seq.WriteString(text)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}
	flush()
	return records, nil
}

// ReadFile parses the records of the file at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return records, nil
}

// ReadList reads a file naming one input path per line. Relative paths are
// resolved against the directory of the list itself.
func ReadList(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read list %s", path)
	}

	dir := filepath.Dir(path)
	var paths []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(dir, line)
		}
		paths = append(paths, line)
	}
	return paths, nil
}
