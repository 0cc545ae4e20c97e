// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID  string
	Seq string
}

// ReadAll parses every record from r.
func ReadAll(r io.Reader) ([]Record, error) {
	var (
		out []Record
		cur *Record
		sb  strings.Builder
	)
	flush := func() {
		if cur != nil {
			cur.Seq = sb.String()
			out = append(out, *cur)
			sb.Reset()
		}
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			id := strings.Fields(line[1:])
			if len(id) == 0 {
				return nil, fmt.Errorf("fasta: empty header at line %d", ln)
			}
			cur = &Record{ID: id[0]}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("fasta: sequence before header at line %d", ln)
		}
		sb.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()
	if len(out) == 0 {
		return nil, fmt.Errorf("fasta: no records")
	}
	return out, nil
}

// ReadFile reads all records from path, or stdin when path is "-".
func ReadFile(path string) ([]Record, error) {
	if path == "-" {
		return ReadAll(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ReadAll(fh)
}
