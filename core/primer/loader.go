// core/primer/loader.go
package primer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadTSV reads whitespace-separated primer rows:
//
//	id  forward  reverse  [probe]  [min]  [max]
//
// Blank lines and #-comments are skipped. Sequences are validated and
// uppercased. A probe field starting with a digit is read as min instead.
func LoadTSV(path string) ([]Pair, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var list []Pair
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 3 || len(f) > 6 {
			return nil, fmt.Errorf("%s:%d bad field count %d", path, ln, len(f))
		}
		p := Pair{ID: f[0]}
		fw, err := Validate(f[0]+".F", f[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d %w", path, ln, err)
		}
		rv, err := Validate(f[0]+".R", f[2])
		if err != nil {
			return nil, fmt.Errorf("%s:%d %w", path, ln, err)
		}
		p.Forward, p.Reverse = fw.Seq, rv.Seq

		rest := f[3:]
		if len(rest) > 0 && !isDigitStart(rest[0]) {
			pb, err := Validate(f[0]+".P", rest[0])
			if err != nil {
				return nil, fmt.Errorf("%s:%d %w", path, ln, err)
			}
			p.Probe = pb.Seq
			rest = rest[1:]
		}
		if len(rest) > 0 {
			if _, err := fmt.Sscan(rest[0], &p.MinProduct); err != nil {
				return nil, fmt.Errorf("%s:%d bad min: %v", path, ln, err)
			}
			rest = rest[1:]
		}
		if len(rest) > 0 {
			if _, err := fmt.Sscan(rest[0], &p.MaxProduct); err != nil {
				return nil, fmt.Errorf("%s:%d bad max: %v", path, ln, err)
			}
		}
		list = append(list, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func isDigitStart(s string) bool { return s != "" && s[0] >= '0' && s[0] <= '9' }
