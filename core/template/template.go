// core/template/template.go
package template

import (
	"ampsim/core/simerr"
)

// Template is an immutable, normalized target sequence. The normalized view
// contains only A/C/G/T; circular templates expose wrap-aware coordinates.
type Template struct {
	id       string
	seq      []byte // sense, normalized
	rc       []byte // reverse complement of seq
	circular bool
}

var comp = [256]byte{'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A'}

// New validates and canonicalizes raw into a Template. Whitespace, digits
// (FASTA line numbers) and quotes are stripped, lowercase is folded, and U is
// resolved to T. Anything else, including IUPAC ambiguity codes, fails with a
// ValidationError: downstream matching assumes a strictly canonical template.
func New(id, raw string, circular bool) (*Template, error) {
	seq := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\'' || c == '"':
			continue
		case c >= '0' && c <= '9':
			continue
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		}
		if c == 'U' {
			c = 'T'
		}
		switch c {
		case 'A', 'C', 'G', 'T':
			seq = append(seq, c)
		default:
			return nil, simerr.Validationf("template", id, "invalid base %q at position %d (template must be unambiguous A/C/G/T/U)", raw[i], i+1)
		}
	}
	if len(seq) == 0 {
		return nil, simerr.Validationf("template", id, "empty sequence")
	}

	rc := make([]byte, len(seq))
	for i := range seq {
		rc[i] = comp[seq[len(seq)-1-i]]
	}
	return &Template{id: id, seq: seq, rc: rc, circular: circular}, nil
}

func (t *Template) ID() string     { return t.id }
func (t *Template) Len() int       { return len(t.seq) }
func (t *Template) Circular() bool { return t.circular }

// Seq returns the normalized sense-strand view. Callers must not mutate it.
func (t *Template) Seq() []byte { return t.seq }

// RC returns the reverse-complement view (5'→3' on the antisense strand).
func (t *Template) RC() []byte { return t.rc }

// Wrap maps an index into [0, Len) for circular templates. For linear
// templates it is the identity on valid indices.
func (t *Template) Wrap(i int) int {
	n := len(t.seq)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// At reads the sense base at i, wrapping for circular templates.
func (t *Template) At(i int) byte { return t.seq[t.Wrap(i)] }

// Slice returns n sense bases starting at start. On a circular template the
// range may cross the origin, in which case tail and head are concatenated.
// The result is always a fresh copy.
func (t *Template) Slice(start, n int) []byte {
	L := len(t.seq)
	if n <= 0 {
		return nil
	}
	if n > L {
		n = L
	}
	start = t.Wrap(start)
	out := make([]byte, 0, n)
	if start+n <= L {
		return append(out, t.seq[start:start+n]...)
	}
	out = append(out, t.seq[start:]...)
	return append(out, t.seq[:start+n-L]...)
}
