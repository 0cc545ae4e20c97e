// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// The core packages must stay free of app wiring: no imports of internal/
// or cmd/ from anything under ampsim/core, and the conversion/output layers
// never reach back up into cli or app.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"ampsim/core": {
			"ampsim/internal/", "ampsim/cmd/",
		},
		"ampsim/pkg/api": {
			"ampsim/internal/", "ampsim/cmd/", "ampsim/core",
		},
		"ampsim/internal/output": {
			"ampsim/internal/cli", "ampsim/internal/app", "ampsim/cmd/",
		},
		"ampsim/internal/fasta": {
			"ampsim/internal/cli", "ampsim/internal/app", "ampsim/internal/output", "ampsim/cmd/",
		},
		"ampsim/internal/config": {
			"ampsim/internal/cli", "ampsim/internal/app", "ampsim/internal/output", "ampsim/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "ampsim/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "ampsim/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
