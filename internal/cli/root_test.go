// internal/cli/root_test.go
package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ampsim/pkg/api"
)

const testTemplate = ">plasmid test construct\nCAGGAAACGTGTGTGTGTGTTGACCAAG\n"

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Execute(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestSimulateText(t *testing.T) {
	tpl := writeFile(t, "t.fa", testTemplate)
	code, out, _ := run(t, "--forward", "CAGGAAAC", "--reverse", "CTTGGTCA", tpl)
	if code != 0 {
		t.Fatalf("exit %d\n%s", code, out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header + primary row:\n%s", out)
	}
	if !strings.Contains(lines[1], "\tprimary\t") || !strings.Contains(lines[1], "\t28\t") {
		t.Errorf("primary row: %q", lines[1])
	}
}

func TestSimulateJSON(t *testing.T) {
	tpl := writeFile(t, "t.fa", testTemplate)
	code, out, _ := run(t, "-f", "CAGGAAAC", "-r", "CTTGGTCA", "-o", "json", tpl)
	if code != 0 {
		t.Fatalf("exit %d\n%s", code, out)
	}
	var res api.ResultV1
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if res.Amplicons.Primary == nil || res.Amplicons.Primary.Length != 28 {
		t.Errorf("primary: %+v", res.Amplicons.Primary)
	}
}

func TestSimulatePrimerFile(t *testing.T) {
	tpl := writeFile(t, "t.fa", testTemplate)
	primers := writeFile(t, "p.tsv", "assay1\tCAGGAAAC\tCTTGGTCA\n")
	code, out, _ := run(t, "--primers", primers, tpl)
	if code != 0 {
		t.Fatalf("exit %d\n%s", code, out)
	}
	if !strings.Contains(out, "assay1") {
		t.Errorf("pair ID missing:\n%s", out)
	}
}

func TestNoHeaderFlag(t *testing.T) {
	tpl := writeFile(t, "t.fa", testTemplate)
	code, out, _ := run(t, "-f", "CAGGAAAC", "-r", "CTTGGTCA", "--no-header", tpl)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.HasPrefix(out, "template\t") {
		t.Errorf("header present:\n%s", out)
	}
}

func TestNoProductIsExitZero(t *testing.T) {
	tpl := writeFile(t, "t.fa", testTemplate)
	code, _, errOut := run(t, "-f", "GGCGGCGG", "-r", "CCGCCGCC", tpl)
	if code != 0 {
		t.Fatalf("empty result must exit 0, got %d", code)
	}
	if !strings.Contains(errOut, "no binding sites") {
		t.Errorf("warnings: %q", errOut)
	}
}

func TestQuietSuppressesWarnings(t *testing.T) {
	tpl := writeFile(t, "t.fa", testTemplate)
	_, _, errOut := run(t, "-f", "GGCGGCGG", "-r", "CCGCCGCC", "-q", tpl)
	if strings.Contains(errOut, "WARN") {
		t.Errorf("warnings despite -q: %q", errOut)
	}
}

func TestExitCodes(t *testing.T) {
	tpl := writeFile(t, "t.fa", testTemplate)
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"invalid primer", []string{"-f", "ACXT", "-r", "CTTGGTCA", tpl}, 2},
		{"missing primers", []string{tpl}, 2},
		{"min over max", []string{"-f", "CAGGAAAC", "-r", "CTTGGTCA", "--min-product", "500", "--max-product", "100", tpl}, 2},
		{"unknown flag", []string{"--bogus", tpl}, 2},
		{"missing template file", []string{"-f", "CAGGAAAC", "-r", "CTTGGTCA", filepath.Join(t.TempDir(), "absent.fa")}, 3},
		{"bad output format", []string{"-f", "CAGGAAAC", "-r", "CTTGGTCA", "-o", "xml", tpl}, 2},
	}
	for _, tc := range tests {
		code, _, errOut := run(t, tc.args...)
		if code != tc.want {
			t.Errorf("%s: exit %d, want %d (%s)", tc.name, code, tc.want, strings.TrimSpace(errOut))
		}
	}
}

func TestSettingsFile(t *testing.T) {
	tpl := writeFile(t, "t.fa", testTemplate)
	// A 20 bp cap rejects the 28 bp product.
	settings := writeFile(t, "s.yaml", "max-product: 20\n")
	code, out, _ := run(t, "-f", "CAGGAAAC", "-r", "CTTGGTCA", "--settings", settings, tpl)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "rejected: length 28 outside size bounds") {
		t.Errorf("settings not applied:\n%s", out)
	}
}

func TestDimersSubcommand(t *testing.T) {
	primers := writeFile(t, "p.tsv", "a1\tAAAACCCC\tGGGGTTTT\n")
	code, out, _ := run(t, "dimers", "--primers", primers)
	if code != 0 {
		t.Fatalf("exit %d\n%s", code, out)
	}
	if !strings.Contains(out, "a1.F\ta1.R\t8\t") {
		t.Errorf("cross-check row missing:\n%s", out)
	}
}

func TestDimersSubcommandJSON(t *testing.T) {
	primers := writeFile(t, "p.tsv", "a1\tAAAACCCC\tGGGGTTTT\n")
	code, out, _ := run(t, "dimers", "--primers", primers, "-o", "json")
	if code != 0 {
		t.Fatalf("exit %d\n%s", code, out)
	}
	var got []api.DimerV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(got) == 0 || got[0].PrimerA != "a1.F" {
		t.Fatalf("payload: %+v", got)
	}
}

func TestConfigSubcommand(t *testing.T) {
	code, out, _ := run(t, "config")
	if code != 0 {
		t.Fatalf("exit %d\n%s", code, out)
	}
	for _, key := range []string{"max-mismatches:", "scoring:", "dimer:"} {
		if !strings.Contains(out, key) {
			t.Errorf("key %q missing:\n%s", key, out)
		}
	}
}

func TestVersionSubcommand(t *testing.T) {
	code, out, _ := run(t, "version")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(out, "ampsim version ") {
		t.Errorf("output: %q", out)
	}
}
