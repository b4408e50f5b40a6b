package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/ribpatch/pkg/errors"
	ribio "github.com/matzehuels/ribpatch/pkg/io"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ribpatch.toml", "format = \"json\"\nprecision = 4\nverbose = true\n")

	cfg, err := readConfig(path)
	if err != nil {
		t.Fatalf("readConfig() error = %v", err)
	}
	if cfg.Format == nil || *cfg.Format != "json" {
		t.Errorf("Format = %v, want json", cfg.Format)
	}
	if cfg.Precision == nil || *cfg.Precision != 4 {
		t.Errorf("Precision = %v, want 4", cfg.Precision)
	}
	if cfg.Verbose == nil || !*cfg.Verbose {
		t.Errorf("Verbose = %v, want true", cfg.Verbose)
	}
}

func TestReadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.toml")},
		{"syntax", writeFile(t, dir, "syntax.toml", "format = \n")},
		{"wrong type", writeFile(t, dir, "type.toml", "precision = \"six\"\n")},
		{"unknown key", writeFile(t, dir, "unknown.toml", "formt = \"json\"\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readConfig(tt.path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("readConfig() error = %v, want %v", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestConfigAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "ribpatch.toml", "format = \"json\"\n")
	input := writeFile(t, dir, "grid.rib", testPatchLine+"\n")
	output := filepath.Join(dir, "grid.out")

	if _, _, err := runCLI(t, "--config", cfg, input, output); err != nil {
		t.Fatalf("convert error = %v", err)
	}
	if _, err := ribio.ImportJSON(output); err != nil {
		t.Errorf("config format not applied: %v", err)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "ribpatch.toml", "format = \"json\"\n")
	input := writeFile(t, dir, "grid.rib", testPatchLine+"\n")
	output := filepath.Join(dir, "grid.out")

	if _, _, err := runCLI(t, "--config", cfg, "--format", "text", input, output); err != nil {
		t.Fatalf("convert error = %v", err)
	}
	if _, err := ribio.ImportPatch(output); err != nil {
		t.Errorf("--format flag should win over config: %v", err)
	}
}

func TestConfigInvalidValue(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "ribpatch.toml", "precision = 99\n")
	input := writeFile(t, dir, "grid.rib", testPatchLine+"\n")
	output := filepath.Join(dir, "grid.patch")

	_, _, err := runCLI(t, "--config", cfg, input, output)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("error = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("rejected config should not produce output")
	}
}

func TestZeroPrecisionRejected(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "grid.rib", testPatchLine+"\n")
	output := filepath.Join(dir, "grid.patch")
	zero := writeFile(t, dir, "zero.toml", "precision = 0\n")

	for name, args := range map[string][]string{
		"config": {"--config", zero, input, output},
		"flag":   {"--precision", "0", input, output},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := runCLI(t, args...)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("error = %v, want %v", err, errors.ErrCodeInvalidConfig)
			}
			if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
				t.Error("rejected precision should not produce output")
			}
		})
	}
}
