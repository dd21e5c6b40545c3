package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	if version != "1.0.0" || commit != "abc123" || date != "2026-01-01" {
		t.Errorf("got %q %q %q", version, commit, date)
	}
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootRegistersCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"run", "simulate", "inspect"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestLoadConfigDefault(t *testing.T) {
	cfg, err := (&globalOptions{}).loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Flames.Count != 25 {
		t.Errorf("Flames.Count = %d, want 25", cfg.Flames.Count)
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starwake.toml")
	if err := os.WriteFile(path, []byte("[flames]\ncount = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--seed", "1", "--config", path, "simulate", "--frames", "1", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var sum simSummary
	if err := json.Unmarshal([]byte(out), &sum); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if sum.Entities != 3+100+15 {
		t.Errorf("entities = %d, want %d", sum.Entities, 3+100+15)
	}
}

func TestMissingConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "inspect")
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Errorf("err = %v, want load config failure", err)
	}
}
