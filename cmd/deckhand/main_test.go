// ABOUTME: Tests for the deckhand CLI entrypoint covering subcommand dispatch, usage errors,
// ABOUTME: priority parsing, query parsing, the docs command, and the config file loader.
package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// quietly silences stdout and stderr for the duration of a CLI call so test
// output stays readable.
func quietly(t *testing.T, fn func() int) int {
	t.Helper()
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer devNull.Close()

	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = devNull, devNull
	defer func() { os.Stdout, os.Stderr = origOut, origErr }()

	return fn()
}

func TestRunNoArgsShowsHelp(t *testing.T) {
	if code := quietly(t, func() int { return run(nil) }); code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if code := quietly(t, func() int { return run([]string{"frobnicate"}) }); code != 2 {
		t.Errorf("run(frobnicate) = %d, want 2", code)
	}
}

func TestRunVersion(t *testing.T) {
	for _, arg := range []string{"version", "-version", "--version"} {
		if code := quietly(t, func() int { return run([]string{arg}) }); code != 0 {
			t.Errorf("run(%s) = %d, want 0", arg, code)
		}
	}
}

func TestRunTaskNoSubcommand(t *testing.T) {
	if code := quietly(t, func() int { return runTask(nil) }); code != 2 {
		t.Errorf("runTask() = %d, want 2", code)
	}
}

func TestRunTaskUnknownSubcommand(t *testing.T) {
	if code := quietly(t, func() int { return runTask([]string{"explode"}) }); code != 2 {
		t.Errorf("runTask(explode) = %d, want 2", code)
	}
}

func TestRunTaskCreateMissingTitle(t *testing.T) {
	if code := quietly(t, func() int { return runTaskCreate(nil) }); code != 2 {
		t.Errorf("runTaskCreate() = %d, want 2", code)
	}
}

func TestRunTaskCreateInvalidPriority(t *testing.T) {
	args := []string{"-priority", "whenever", "Some task"}
	if code := quietly(t, func() int { return runTaskCreate(args) }); code != 2 {
		t.Errorf("runTaskCreate(bad priority) = %d, want 2", code)
	}

	// Out-of-range numeric levels are rejected too.
	args = []string{"-priority", "9", "Some task"}
	if code := quietly(t, func() int { return runTaskCreate(args) }); code != 2 {
		t.Errorf("runTaskCreate(priority 9) = %d, want 2", code)
	}
}

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantID   int
		wantRest []string
		wantCode int
	}{
		{name: "id only", args: []string{"42"}, wantID: 42, wantCode: -1},
		{name: "id with rest", args: []string{"42", "Doing"}, wantID: 42, wantRest: []string{"Doing"}, wantCode: -1},
		{name: "missing id", args: nil, wantCode: 2},
		{name: "non-numeric id", args: []string{"abc"}, wantCode: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			fs.Usage = func() {}

			id, rest, code := parseTaskID(fs, tt.args)
			if code != tt.wantCode {
				t.Fatalf("code = %d, want %d", code, tt.wantCode)
			}
			if code != -1 {
				return
			}
			if id != tt.wantID {
				t.Errorf("id = %d, want %d", id, tt.wantID)
			}
			if len(rest) != len(tt.wantRest) {
				t.Fatalf("rest = %v, want %v", rest, tt.wantRest)
			}
			for i := range rest {
				if rest[i] != tt.wantRest[i] {
					t.Errorf("rest[%d] = %q, want %q", i, rest[i], tt.wantRest[i])
				}
			}
		})
	}
}

func TestRepeatedFlag(t *testing.T) {
	var r repeatedFlag
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&r, "item", "")

	if err := fs.Parse([]string{"-item", "a", "-item", "b", "-item", "c"}); err != nil {
		t.Fatal(err)
	}
	if len(r) != 3 || r[0] != "a" || r[1] != "b" || r[2] != "c" {
		t.Errorf("repeatedFlag = %v, want [a b c]", r)
	}
}

func TestRunRawInvalidQuery(t *testing.T) {
	args := []string{"-q", "nodelimiter", "/tm/projects"}
	if code := quietly(t, func() int { return runRaw(args) }); code != 2 {
		t.Errorf("runRaw(bad query) = %d, want 2", code)
	}
}

func TestRunRawInvalidBody(t *testing.T) {
	args := []string{"-X", "POST", "-d", "{not json", "/tm/projects"}
	if code := quietly(t, func() int { return runRaw(args) }); code != 2 {
		t.Errorf("runRaw(bad body) = %d, want 2", code)
	}
}

func TestRunDocsOffline(t *testing.T) {
	// docs needs no token; it renders the embedded catalog.
	if code := quietly(t, func() int { return runDocs(nil) }); code != 0 {
		t.Errorf("runDocs() = %d, want 0", code)
	}
	if code := quietly(t, func() int { return runDocs([]string{"tasks"}) }); code != 0 {
		t.Errorf("runDocs(tasks) = %d, want 0", code)
	}
	if code := quietly(t, func() int { return runDocs([]string{"nonsense"}) }); code != 1 {
		t.Errorf("runDocs(nonsense) = %d, want 1", code)
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	content := "token: abc\nbaseUrl: https://example.test/v1\nverbose: true\n"
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := loadFileConfig()
	if err != nil {
		t.Fatalf("loadFileConfig: %v", err)
	}
	if cfg.Token != "abc" {
		t.Errorf("Token = %q, want %q", cfg.Token, "abc")
	}
	if cfg.BaseURL != "https://example.test/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
}

func TestLoadFileConfigMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadFileConfig()
	if err != nil {
		t.Fatalf("loadFileConfig: %v", err)
	}
	if cfg != (fileConfig{}) {
		t.Errorf("missing file should yield a zero config, got %+v", cfg)
	}
}

func TestLoadFileConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(":\tnot yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	if _, err := loadFileConfig(); err == nil {
		t.Error("invalid YAML should return an error")
	}
}
