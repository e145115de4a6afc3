package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDirAndFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got, want := Dir(), filepath.Join(home, ".swiftinit"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
	if got, want := FilePath(), filepath.Join(home, ".swiftinit", "config.yaml"); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	if err := Set(KeyDefaultMode, "executable"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A fresh viper state must find the value on disk.
	viper.Reset()
	Load()
	if got := Get(KeyDefaultMode); got != "executable" {
		t.Errorf("Get(%q) = %q, want %q", KeyDefaultMode, got, "executable")
	}
}

func TestSetWritesValidConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	if err := Set(KeyDefaultMode, "library"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := Set(KeyMirror, "https://mirror.example.com/swiftinit"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	report, err := CheckFile(FilePath())
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if !report.OK {
		t.Errorf("expected valid config, got %d problem(s):", len(report.Problems))
		for _, p := range report.Problems {
			t.Errorf("  field=%s keyword=%s detail=%s", p.Field, p.Keyword, p.Detail)
		}
	}
}

func TestCheckValidConfigs(t *testing.T) {
	valid := []struct {
		name string
		yaml string
	}{
		{"empty file", ""},
		{"default mode only", "default-mode: library\n"},
		{"all keys", "default-mode: executable\ncheck-updates: false\nmirror: https://mirror.example.com/swiftinit\n"},
		{"check-updates as string", "check-updates: \"true\"\n"},
	}

	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Check([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if !report.OK {
				t.Errorf("expected valid, got %d problem(s):", len(report.Problems))
				for _, p := range report.Problems {
					t.Errorf("  field=%s keyword=%s detail=%s", p.Field, p.Keyword, p.Detail)
				}
			}
		})
	}
}

func TestCheckInvalidConfigs(t *testing.T) {
	invalid := []struct {
		name string
		yaml string
	}{
		{"unrecognized mode", "default-mode: sandwich\n"},
		{"unknown key", "colour: blue\n"},
		{"non-boolean check-updates", "check-updates: maybe\n"},
		{"numeric mirror", "mirror: 42\n"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Check([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if report.OK {
				t.Errorf("expected problems for %q, got none", tt.yaml)
			}
			if len(report.Problems) == 0 {
				t.Errorf("expected at least one problem for %q", tt.yaml)
			}
		})
	}
}

func TestCheckProblemNamesField(t *testing.T) {
	report, err := Check([]byte("default-mode: sandwich\n"))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if report.OK {
		t.Fatal("expected problems")
	}

	found := false
	for _, p := range report.Problems {
		if p.Field == "/default-mode" && p.Detail != "" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected a problem at /default-mode with detail, got %+v", report.Problems)
	}
}

func TestCheckRejectsMalformedYAML(t *testing.T) {
	if _, err := Check([]byte("{{{")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestCheckFileMissing(t *testing.T) {
	if _, err := CheckFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestSchemaCompiles(t *testing.T) {
	s, err := configSchema()
	if err != nil {
		t.Fatalf("configSchema: %v", err)
	}
	if s == nil {
		t.Fatal("configSchema returned nil schema")
	}
}
