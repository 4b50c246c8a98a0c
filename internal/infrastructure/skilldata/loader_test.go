package skilldata

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode_JSON(t *testing.T) {
	in := `{"skills":[
		{"name":"Go","category":"Backend","proficiencyLevel":5,"yearsExperience":3,"colorHex":"#00ADD8"},
		{"name":"Figma","category":"Design"}
	]}`
	items, err := Decode(strings.NewReader(in), FormatJSON)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Go" || *items[0].ProficiencyLevel != 5 || *items[0].ColorHex != "#00ADD8" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].ProficiencyLevel != nil || items[1].Description != nil {
		t.Fatalf("absent fields must stay nil: %+v", items[1])
	}
}

func TestDecode_YAML(t *testing.T) {
	in := `
skills:
  - name: PostgreSQL
    category: Database
    proficiencyLevel: 4
    iconUrl: https://cdn.example.dev/postgres.svg
`
	items, err := Decode(strings.NewReader(in), FormatYAML)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].Category != "Database" || *items[0].IconURL != "https://cdn.example.dev/postgres.svg" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"skills":`), FormatJSON); err == nil {
		t.Fatalf("expected error for truncated json")
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"skills.json":     FormatJSON,
		"skills.YAML":     FormatYAML,
		"data/skills.yml": FormatYAML,
		"skills":          FormatJSON,
	}
	for path, want := range cases {
		if got := FormatFromPath(path); got != want {
			t.Fatalf("%s: expected %v, got %v", path, want, got)
		}
	}
}

func TestFile_LoadSkills(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skills.yaml")
	if err := os.WriteFile(path, []byte("skills:\n  - name: Go\n    category: Backend\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	items, err := NewFile(path).LoadSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Go" {
		t.Fatalf("unexpected items: %+v", items)
	}

	_, err = NewFile(filepath.Join(dir, "missing.json")).LoadSkills(context.Background())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
