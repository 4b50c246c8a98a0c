package skilldata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"portfolio-backend/internal/domain/skill"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported skills data format")

type document struct {
	Skills []record `json:"skills" yaml:"skills"`
}

type record struct {
	Name             string  `json:"name" yaml:"name"`
	Category         string  `json:"category" yaml:"category"`
	ProficiencyLevel *int    `json:"proficiencyLevel" yaml:"proficiencyLevel"`
	YearsExperience  *int    `json:"yearsExperience" yaml:"yearsExperience"`
	Description      *string `json:"description" yaml:"description"`
	IconURL          *string `json:"iconUrl" yaml:"iconUrl"`
	ColorHex         *string `json:"colorHex" yaml:"colorHex"`
}

func (r record) toSkill() skill.Skill {
	return skill.Skill{
		Name:             r.Name,
		Category:         r.Category,
		ProficiencyLevel: r.ProficiencyLevel,
		YearsExperience:  r.YearsExperience,
		Description:      r.Description,
		IconURL:          r.IconURL,
		ColorHex:         r.ColorHex,
	}
}

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the decoder from the file extension. Anything that is
// not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads a {"skills": [...]} document.
func Decode(r io.Reader, format Format) ([]skill.Skill, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(b))
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode skills json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("decode skills yaml: %w", err)
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	out := make([]skill.Skill, 0, len(doc.Skills))
	for _, rec := range doc.Skills {
		out = append(out, rec.toSkill())
	}
	return out, nil
}

// File loads skill definitions from a JSON or YAML file on every call, so
// edits are picked up without a restart.
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) LoadSkills(ctx context.Context) ([]skill.Skill, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open skills data %s: %w", f.Path, err)
	}
	defer fh.Close()

	return Decode(fh, FormatFromPath(f.Path))
}
