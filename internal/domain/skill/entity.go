package skill

import "time"

const (
	MaxNameLength        = 100
	MaxCategoryLength    = 50
	MaxDescriptionLength = 1000
	MaxIconURLLength     = 255

	MinProficiencyLevel = 1
	MaxProficiencyLevel = 5
)

// Skill is a single competency shown on the portfolio. Optional columns are
// pointers so that an absent value survives a round trip through the store.
type Skill struct {
	ID               int64
	Name             string
	Category         string
	ProficiencyLevel *int
	YearsExperience  *int
	Description      *string
	IconURL          *string
	ColorHex         *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Equal reports identity equality.
func (s Skill) Equal(other Skill) bool {
	return s.ID == other.ID
}

// ApplyFields overwrites every mutable field of s with the ones from in.
// ID and CreatedAt are left untouched.
func (s *Skill) ApplyFields(in Skill) {
	s.Name = in.Name
	s.Category = in.Category
	s.ProficiencyLevel = in.ProficiencyLevel
	s.YearsExperience = in.YearsExperience
	s.Description = in.Description
	s.IconURL = in.IconURL
	s.ColorHex = in.ColorHex
}

type CategoryCount struct {
	Category string
	Count    int64
}
