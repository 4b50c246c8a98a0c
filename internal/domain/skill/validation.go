package skill

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var colorHexRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks a candidate record before it is written. It never touches
// the store; uniqueness is checked by the caller.
func Validate(s Skill) error {
	if strings.TrimSpace(s.Name) == "" {
		return ValidationError("Skill name is required")
	}
	if utf8.RuneCountInString(s.Name) > MaxNameLength {
		return ValidationError("Skill name must be less than %d characters", MaxNameLength)
	}

	if strings.TrimSpace(s.Category) == "" {
		return ValidationError("Skill category is required")
	}
	if utf8.RuneCountInString(s.Category) > MaxCategoryLength {
		return ValidationError("Category must be less than %d characters", MaxCategoryLength)
	}

	if s.ProficiencyLevel != nil && !IsValidProficiency(*s.ProficiencyLevel) {
		return ValidationError("Proficiency level must be between %d and %d", MinProficiencyLevel, MaxProficiencyLevel)
	}

	if s.YearsExperience != nil && *s.YearsExperience < 0 {
		return ValidationError("Years of experience cannot be negative")
	}

	if s.Description != nil && utf8.RuneCountInString(*s.Description) > MaxDescriptionLength {
		return ValidationError("Description must be less than %d characters", MaxDescriptionLength)
	}
	if s.IconURL != nil && utf8.RuneCountInString(*s.IconURL) > MaxIconURLLength {
		return ValidationError("Icon URL must be less than %d characters", MaxIconURLLength)
	}

	if s.ColorHex != nil && !colorHexRe.MatchString(*s.ColorHex) {
		return ValidationError("Color must be a valid hex color code")
	}

	return nil
}

func IsValidProficiency(v int) bool {
	return v >= MinProficiencyLevel && v <= MaxProficiencyLevel
}
