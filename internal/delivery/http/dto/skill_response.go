package dto

import (
	"time"

	"portfolio-backend/internal/domain/skill"
)

type SkillResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ProficiencyLevel *int      `json:"proficiencyLevel"`
	YearsExperience  *int      `json:"yearsExperience"`
	Description      *string   `json:"description"`
	IconURL          *string   `json:"iconUrl"`
	ColorHex         *string   `json:"colorHex"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{
		ID:               s.ID,
		Name:             s.Name,
		Category:         s.Category,
		ProficiencyLevel: s.ProficiencyLevel,
		YearsExperience:  s.YearsExperience,
		Description:      s.Description,
		IconURL:          s.IconURL,
		ColorHex:         s.ColorHex,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func NewSkillResponses(items []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewSkillResponse(it))
	}
	return out
}

// SkillRequest is the body of create and update calls. Unknown fields, id and
// timestamps included, are ignored.
type SkillRequest struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	ProficiencyLevel *int    `json:"proficiencyLevel"`
	YearsExperience  *int    `json:"yearsExperience"`
	Description      *string `json:"description"`
	IconURL          *string `json:"iconUrl"`
	ColorHex         *string `json:"colorHex"`
}

func (r SkillRequest) ToSkill() skill.Skill {
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

type CategoryStatResponse struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

func NewCategoryStatResponses(items []skill.CategoryCount) []CategoryStatResponse {
	out := make([]CategoryStatResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CategoryStatResponse{Category: it.Category, Count: it.Count})
	}
	return out
}

type SkillDeletedResponse struct {
	DeletedID int64  `json:"deletedId"`
	Message   string `json:"message"`
}

type SkillExistsResponse struct {
	SkillID int64 `json:"skillId"`
	Exists  bool  `json:"exists"`
}
