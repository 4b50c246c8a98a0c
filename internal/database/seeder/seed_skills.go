package seeder

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/database"
	"portfolio-backend/internal/domain/skill"
)

type SkillSource interface {
	LoadSkills(ctx context.Context) ([]skill.Skill, error)
}

// SkillsSeeder inserts the skills from Source that are not stored yet, in one
// transaction. Existing rows, matched by case-insensitive name, are left
// alone so the seeder can run on every start.
type SkillsSeeder struct {
	Source SkillSource
}

func (SkillsSeeder) Name() string { return "skills" }

func (s SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if s.Source == nil {
		return fmt.Errorf("nil skill source")
	}
	if err := RequireColumns(ctx, db, "skills", "id", "name", "category", "proficiency_level", "years_experience", "description", "icon_url", "color_hex", "created_at", "updated_at"); err != nil {
		return err
	}

	items, err := s.Source.LoadSkills(ctx)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := skill.Validate(it); err != nil {
			return fmt.Errorf("skill %q: %w", it.Name, err)
		}
	}

	now := time.Now().UTC()
	return database.RunInTx(ctx, db, database.TxOptions{}, func(q database.Querier) error {
		for _, it := range items {
			_, err := q.Exec(
				ctx,
				`INSERT INTO skills (name, category, proficiency_level, years_experience, description, icon_url, color_hex, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
				 ON CONFLICT ((lower(name))) DO NOTHING`,
				it.Name,
				it.Category,
				it.ProficiencyLevel,
				it.YearsExperience,
				it.Description,
				it.IconURL,
				it.ColorHex,
				now,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
