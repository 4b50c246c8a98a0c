package usecase

import (
	"context"
	"errors"

	"portfolio-backend/internal/domain/skill"
	"portfolio-backend/internal/repository"

	"github.com/charmbracelet/log"
)

var ErrNoSkillData = errors.New("no skills data found")

// SkillSource supplies the skill definitions used for bulk loading.
type SkillSource interface {
	LoadSkills(ctx context.Context) ([]skill.Skill, error)
}

type PopulateReport struct {
	Processed int
	Added     int
	Skipped   int
	Errored   int
}

type ResetReport struct {
	Cleared  int64
	Populate PopulateReport
}

type SkillPopulateUsecase interface {
	Populate(ctx context.Context) (PopulateReport, error)
	Clear(ctx context.Context) (int64, error)
	ResetAndPopulate(ctx context.Context) (ResetReport, error)
}

type SkillPopulate struct {
	skills *Skills
	source SkillSource
	logger *log.Logger
}

func NewSkillPopulateUsecase(skills *Skills, source SkillSource, logger *log.Logger) *SkillPopulate {
	if logger == nil {
		logger = log.Default()
	}
	return &SkillPopulate{skills: skills, source: source, logger: logger.WithPrefix("populate")}
}

// Populate creates every definition whose name is not stored yet. Items that
// fail validation or persistence are logged and counted; they never abort the
// run.
func (u *SkillPopulate) Populate(ctx context.Context) (PopulateReport, error) {
	defs, err := u.source.LoadSkills(ctx)
	if err != nil {
		return PopulateReport{}, err
	}
	if len(defs) == 0 {
		return PopulateReport{}, ErrNoSkillData
	}

	report := PopulateReport{Processed: len(defs)}
	for _, def := range defs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		exists, err := u.skills.SkillNameExists(ctx, def.Name)
		if err != nil {
			report.Errored++
			u.logger.Error("error processing skill", "name", def.Name, "err", err)
			continue
		}
		if exists {
			report.Skipped++
			continue
		}

		if _, err := u.skills.create(ctx, def); err != nil {
			if errors.Is(err, skill.ErrDuplicateName) {
				report.Skipped++
				continue
			}
			report.Errored++
			u.logger.Error("error processing skill", "name", def.Name, "err", err)
			continue
		}
		report.Added++
	}

	u.logger.Info("skills population completed",
		"processed", report.Processed,
		"added", report.Added,
		"skipped", report.Skipped,
		"errors", report.Errored,
	)
	if report.Added > 0 {
		u.skills.afterWrite(ctx, ActionPopulate, 0)
	}
	return report, nil
}

func (u *SkillPopulate) Clear(ctx context.Context) (int64, error) {
	var deleted int64
	err := u.skills.store.Write(ctx, func(r repository.SkillRepository) error {
		var err error
		deleted, err = r.DeleteAll(ctx)
		return err
	})
	if err != nil {
		return 0, skill.PersistenceError(err)
	}

	u.logger.Info("all skills cleared", "deleted", deleted)
	u.skills.afterWrite(ctx, ActionCleared, 0)
	return deleted, nil
}

func (u *SkillPopulate) ResetAndPopulate(ctx context.Context) (ResetReport, error) {
	cleared, err := u.Clear(ctx)
	if err != nil {
		return ResetReport{}, err
	}
	report, err := u.Populate(ctx)
	if err != nil {
		return ResetReport{Cleared: cleared}, err
	}
	return ResetReport{Cleared: cleared, Populate: report}, nil
}
