package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio-backend/internal/domain/skill"
	"portfolio-backend/internal/repository"

	"github.com/charmbracelet/log"
)

const (
	DefaultMinProficiency = 1
	DefaultTopLimit       = 10
)

// Actions reported to a SkillsNotifier.
const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
	ActionPopulate = "populated"
	ActionCleared  = "cleared"
)

type SkillsNotifier interface {
	NotifySkillsUpdated(action string, skillID int64)
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
	GetSkill(ctx context.Context, id int64) (skill.Skill, bool, error)
	ListByCategory(ctx context.Context, category string) ([]skill.Skill, error)
	ListForBubbles(ctx context.Context, minProficiency *int) ([]skill.Skill, error)
	ListOrdered(ctx context.Context) ([]skill.Skill, error)
	ListCategories(ctx context.Context) ([]string, error)
	TopSkills(ctx context.Context, limit int) ([]skill.Skill, error)
	SearchSkills(ctx context.Context, term string) ([]skill.Skill, error)
	CategoryStats(ctx context.Context) ([]skill.CategoryCount, error)

	CreateSkill(ctx context.Context, in skill.Skill) (skill.Skill, error)
	UpdateSkill(ctx context.Context, id int64, in skill.Skill) (skill.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
	SkillExists(ctx context.Context, id int64) (bool, error)
	SkillNameExists(ctx context.Context, name string) (bool, error)
}

type Skills struct {
	store    repository.SkillStore
	cache    SkillCache
	cacheTTL time.Duration
	notifier SkillsNotifier
	logger   *log.Logger
	now      func() time.Time
}

// NewSkillUsecase builds the skill service. cache and notifier may be nil.
func NewSkillUsecase(store repository.SkillStore, cache SkillCache, cacheTTL time.Duration, notifier SkillsNotifier, logger *log.Logger) *Skills {
	if logger == nil {
		logger = log.Default()
	}
	return &Skills{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (u *Skills) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	return u.find(ctx, skillsListKey(), skill.All())
}

// GetSkill reports a missing record through found=false, not an error.
func (u *Skills) GetSkill(ctx context.Context, id int64) (skill.Skill, bool, error) {
	var out skill.Skill
	found := true
	err := u.store.Read(ctx, func(r repository.SkillRepository) error {
		s, err := r.FindByID(ctx, id)
		if errors.Is(err, skill.ErrNotFound) {
			found = false
			return nil
		}
		out = s
		return err
	})
	if err != nil {
		return skill.Skill{}, false, skill.PersistenceError(err)
	}
	return out, found, nil
}

func (u *Skills) ListByCategory(ctx context.Context, category string) ([]skill.Skill, error) {
	return u.find(ctx, skillsCategoryKey(category), skill.ByCategory(category))
}

func (u *Skills) ListForBubbles(ctx context.Context, minProficiency *int) ([]skill.Skill, error) {
	minProf := DefaultMinProficiency
	if minProficiency != nil {
		minProf = *minProficiency
	}
	return u.find(ctx, skillsBubblesKey(minProf), skill.ForBubbles(minProf))
}

func (u *Skills) ListOrdered(ctx context.Context) ([]skill.Skill, error) {
	return u.find(ctx, skillsOrderedKey(), skill.OrderedByProficiency())
}

func (u *Skills) ListCategories(ctx context.Context) ([]string, error) {
	return cachedRead(ctx, u, skillsCategoriesKey(), func(r repository.SkillRepository) ([]string, error) {
		return r.DistinctCategories(ctx)
	})
}

// TopSkills returns at most limit records; a non-positive limit means
// DefaultTopLimit.
func (u *Skills) TopSkills(ctx context.Context, limit int) ([]skill.Skill, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	return u.find(ctx, skillsTopKey(limit), skill.Top(limit))
}

// SearchSkills matches a case-insensitive substring of the name. A blank
// term lists everything.
func (u *Skills) SearchSkills(ctx context.Context, term string) ([]skill.Skill, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return u.ListSkills(ctx)
	}
	return u.find(ctx, skillsSearchKey(term), skill.NameContains(term))
}

func (u *Skills) CategoryStats(ctx context.Context) ([]skill.CategoryCount, error) {
	return cachedRead(ctx, u, skillsStatsKey(), func(r repository.SkillRepository) ([]skill.CategoryCount, error) {
		return r.CountByCategory(ctx)
	})
}

func (u *Skills) CreateSkill(ctx context.Context, in skill.Skill) (skill.Skill, error) {
	created, err := u.create(ctx, in)
	if err != nil {
		return skill.Skill{}, err
	}
	u.afterWrite(ctx, ActionCreated, created.ID)
	return created, nil
}

func (u *Skills) create(ctx context.Context, in skill.Skill) (skill.Skill, error) {
	if err := skill.Validate(in); err != nil {
		return skill.Skill{}, err
	}

	now := u.timestamp()
	candidate := skill.Skill{CreatedAt: now, UpdatedAt: now}
	candidate.ApplyFields(in)

	var created skill.Skill
	err := u.store.Write(ctx, func(r repository.SkillRepository) error {
		taken, err := r.ExistsByName(ctx, candidate.Name)
		if err != nil {
			return err
		}
		if taken {
			return skill.ErrDuplicateName
		}
		created, err = r.Create(ctx, candidate)
		return err
	})
	if err != nil {
		if errors.Is(err, skill.ErrDuplicateName) {
			return skill.Skill{}, skill.DuplicateNameError(candidate.Name)
		}
		return skill.Skill{}, skill.PersistenceError(err)
	}
	return created, nil
}

// UpdateSkill replaces every mutable field of the record with id. The id and
// creation time are kept; the update time is refreshed.
func (u *Skills) UpdateSkill(ctx context.Context, id int64, in skill.Skill) (skill.Skill, error) {
	var updated skill.Skill
	err := u.store.Write(ctx, func(r repository.SkillRepository) error {
		existing, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := skill.Validate(in); err != nil {
			return err
		}
		existing.ApplyFields(in)
		existing.UpdatedAt = u.timestamp()
		updated, err = r.Update(ctx, existing)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, skill.ErrValidation):
			return skill.Skill{}, err
		case errors.Is(err, skill.ErrNotFound):
			return skill.Skill{}, skill.NotFoundError(id)
		case errors.Is(err, skill.ErrDuplicateName):
			return skill.Skill{}, skill.DuplicateNameError(in.Name)
		default:
			return skill.Skill{}, skill.PersistenceError(err)
		}
	}
	u.afterWrite(ctx, ActionUpdated, updated.ID)
	return updated, nil
}

func (u *Skills) DeleteSkill(ctx context.Context, id int64) error {
	err := u.store.Write(ctx, func(r repository.SkillRepository) error {
		return r.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, skill.ErrNotFound) {
			return skill.NotFoundError(id)
		}
		return skill.PersistenceError(err)
	}
	u.afterWrite(ctx, ActionDeleted, id)
	return nil
}

func (u *Skills) SkillExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := u.store.Read(ctx, func(r repository.SkillRepository) error {
		var err error
		exists, err = r.ExistsByID(ctx, id)
		return err
	})
	if err != nil {
		return false, skill.PersistenceError(err)
	}
	return exists, nil
}

func (u *Skills) SkillNameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := u.store.Read(ctx, func(r repository.SkillRepository) error {
		var err error
		exists, err = r.ExistsByName(ctx, name)
		return err
	})
	if err != nil {
		return false, skill.PersistenceError(err)
	}
	return exists, nil
}

func (u *Skills) find(ctx context.Context, key string, q skill.Query) ([]skill.Skill, error) {
	return cachedRead(ctx, u, key, func(r repository.SkillRepository) ([]skill.Skill, error) {
		return r.Find(ctx, q)
	})
}

// cachedRead serves key from the cache when possible and otherwise loads it
// in a read-only transaction. Cache failures are logged and ignored.
func cachedRead[T any](ctx context.Context, u *Skills, key string, load func(r repository.SkillRepository) (T, error)) (T, error) {
	var out T
	if u.cache != nil {
		hit, err := u.cache.GetJSON(ctx, key, &out)
		if err != nil {
			u.logger.Debug("cache read failed", "key", key, "err", err)
		}
		if hit {
			return out, nil
		}
	}

	err := u.store.Read(ctx, func(r repository.SkillRepository) error {
		var err error
		out, err = load(r)
		return err
	})
	if err != nil {
		var zero T
		return zero, skill.PersistenceError(err)
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, u.cacheTTL); err != nil {
			u.logger.Debug("cache write failed", "key", key, "err", err)
		}
	}
	return out, nil
}

func (u *Skills) afterWrite(ctx context.Context, action string, id int64) {
	u.invalidate(ctx)
	if u.notifier != nil {
		u.notifier.NotifySkillsUpdated(action, id)
	}
}

func (u *Skills) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, skillsCachePattern); err != nil {
		u.logger.Warn("cache invalidation failed", "pattern", skillsCachePattern, "err", err)
	}
}

// timestamp is truncated to the store's microsecond precision so values read
// back compare equal to the ones returned from a write.
func (u *Skills) timestamp() time.Time {
	return u.now().UTC().Truncate(time.Microsecond)
}
