package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"portfolio-backend/internal/domain/skill"
	"portfolio-backend/internal/repository"
)

var errReadOnly = errors.New("memory store: write in read-only transaction")

// SkillStore keeps skills in process memory. Writers are serialized and work
// on a private copy that replaces the live state only when fn succeeds, so a
// failed Write leaves no trace.
type SkillStore struct {
	mu     sync.RWMutex
	skills map[int64]skill.Skill
	nextID int64
}

var _ repository.SkillStore = (*SkillStore)(nil)

func NewSkillStore() *SkillStore {
	return &SkillStore{skills: make(map[int64]skill.Skill), nextID: 1}
}

func (s *SkillStore) Read(ctx context.Context, fn func(r repository.SkillRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&skillRepo{skills: s.skills, readOnly: true})
}

func (s *SkillStore) Write(ctx context.Context, fn func(r repository.SkillRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := &skillRepo{skills: make(map[int64]skill.Skill, len(s.skills)), nextID: s.nextID}
	for id, sk := range s.skills {
		work.skills[id] = sk
	}
	if err := fn(work); err != nil {
		return err
	}
	s.skills = work.skills
	s.nextID = work.nextID
	return nil
}

func (s *SkillStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

type skillRepo struct {
	skills   map[int64]skill.Skill
	nextID   int64
	readOnly bool
}

func (r *skillRepo) all() []skill.Skill {
	out := make([]skill.Skill, 0, len(r.skills))
	for _, sk := range r.skills {
		out = append(out, sk)
	}
	return out
}

func (r *skillRepo) Find(_ context.Context, q skill.Query) ([]skill.Skill, error) {
	return skill.Apply(r.all(), q), nil
}

func (r *skillRepo) FindByID(_ context.Context, id int64) (skill.Skill, error) {
	sk, ok := r.skills[id]
	if !ok {
		return skill.Skill{}, skill.ErrNotFound
	}
	return sk, nil
}

func (r *skillRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.skills[id]
	return ok, nil
}

func (r *skillRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	_, ok := r.idByName(name)
	return ok, nil
}

func (r *skillRepo) idByName(name string) (int64, bool) {
	for id, sk := range r.skills {
		if strings.EqualFold(sk.Name, name) {
			return id, true
		}
	}
	return 0, false
}

func (r *skillRepo) DistinctCategories(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, sk := range r.skills {
		if _, ok := seen[sk.Category]; ok {
			continue
		}
		seen[sk.Category] = struct{}{}
		out = append(out, sk.Category)
	}
	sort.Strings(out)
	return out, nil
}

func (r *skillRepo) CountByCategory(_ context.Context) ([]skill.CategoryCount, error) {
	counts := make(map[string]int64)
	for _, sk := range r.skills {
		counts[sk.Category]++
	}
	out := make([]skill.CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, skill.CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (r *skillRepo) Create(_ context.Context, sk skill.Skill) (skill.Skill, error) {
	if r.readOnly {
		return skill.Skill{}, errReadOnly
	}
	if _, taken := r.idByName(sk.Name); taken {
		return skill.Skill{}, skill.ErrDuplicateName
	}
	sk.ID = r.nextID
	r.nextID++
	r.skills[sk.ID] = sk
	return sk, nil
}

func (r *skillRepo) Update(_ context.Context, sk skill.Skill) (skill.Skill, error) {
	if r.readOnly {
		return skill.Skill{}, errReadOnly
	}
	existing, ok := r.skills[sk.ID]
	if !ok {
		return skill.Skill{}, skill.ErrNotFound
	}
	if id, taken := r.idByName(sk.Name); taken && id != sk.ID {
		return skill.Skill{}, skill.ErrDuplicateName
	}
	sk.CreatedAt = existing.CreatedAt
	r.skills[sk.ID] = sk
	return sk, nil
}

func (r *skillRepo) Delete(_ context.Context, id int64) error {
	if r.readOnly {
		return errReadOnly
	}
	if _, ok := r.skills[id]; !ok {
		return skill.ErrNotFound
	}
	delete(r.skills, id)
	return nil
}

func (r *skillRepo) DeleteAll(_ context.Context) (int64, error) {
	if r.readOnly {
		return 0, errReadOnly
	}
	n := int64(len(r.skills))
	for id := range r.skills {
		delete(r.skills, id)
	}
	return n, nil
}
