package memory

import (
	"context"
	"errors"
	"testing"

	"portfolio-backend/internal/domain/skill"
	"portfolio-backend/internal/repository"
)

func create(t *testing.T, s *SkillStore, name, category string) skill.Skill {
	t.Helper()
	var out skill.Skill
	err := s.Write(context.Background(), func(r repository.SkillRepository) error {
		var err error
		out, err = r.Create(context.Background(), skill.Skill{Name: name, Category: category})
		return err
	})
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	return out
}

func TestSkillStore_AssignsIncreasingIDs(t *testing.T) {
	s := NewSkillStore()
	a := create(t, s, "Go", "Backend")
	b := create(t, s, "React", "Frontend")
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", a.ID, b.ID)
	}
}

func TestSkillStore_DuplicateNameIgnoresCase(t *testing.T) {
	s := NewSkillStore()
	create(t, s, "Go", "Backend")

	err := s.Write(context.Background(), func(r repository.SkillRepository) error {
		_, err := r.Create(context.Background(), skill.Skill{Name: "gO", Category: "Backend"})
		return err
	})
	if !errors.Is(err, skill.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestSkillStore_FailedWriteRollsBack(t *testing.T) {
	s := NewSkillStore()
	create(t, s, "Go", "Backend")

	boom := errors.New("boom")
	err := s.Write(context.Background(), func(r repository.SkillRepository) error {
		if _, err := r.Create(context.Background(), skill.Skill{Name: "Rust", Category: "Backend"}); err != nil {
			return err
		}
		if _, err := r.DeleteAll(context.Background()); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	_ = s.Read(context.Background(), func(r repository.SkillRepository) error {
		all, _ := r.Find(context.Background(), skill.All())
		if len(all) != 1 || all[0].Name != "Go" {
			t.Fatalf("expected only Go after rollback, got %+v", all)
		}
		return nil
	})

	// ids consumed by a rolled back write are reused
	next := create(t, s, "Python", "Backend")
	if next.ID != 2 {
		t.Fatalf("expected id 2, got %d", next.ID)
	}
}

func TestSkillStore_ReadIsReadOnly(t *testing.T) {
	s := NewSkillStore()
	err := s.Read(context.Background(), func(r repository.SkillRepository) error {
		_, err := r.Create(context.Background(), skill.Skill{Name: "Go", Category: "Backend"})
		return err
	})
	if !errors.Is(err, errReadOnly) {
		t.Fatalf("expected errReadOnly, got %v", err)
	}
}

func TestSkillStore_UpdateKeepsCreatedAtAndChecksName(t *testing.T) {
	s := NewSkillStore()
	goSkill := create(t, s, "Go", "Backend")
	create(t, s, "Rust", "Backend")

	err := s.Write(context.Background(), func(r repository.SkillRepository) error {
		_, err := r.Update(context.Background(), skill.Skill{ID: goSkill.ID, Name: "rust", Category: "Backend"})
		return err
	})
	if !errors.Is(err, skill.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	err = s.Write(context.Background(), func(r repository.SkillRepository) error {
		_, err := r.Update(context.Background(), skill.Skill{ID: 99, Name: "X", Category: "Y"})
		return err
	})
	if !errors.Is(err, skill.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	err = s.Write(context.Background(), func(r repository.SkillRepository) error {
		_, err := r.Update(context.Background(), skill.Skill{ID: goSkill.ID, Name: "GO", Category: "Languages"})
		return err
	})
	if err != nil {
		t.Fatalf("renaming to own name with different case: %v", err)
	}
}

func TestSkillStore_CategoriesAndCounts(t *testing.T) {
	s := NewSkillStore()
	create(t, s, "Go", "Backend")
	create(t, s, "React", "Frontend")
	create(t, s, "Rust", "Backend")

	_ = s.Read(context.Background(), func(r repository.SkillRepository) error {
		cats, _ := r.DistinctCategories(context.Background())
		if len(cats) != 2 || cats[0] != "Backend" || cats[1] != "Frontend" {
			t.Fatalf("unexpected categories: %v", cats)
		}
		counts, _ := r.CountByCategory(context.Background())
		if len(counts) != 2 || counts[0].Count != 2 || counts[1].Count != 1 {
			t.Fatalf("unexpected counts: %+v", counts)
		}
		return nil
	})
}
