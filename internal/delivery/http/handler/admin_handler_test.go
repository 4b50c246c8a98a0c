package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/domain/skill"
	"portfolio-backend/internal/repository/memory"
	"portfolio-backend/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type staticSource struct {
	items []skill.Skill
	err   error
}

func (s staticSource) LoadSkills(context.Context) ([]skill.Skill, error) {
	return s.items, s.err
}

func newAdminTestApp(t *testing.T, src usecase.SkillSource) (*fiber.App, *usecase.Skills) {
	t.Helper()
	skills := usecase.NewSkillUsecase(memory.NewSkillStore(), nil, 0, nil, nil)
	populate := usecase.NewSkillPopulateUsecase(skills, src, nil)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewAdminHandler(populate).RegisterRoutes(app.Group("/api"))
	return app, skills
}

func TestAdminHandler_PopulateClearReset(t *testing.T) {
	app, skills := newAdminTestApp(t, staticSource{items: []skill.Skill{
		{Name: "Go", Category: "Backend"},
		{Name: "React", Category: "Frontend"},
		{Name: "", Category: "Broken"},
	}})
	seed(t, skills, skill.Skill{Name: "go", Category: "Backend"})

	status, env := doRequest(t, app, http.MethodPost, "/api/admin/populate-skills", "")
	if status != fiber.StatusOK || !env.Success {
		t.Fatalf("unexpected populate response: %d %+v", status, env)
	}
	pop := decodeData[struct {
		TotalProcessed    int `json:"totalProcessed"`
		SuccessfullyAdded int `json:"successfullyAdded"`
		Skipped           int `json:"skipped"`
		Errors            int `json:"errors"`
	}](t, env)
	if pop.TotalProcessed != 3 || pop.SuccessfullyAdded != 1 || pop.Skipped != 1 || pop.Errors != 1 {
		t.Fatalf("unexpected populate report: %+v", pop)
	}

	status, env = doRequest(t, app, http.MethodPost, "/api/admin/clear-skills", "")
	clr := decodeData[struct {
		DeletedCount int64 `json:"deletedCount"`
	}](t, env)
	if status != fiber.StatusOK || clr.DeletedCount != 2 {
		t.Fatalf("unexpected clear response: %d %+v", status, clr)
	}

	status, env = doRequest(t, app, http.MethodPost, "/api/admin/reset-and-populate", "")
	reset := decodeData[struct {
		Cleared struct {
			DeletedCount int64 `json:"deletedCount"`
		} `json:"clearResult"`
		Populate struct {
			SuccessfullyAdded int `json:"successfullyAdded"`
		} `json:"populateResult"`
	}](t, env)
	if status != fiber.StatusOK || reset.Cleared.DeletedCount != 0 || reset.Populate.SuccessfullyAdded != 2 {
		t.Fatalf("unexpected reset response: %d %+v", status, reset)
	}
}

func TestAdminHandler_PopulateFailures(t *testing.T) {
	app, _ := newAdminTestApp(t, staticSource{})
	status, env := doRequest(t, app, http.MethodPost, "/api/admin/populate-skills", "")
	if status != fiber.StatusBadRequest || env.Details != "No skills data found" {
		t.Fatalf("unexpected response: %d %+v", status, env)
	}

	app, _ = newAdminTestApp(t, staticSource{err: errors.New("open data/skills-data.json: no such file")})
	status, env = doRequest(t, app, http.MethodPost, "/api/admin/populate-skills", "")
	if status != fiber.StatusInternalServerError || env.Error != "Failed to populate skills" {
		t.Fatalf("unexpected response: %d %+v", status, env)
	}
}
