package integration

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"portfolio-backend/internal/app"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/database/migration"
	dbpostgres "portfolio-backend/internal/database/postgres"
	"portfolio-backend/internal/domain/skill"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/internal/ws"
	"portfolio-backend/migrations"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

type skillItem struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	ProficiencyLevel *int   `json:"proficiencyLevel"`
	YearsExperience  *int   `json:"yearsExperience"`
}

type staticSource []skill.Skill

func (s staticSource) LoadSkills(ctx context.Context) ([]skill.Skill, error) {
	return s, nil
}

func TestIntegration_SkillsAPI_Postgres(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)
	truncateSkills(t, ctx, db)
	defer truncateSkills(t, context.Background(), db)

	f := newTestFiberApp(t, db, staticSource{
		{Name: "Go", Category: "Backend", ProficiencyLevel: intPtr(5), YearsExperience: intPtr(4)},
		{Name: "React", Category: "Frontend", ProficiencyLevel: intPtr(4), YearsExperience: intPtr(3)},
		{Name: "Figma", Category: "Design"},
	})

	status, env := do(t, f, http.MethodPost, "/api/admin/populate-skills", "")
	if status != fiber.StatusOK || !env.Success {
		t.Fatalf("populate: %d %+v", status, env)
	}

	status, env = do(t, f, http.MethodPost, "/api/skills",
		`{"name":"PostgreSQL","category":"database","proficiencyLevel":4,"yearsExperience":5}`)
	if status != fiber.StatusCreated {
		t.Fatalf("create: %d %+v", status, env)
	}
	created := decode[skillItem](t, env)

	status, env = do(t, f, http.MethodPost, "/api/skills", `{"name":"postgresql","category":"Database"}`)
	if status != fiber.StatusBadRequest || !strings.Contains(env.Details, "already exists") {
		t.Fatalf("duplicate: %d %+v", status, env)
	}

	_, env = do(t, f, http.MethodGet, "/api/skills/category/BACKEND", "")
	if env.Count != 1 || decode[[]skillItem](t, env)[0].Name != "Go" {
		t.Fatalf("category: %+v", env)
	}

	// Figma has no proficiency and must sort after every rated skill.
	_, env = do(t, f, http.MethodGet, "/api/skills/ordered", "")
	ordered := decode[[]skillItem](t, env)
	if len(ordered) != 4 || ordered[0].Name != "Go" || ordered[3].Name != "Figma" {
		t.Fatalf("ordered: %+v", ordered)
	}

	_, env = do(t, f, http.MethodGet, "/api/skills/top?limit=2", "")
	top := decode[[]skillItem](t, env)
	if len(top) != 2 || top[0].Name != "Go" || top[1].Name != "PostgreSQL" {
		t.Fatalf("top: %+v", top)
	}

	_, env = do(t, f, http.MethodGet, "/api/skills/search?name=gre", "")
	if env.Count != 1 {
		t.Fatalf("search: %+v", env)
	}
	_, env = do(t, f, http.MethodGet, "/api/skills/search?name=%25", "")
	if env.Count != 0 {
		t.Fatalf("search must treat %% literally: %+v", env)
	}

	status, env = do(t, f, http.MethodPut, "/api/skills/"+itoa(created.ID),
		`{"name":"PostgreSQL","category":"Database","proficiencyLevel":5}`)
	if status != fiber.StatusOK || decode[skillItem](t, env).YearsExperience != nil {
		t.Fatalf("update: %d %+v", status, env)
	}

	status, _ = do(t, f, http.MethodDelete, "/api/skills/"+itoa(created.ID), "")
	if status != fiber.StatusOK {
		t.Fatalf("delete: %d", status)
	}
	status, _ = do(t, f, http.MethodDelete, "/api/skills/"+itoa(created.ID), "")
	if status != fiber.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", status)
	}

	_, env = do(t, f, http.MethodGet, "/api/skills/stats", "")
	if env.Count != 3 {
		t.Fatalf("stats: %+v", env)
	}

	status, env = do(t, f, http.MethodGet, "/api/skills/health", "")
	if status != fiber.StatusOK || !strings.Contains(string(env.Data), `"database":true`) {
		t.Fatalf("health: %d %s", status, string(env.Data))
	}
}

func TestIntegration_WriteRollsBack_Postgres(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)
	truncateSkills(t, ctx, db)
	defer truncateSkills(t, context.Background(), db)

	store := repository.NewPostgresSkillStore(db)
	now := time.Now().UTC()
	err := store.Write(ctx, func(r repository.SkillRepository) error {
		if _, err := r.Create(ctx, skill.Skill{Name: "Rust", Category: "Backend", CreatedAt: now, UpdatedAt: now}); err != nil {
			return err
		}
		_, err := r.Create(ctx, skill.Skill{Name: "RUST", Category: "Backend", CreatedAt: now, UpdatedAt: now})
		return err
	})
	if !errors.Is(err, skill.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	var exists bool
	_ = store.Read(ctx, func(r repository.SkillRepository) error {
		var err error
		exists, err = r.ExistsByName(ctx, "rust")
		return err
	})
	if exists {
		t.Fatalf("failed write must not leave rows behind")
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	// no fallback to DB_*: these tests wipe the skills table
	host := os.Getenv("PORTFOLIO_TEST_DB_HOST")
	port := os.Getenv("PORTFOLIO_TEST_DB_PORT")
	name := os.Getenv("PORTFOLIO_TEST_DB_NAME")
	user := os.Getenv("PORTFOLIO_TEST_DB_USER")
	pass := os.Getenv("PORTFOLIO_TEST_DB_PASSWORD")
	ssl := os.Getenv("PORTFOLIO_TEST_DB_SSL_MODE")

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set PORTFOLIO_TEST_DB_HOST/PORT/NAME/USER/PASSWORD")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()
	r := migration.Runner{FS: migrations.FS}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func truncateSkills(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()
	if _, err := db.Exec(ctx, `TRUNCATE skills RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate skills: %v", err)
	}
}

func newTestFiberApp(t *testing.T, db database.DB, source usecase.SkillSource) *fiber.App {
	t.Helper()

	cfg := config.Config{App: config.AppConfig{AppName: "portfolio-test", CORSAllowOrigins: []string{"http://localhost:3000"}}}
	logger := log.New(io.Discard)

	hub := ws.NewHub(logger)
	store := repository.NewPostgresSkillStore(db)
	skills := usecase.NewSkillUsecase(store, nil, 0, ws.NewNotifier(hub), logger)

	c := &app.Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Store:    store,
		Hub:      hub,
		Skills:   skills,
		Populate: usecase.NewSkillPopulateUsecase(skills, source, logger),
		Health:   usecase.NewHealthUsecase(cfg.App.AppName, store, nil),
	}
	return app.New(cfg, c).Fiber
}

func do(t *testing.T, f *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := f.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode %s %s: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v (%s)", err, string(env.Data))
	}
	return out
}

func intPtr(v int) *int { return &v }

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
