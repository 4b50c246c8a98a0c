package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/database/migration"
	dbpostgres "portfolio-backend/internal/database/postgres"
	"portfolio-backend/internal/database/seeder"
	"portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/skilldata"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/repository/memory"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/internal/ws"
	"portfolio-backend/migrations"

	"github.com/charmbracelet/log"
)

// Container owns every long-lived dependency of the process.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Store repository.SkillStore
	Cache *cache.Redis
	Hub   *ws.Hub

	Skills   *usecase.Skills
	Populate *usecase.SkillPopulate
	Health   *usecase.Health

	stopHub context.CancelFunc
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}
	c := &Container{Config: cfg, Logger: logger}

	if err := c.openStore(); err != nil {
		return nil, err
	}

	var skillCache usecase.SkillCache
	var cachePing usecase.Pinger
	if cfg.Cache.Enabled {
		c.Cache = cache.NewRedis(cfg.Cache, logger.WithPrefix("cache"))
		skillCache = c.Cache
		cachePing = c.Cache
	}

	c.Hub = ws.NewHub(logger.WithPrefix("ws"))
	hubCtx, stop := context.WithCancel(context.Background())
	c.stopHub = stop
	go c.Hub.Run(hubCtx)

	source := skilldata.NewFile(cfg.Populate.DataFile)
	c.Skills = usecase.NewSkillUsecase(c.Store, skillCache, cfg.Cache.TTL, ws.NewNotifier(c.Hub), logger.WithPrefix("skills"))
	c.Populate = usecase.NewSkillPopulateUsecase(c.Skills, source, logger)
	c.Health = usecase.NewHealthUsecase(cfg.App.AppName, c.Store, cachePing)

	return c, nil
}

func (c *Container) openStore() error {
	switch c.Config.Database.Driver {
	case config.DriverMemory:
		c.Logger.Warn("using in-memory skill store; data is lost on exit")
		c.Store = memory.NewSkillStore()
		return nil

	case config.DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, c.Config.Database)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		c.DB = db
		c.Store = repository.NewPostgresSkillStore(db)

		if err := c.prepareSchema(ctx); err != nil {
			_ = db.Close()
			return err
		}
		return nil

	default:
		return fmt.Errorf("unsupported database driver %q", c.Config.Database.Driver)
	}
}

func (c *Container) prepareSchema(ctx context.Context) error {
	if c.Config.Database.RunMigrations {
		runner := migration.Runner{FS: migrationsFS(c.Config.Database.MigrationsDir), Logger: c.Logger.WithPrefix("migrate")}
		if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}
	if c.Config.Database.RunSeeders {
		source := skilldata.NewFile(c.Config.Populate.DataFile)
		runner := seeder.Runner{Seeders: seeder.Defaults(source), Logger: c.Logger.WithPrefix("seed")}
		if err := runner.Run(ctx, c.DB); err != nil {
			return fmt.Errorf("run seeders: %w", err)
		}
	}
	return nil
}

// migrationsFS prefers an explicit directory so schema files can be edited
// without a rebuild.
func migrationsFS(dir string) fs.FS {
	if strings.TrimSpace(dir) != "" {
		return os.DirFS(dir)
	}
	return migrations.FS
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
