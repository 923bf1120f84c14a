package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jotdeck/jotdeck/internal/app"
	"github.com/jotdeck/jotdeck/internal/cli/styles"
	"github.com/jotdeck/jotdeck/internal/config"
	"github.com/jotdeck/jotdeck/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	db     *sql.DB
	ctx    context.Context
}

// NewCLI initializes the CLI with config and database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := database.NewRepository(db)
	application := app.New(repo, cfg)

	return &CLI{
		App:    application,
		Config: cfg,
		db:     db,
		ctx:    ctx,
	}, nil
}

// Close cleans up CLI resources. A nil db means the app was injected by a
// test harness and the test owns its lifetime.
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	if err := c.App.Close(); err != nil {
		return err
	}
	return c.db.Close()
}
