package cli

import (
	"context"

	"github.com/jotdeck/jotdeck/internal/app"
	"github.com/jotdeck/jotdeck/internal/cli/styles"
	"github.com/jotdeck/jotdeck/internal/config"
	"github.com/jotdeck/jotdeck/internal/testutil"
)

// GetCLIFromContext returns a CLI bound to the app carried in the context, if
// one was injected by a test harness, and falls back to a full NewCLI
// otherwise. Test-injected apps own their database, so Close becomes a no-op.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && testApp != nil {
		cfg := config.Default()
		styles.Init(cfg.ColorScheme)
		return &CLI{
			App:    testApp,
			Config: cfg,
			ctx:    ctx,
		}, nil
	}
	return NewCLI(ctx)
}
