package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/easyvector/internal/core/observability/log"
	"github.com/zeusync/easyvector/internal/runner"
)

// App holds what the CLI needs: the runner and the logger to flush on exit.
type App struct {
	Runner *runner.Runner
	Logger *log.Logger
}

// ProviderSet builds a runner on top of the zap-backed logger.
var ProviderSet = wire.NewSet(
	log.New,
	wire.Bind(new(log.Log), new(*log.Logger)),
	runner.New,
	wire.Struct(new(App), "*"),
)
