//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/easyvector/internal/core/observability/log"
)

func InitializeApp(level log.Level) (*App, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
