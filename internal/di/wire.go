//go:build wireinject
// +build wireinject

package di

import (
	"DartWatch/pkg/config"
	"DartWatch/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Pipeline collaborators
		ProvideDisclosureSource,
		ProvideExtractor,
		ProvideNotifier,
		ProvideProcessedStore,
		ProvideEventArchive,

		// Orchestration
		ProvideMonitor,
		ProvideApp,
	)
	return &server.App{}, nil
}
