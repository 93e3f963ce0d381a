//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/clinch-dev/clinch/internal/adapters"
	"github.com/clinch-dev/clinch/internal/config"
	"github.com/clinch-dev/clinch/internal/logging"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewAddContract,
		usecase.NewListContracts,
		usecase.NewShowContract,
		usecase.NewUpdateContract,
		usecase.NewDeleteContract,
		usecase.NewIngestTranscript,
		usecase.NewSyncRegistry,
		usecase.NewInitProject,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
