package app

import (
	"log/slog"

	"github.com/clinch-dev/clinch/internal/domain/config"
	"github.com/clinch-dev/clinch/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Shared dependencies
	Selector usecase.InteractiveSelector
	Progress usecase.ProgressSink

	// Use cases
	AddContract    *usecase.AddContract
	ListContracts  *usecase.ListContracts
	ShowContract   *usecase.ShowContract
	UpdateContract *usecase.UpdateContract
	DeleteContract *usecase.DeleteContract
	SyncRegistry   *usecase.SyncRegistry
	InitProject    *usecase.InitProject
	ListNetworks   *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	selector usecase.InteractiveSelector,
	progress usecase.ProgressSink,
	addContract *usecase.AddContract,
	listContracts *usecase.ListContracts,
	showContract *usecase.ShowContract,
	updateContract *usecase.UpdateContract,
	deleteContract *usecase.DeleteContract,
	syncRegistry *usecase.SyncRegistry,
	initProject *usecase.InitProject,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:         cfg,
		Logger:         logger,
		Selector:       selector,
		Progress:       progress,
		AddContract:    addContract,
		ListContracts:  listContracts,
		ShowContract:   showContract,
		UpdateContract: updateContract,
		DeleteContract: deleteContract,
		SyncRegistry:   syncRegistry,
		InitProject:    initProject,
		ListNetworks:   listNetworks,
	}, nil
}
