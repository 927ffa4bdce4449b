package main

import (
	"log/slog"

	"github.com/taskwell/tasks-api/internal/config"
	"github.com/taskwell/tasks-api/internal/platform/memory"
	"github.com/taskwell/tasks-api/internal/store"
)

// Service identity reported by the health endpoint.
const (
	serviceName    = "tasks-api"
	serviceVersion = "1.0.0"
)

// application holds all application-scoped dependencies. It is constructed
// once at startup and passed by reference; there are no package-level
// singletons.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	taskStore store.TaskStore
}

// newApplication wires the application dependencies. The task store is the
// single in-memory instance shared by every connection.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	return &application{
		config:    cfg,
		logger:    logger,
		taskStore: memory.NewTaskStore(logger),
	}
}

// cleanup releases application resources on shutdown. The in-memory store
// holds nothing that outlives the process.
func (app *application) cleanup() {
	app.logger.Debug("application cleanup complete")
}
