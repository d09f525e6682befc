package http

import (
	"go.uber.org/fx"

	"github.com/yourusername/telegram-media-vault/internal/domain/media/workers"
)

// Module provides the HTTP server for fx dependency injection
var Module = fx.Module("http",
	fx.Provide(provideDispatcher),
	fx.Provide(NewServer),
	fx.Invoke(registerServerLifecycle),
)

// provideDispatcher exposes the worker pool as the webhook dispatcher
func provideDispatcher(pool *workers.Pool) Dispatcher {
	return pool
}

// registerServerLifecycle starts and stops the server with the application
func registerServerLifecycle(lc fx.Lifecycle, server *Server) {
	lc.Append(fx.Hook{
		OnStart: server.Start,
		OnStop:  server.Stop,
	})
}
