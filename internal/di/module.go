package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/ordertrack/internal/app"
	"github.com/polkiloo/ordertrack/internal/config"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
	"github.com/polkiloo/ordertrack/internal/logger"
	"github.com/polkiloo/ordertrack/internal/pkg/auth"
	"github.com/polkiloo/ordertrack/internal/server/http/handlers"
	"github.com/polkiloo/ordertrack/internal/server/http/router"
	"github.com/polkiloo/ordertrack/internal/storage"
	"github.com/polkiloo/ordertrack/internal/usecase"
)

// CoreModule builds the facade and everything beneath it, without HTTP.
func CoreModule(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(s repository.Store) app.HealthChecker { return s }),
		app.FacadeModule,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// Module is CoreModule plus the HTTP server and its lifecycle.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		CoreModule(),
		auth.Module,
		fx.Provide(func(t *app.OrderTracker) handlers.TrackerFacade { return t }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
