//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"github.com/newsdesk/newsdesk-api/handlers"
	"github.com/newsdesk/newsdesk-api/internal/app"
	"github.com/newsdesk/newsdesk-api/internal/config"
	"github.com/newsdesk/newsdesk-api/internal/document/repository"
	"github.com/newsdesk/newsdesk-api/internal/document/service"
	"github.com/newsdesk/newsdesk-api/internal/storage"
	"github.com/newsdesk/newsdesk-api/internal/users"
)

func InitApp(cfg *config.Config) (*app.App, func(), error) {

	wire.Build(
		repository.NewFromConfig,
		service.New,
		app.ProvideActivityLog,
		storage.NewUploader,
		wire.Bind(new(storage.Uploader), new(*storage.Gateway)),
		app.ProvideIngester,
		users.NewService,
		app.ProvideContentHandler,
		app.ProvideUserHandler,
		handlers.NewAuthHandler,
		app.ProvideHealthHandler,
		app.ProvideRegistry,
		app.ProvideRedisClient,
		app.NewRouter,
		app.NewApp,
	)

	return nil, nil, nil
}
