package bootstrap

import (
	"github.com/ferd-app/ferd-server/internal/config"
	"github.com/ferd-app/ferd-server/internal/infra/db"
	"github.com/ferd-app/ferd-server/internal/infra/logger"
	"github.com/ferd-app/ferd-server/internal/infra/storage"
	"github.com/ferd-app/ferd-server/internal/modules/handler"
	"github.com/ferd-app/ferd-server/internal/modules/model"
	"github.com/ferd-app/ferd-server/internal/modules/repo"
	"github.com/ferd-app/ferd-server/internal/modules/service"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if err := d.AutoMigrate(&model.Spot{}, &model.Review{}); err != nil {
			return nil, err
		}
		return d, nil
	})

	// upload store
	do.Provide(inj, func(i *do.Injector) (*storage.LocalStore, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.URLPrefix, cfg.Upload.AllowedExtensions)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.SpotRepo, error) {
		return repo.NewSpotRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ReviewRepo, error) {
		return repo.NewReviewRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.SpotService, error) {
		return service.NewSpotService(
			do.MustInvoke[repo.SpotRepo](i),
			do.MustInvoke[*storage.LocalStore](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ReviewService, error) {
		return service.NewReviewService(do.MustInvoke[repo.ReviewRepo](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.SpotHandler, error) {
		return handler.NewSpotHandler(do.MustInvoke[service.SpotService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ReviewHandler, error) {
		return handler.NewReviewHandler(do.MustInvoke[service.ReviewService](i)), nil
	})

	return inj
}
