package service

import (
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	logger.Info().Msg("creating services...")

	return &Services{
		UserService:    NewUserValidationService().Wrap(NewUserService(storages.UserStore, logger)),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
