package di

import (
	"github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/router"
)

type Application struct {
	Router  *router.Router
	Service *service.AppService
}

func NewApplication(r *router.Router, s *service.AppService) *Application {
	return &Application{
		Router:  r,
		Service: s,
	}
}
