package handler

import "github.com/Thamidu-Peiris/CRIPS-sub002/internal/auth/service"

// Handlers auth context endpoint set
type Handlers struct {
	Auth        *AuthHandler
	Application *ApplicationHandler
}

func NewHandlers(svcAuth *service.AuthService, svcApplication *service.ApplicationService) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(svcAuth),
		Application: NewApplicationHandler(svcApplication),
	}
}
