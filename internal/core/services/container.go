package services

import (
	"github.com/rah7202/Dino-Wallet-Service/internal/core/ports/repositories"
	portssvc "github.com/rah7202/Dino-Wallet-Service/internal/core/ports/services"
)

// walletService composes the TransferEngine and ReadService into the
// single facade the transport layer depends on.
type walletService struct {
	*TransferEngine
	*ReadService
}

// NewServiceContainer creates a new service container with properly
// initialized dependencies over the given repository collaborators.
func NewServiceContainer(repos repositories.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transfer: &walletService{
			TransferEngine: NewTransferEngine(repos),
			ReadService:    NewReadService(repos),
		},
	}
}

var _ portssvc.TransferSvcFacade = (*walletService)(nil)
