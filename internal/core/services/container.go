package services

import (
	portsrepo "github.com/newstepsproject/backend/internal/core/ports/repositories"
	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/pkg/config"
)

// NewServiceContainer wires every service over the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config, notifier portssvc.Notifier) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		DonationSvc:      NewDonationService(repos.DonationRepo, notifier),
		MoneyDonationSvc: NewMoneyDonationService(repos.MoneyDonationRepo, notifier),
		RequestSvc:       NewRequestService(repos.RequestRepo, repos.ShoeRepo, notifier),
		OrderSvc:         NewOrderService(repos.OrderRepo, repos.RequestRepo, repos.ShoeRepo),
		ShoeSvc:          NewShoeService(repos.ShoeRepo),
		VolunteerSvc:     NewVolunteerService(repos.VolunteerRepo),
		UserSvc:          NewUserService(repos.UserRepo),
		AuthSvc:          NewAuthService(cfg, repos.UserRepo),
		LookupSvc:        NewLookupService(repos),
	}
}
