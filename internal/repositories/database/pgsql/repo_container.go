package pgsql

import (
	portsrepo "github.com/newstepsproject/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every pgx-backed repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DonationRepo:      newPgxDonationRepository(dbPool),
		MoneyDonationRepo: newPgxMoneyDonationRepository(dbPool),
		RequestRepo:       newPgxRequestRepository(dbPool),
		OrderRepo:         newPgxOrderRepository(dbPool),
		ShoeRepo:          newPgxShoeRepository(dbPool),
		VolunteerRepo:     newPgxVolunteerRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
	}
}
