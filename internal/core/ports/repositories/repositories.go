package repositories

// RepositoryProvider bundles every repository facade so wiring code can pass
// a single value around.
type RepositoryProvider struct {
	DonationRepo      DonationRepositoryFacade
	MoneyDonationRepo MoneyDonationRepositoryFacade
	RequestRepo       RequestRepositoryFacade
	OrderRepo         OrderRepositoryFacade
	ShoeRepo          ShoeRepositoryFacade
	VolunteerRepo     VolunteerRepositoryFacade
	UserRepo          UserRepositoryFacade
}
