package services

// ServiceContainer bundles every service facade so handler registration can
// take a single value.
type ServiceContainer struct {
	DonationSvc      DonationSvcFacade
	MoneyDonationSvc MoneyDonationSvcFacade
	RequestSvc       RequestSvcFacade
	OrderSvc         OrderSvcFacade
	ShoeSvc          ShoeSvcFacade
	VolunteerSvc     VolunteerSvcFacade
	UserSvc          UserSvcFacade
	AuthSvc          AuthSvcFacade
	LookupSvc        LookupSvcFacade
}
