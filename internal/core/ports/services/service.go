package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Price     PriceSvcFacade
	Delivery  DeliverySvcFacade
	Reporting ReportingSvc
	Export    ExportSvc
	Reference ReferenceSvcFacade
	User      UserSvcFacade
	Auth      AuthSvc
}
