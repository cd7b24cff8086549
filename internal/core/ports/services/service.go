package services

// ServiceContainer holds instances of all the application services. It is the
// entry point handlers use to reach functionality.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	Registration RegistrationSvcFacade
	User         UserSvcFacade
	Patient      PatientSvcFacade
	ClinicVisit  ClinicVisitSvcFacade
	Admission    WardAdmissionSvcFacade
	Surgery      SurgerySvcFacade
	Emergency    EmergencySvcFacade
	MedicalFile  MedicalFileSvcFacade
	Statistics   StatisticsSvcFacade
}
