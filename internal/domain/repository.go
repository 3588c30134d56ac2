package domain

// Repositories 进程启动时构造一次，注入到 service / transport
type Repositories struct {
	Users      UserRepository
	Payments   PaymentRepository
	Facilities FacilityRepository
}
