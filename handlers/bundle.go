package handlers

import (
	professionalRepoPkg "carelink/database/repository/professional"
	userRepoPkg "carelink/database/repository/user"
)

// HandlerBundle groups the endpoint handlers and the repos middleware needs.
type HandlerBundle struct {
	UserRepo         userRepoPkg.UserRepository
	ProfessionalRepo professionalRepoPkg.ProfessionalRepository

	User         *UserHandler
	Professional *ProfessionalHandler
	Appointment  *AppointmentHandler
	Organization *OrganizationHandler
	Post         *PostHandler
	Storage      *StorageHandler
}
