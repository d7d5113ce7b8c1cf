package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Pagination. Request lists use a fixed page size; it is not caller-configurable.
	DefaultPage     = 1
	RequestPageSize = 10

	// Context keys
	ContextKeyViewer    = "viewer"
	ContextKeyRequestID = "request_id"

	// Role names as stored by the identity subsystem
	RoleAdmin = "Admin"
	RoleUser  = "User"
	RoleGuest = "Guest"

	// Database table names
	TableRequests         = "requests"
	TableRequestResponses = "request_responses"
	TableAttachments      = "attachments"
	TableCategories       = "categories"
	TableTeams            = "teams"
	TableNotifications    = "notifications"
)
