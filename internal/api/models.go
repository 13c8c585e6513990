package api

// LoginRequest defines the payload for the administrator login endpoint.
// Fields are not validated beyond decoding: missing credentials simply fail
// the store lookup and surface as 401, the same as wrong ones.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoggedAdminResponse defines the successful login response. It is a
// transient view, never persisted.
type LoggedAdminResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// CreateAdministratorRequest defines the payload for creating an
// administrator account. The role is constrained to the known enumeration
// here, at the DTO boundary; storage itself is free text.
type CreateAdministratorRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=Adm Editor"`
}

// AdministratorResponse is the administrator shape returned by read
// endpoints. It never carries the password.
type AdministratorResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// VehicleRequest defines the payload for vehicle create and update.
// It goes through the ordered-message validation routine rather than
// struct tags, because its error contract is the exact message list.
type VehicleRequest struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// ValidationErrorsResponse carries the ordered list of problems found in a
// vehicle payload.
type ValidationErrorsResponse struct {
	Messages []string `json:"messages"`
}

// HomeResponse is the landing payload served at the root path.
type HomeResponse struct {
	Message string `json:"message"`
}
