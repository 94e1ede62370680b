package enums

// Role is the routing category derived from a user profile. It is always
// recomputed by the resolver, never persisted.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "paciente"
)

// Guard values the backend uses to tag the authentication realm a user
// belongs to.
const (
	GuardAdmin    = "api_admin"
	GuardDoctores = "api_doctores"
	GuardUsuarios = "api_usuarios"
)

// User types returned under the user_type field.
const (
	UserTypeAdmin    = "admin"
	UserTypeDoctor   = "doctor"
	UserTypePaciente = "paciente"
)
