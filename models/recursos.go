package models

type Especialidad struct {
	ID          int64  `json:"id,omitempty"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Estado      string `json:"estado,omitempty"`
}

type Horario struct {
	ID         int64  `json:"id,omitempty"`
	DoctorID   int64  `json:"doctor_id"`
	DiaSemana  string `json:"dia_semana"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
	Estado     string `json:"estado,omitempty"`
}

type Cubiculo struct {
	ID           int64  `json:"id,omitempty"`
	Numero       string `json:"numero"`
	Nombre       string `json:"nombre"`
	Tipo         string `json:"tipo,omitempty"`
	Equipamiento string `json:"equipamiento,omitempty"`
	Estado       string `json:"estado,omitempty"`
	Capacidad    int    `json:"capacidad,omitempty"`
}

// EPS is a health insurance provider referenced by patient profiles.
type EPS struct {
	ID        int64  `json:"id,omitempty"`
	Nombre    string `json:"nombre"`
	Codigo    string `json:"codigo,omitempty"`
	NIT       string `json:"nit,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Estado    string `json:"estado,omitempty"`
}

type Rol struct {
	ID     int64  `json:"id,omitempty"`
	Nombre string `json:"nombre"`
}

// Usuario is the admin-managed account record (the backend User model, as
// opposed to the authenticated session's UserProfile).
type Usuario struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Rol      string `json:"rol,omitempty"`
}
