package enums

const (
	CitaResource         = "cita"
	DoctorResource       = "doctor"
	EspecialidadResource = "especialidad"
	HorarioResource      = "horario"
	CubiculoResource     = "cubiculo"
	EPSResource          = "eps"
	RolResource          = "rol"
	UsuarioResource      = "usuario"
)
