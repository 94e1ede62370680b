package enums

const (
	HorarioEstadoActivo   = "activo"
	HorarioEstadoInactivo = "inactivo"
)

const (
	DiaLunes     = "lunes"
	DiaMartes    = "martes"
	DiaMiercoles = "miercoles"
	DiaJueves    = "jueves"
	DiaViernes   = "viernes"
	DiaSabado    = "sabado"
	DiaDomingo   = "domingo"
)
