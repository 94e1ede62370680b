package enums

type CubiculoEstado string

const (
	CubiculoEstadoDisponible    CubiculoEstado = "disponible"
	CubiculoEstadoOcupado       CubiculoEstado = "ocupado"
	CubiculoEstadoMantenimiento CubiculoEstado = "mantenimiento"
)

const (
	CubiculoTipoConsulta      = "consulta"
	CubiculoTipoProcedimiento = "procedimiento"
)

const (
	EPSEstadoActiva   = "activa"
	EPSEstadoInactiva = "inactiva"
)
