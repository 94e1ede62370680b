package enums

const (
	CitaEstadoPendiente  = "pendiente"
	CitaEstadoConfirmada = "confirmada"
	CitaEstadoCancelada  = "cancelada"
	CitaEstadoCompletada = "completada"
)
