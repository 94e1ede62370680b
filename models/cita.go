package models

import (
	"time"

	"github.com/JC2405/medicitas-client/utils"
)

// Cita is a booked consultation slot linking a patient, a doctor and,
// optionally, a consultation room.
type Cita struct {
	ID            int64  `json:"id,omitempty"`
	PacienteID    int64  `json:"paciente_id"`
	DoctorID      int64  `json:"doctor_id"`
	CubiculoID    int64  `json:"cubiculo_id,omitempty"`
	FechaHora     string `json:"fecha_hora"`
	Estado        string `json:"estado"`
	Observaciones string `json:"observaciones,omitempty"`
}

// FechaHoraTime parses the appointment's wire-format timestamp.
func (c Cita) FechaHoraTime() (time.Time, error) {
	return utils.ParseFechaHora(c.FechaHora)
}
