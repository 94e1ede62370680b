package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/JC2405/medicitas-client/client"
	"github.com/JC2405/medicitas-client/enums"
	"github.com/JC2405/medicitas-client/models"
	"github.com/JC2405/medicitas-client/utils"
)

// PacienteService covers the patient-facing endpoints: own appointments,
// booking, and the lookups the booking flow needs.
type PacienteService struct {
	api      *client.Client
	validate *validator.Validate
}

func (s *PacienteService) MisCitas(ctx context.Context, pacienteID int64) ([]models.Cita, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/citasPorPaciente/%d", pacienteID))
	if err != nil {
		return nil, err
	}
	var citas []models.Cita
	if err := decodeWrapped(resp, "Error al obtener las citas", &citas, "citas", "data"); err != nil {
		return nil, err
	}
	return citas, nil
}

type CrearCitaRequest struct {
	PacienteID    int64  `json:"paciente_id" validate:"required"`
	DoctorID      int64  `json:"doctor_id" validate:"required"`
	CubiculoID    int64  `json:"cubiculo_id,omitempty"`
	FechaHora     string `json:"fecha_hora" validate:"required"`
	Estado        string `json:"estado" validate:"required,oneof=pendiente confirmada cancelada completada"`
	Observaciones string `json:"observaciones,omitempty"`
}

// NuevaCita builds a booking request for a slot, formatting the timestamp in
// the wire layout the backend expects. New bookings start pending.
func NuevaCita(pacienteID, doctorID int64, fechaHora time.Time) CrearCitaRequest {
	return CrearCitaRequest{
		PacienteID: pacienteID,
		DoctorID:   doctorID,
		FechaHora:  utils.FormatFechaHora(fechaHora),
		Estado:     enums.CitaEstadoPendiente,
	}
}

func (s *PacienteService) CrearCita(ctx context.Context, req CrearCitaRequest) (*models.Cita, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, client.ValidationError("Datos de la cita inválidos", err)
	}

	resp, err := s.api.Post(ctx, "/crearCita", req)
	if err != nil {
		return nil, err
	}
	var cita models.Cita
	if err := decodeWrapped(resp, "Error al crear la cita", &cita, "cita", "data"); err != nil {
		return nil, err
	}
	return &cita, nil
}

func (s *PacienteService) CambiarEstadoCita(ctx context.Context, citaID int64, estado string) error {
	resp, err := s.api.Patch(ctx, fmt.Sprintf("/cambiarEstadoCita/%d", citaID), map[string]string{"estado": estado})
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al cambiar el estado de la cita", nil)
}

func (s *PacienteService) Cita(ctx context.Context, citaID int64) (*models.Cita, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/cita/%d", citaID))
	if err != nil {
		return nil, err
	}
	var cita models.Cita
	if err := decodeWrapped(resp, "Error al obtener la cita", &cita, "cita", "data"); err != nil {
		return nil, err
	}
	return &cita, nil
}

func (s *PacienteService) Doctor(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/doctor/%d", doctorID))
	if err != nil {
		return nil, err
	}
	var doctor models.Doctor
	if err := decodeWrapped(resp, "Error al obtener el doctor", &doctor, "doctor", "data"); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (s *PacienteService) Especialidad(ctx context.Context, especialidadID int64) (*models.Especialidad, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/especialidad/%d", especialidadID))
	if err != nil {
		return nil, err
	}
	var esp models.Especialidad
	if err := decodeWrapped(resp, "Error al obtener la especialidad", &esp, "especialidad", "data"); err != nil {
		return nil, err
	}
	return &esp, nil
}

func (s *PacienteService) Especialidades(ctx context.Context) ([]models.Especialidad, error) {
	resp, err := s.api.Get(ctx, "/listarEspecialidades")
	if err != nil {
		return nil, err
	}
	var esps []models.Especialidad
	if err := decodeWrapped(resp, "Error al listar especialidades", &esps, "especialidades", "data"); err != nil {
		return nil, err
	}
	return esps, nil
}

func (s *PacienteService) Usuario(ctx context.Context, usuarioID int64) (*models.Usuario, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/usuario/%d", usuarioID))
	if err != nil {
		return nil, err
	}
	var usuario models.Usuario
	if err := decodeWrapped(resp, "Error al obtener el usuario", &usuario, "usuario", "data"); err != nil {
		return nil, err
	}
	return &usuario, nil
}

// Dashboard counters.

func (s *PacienteService) ConteoCitas(ctx context.Context, pacienteID int64) (int, error) {
	citas, err := s.MisCitas(ctx, pacienteID)
	if err != nil {
		return 0, err
	}
	return len(citas), nil
}

func (s *PacienteService) ConteoEspecialidades(ctx context.Context) (int, error) {
	esps, err := s.Especialidades(ctx)
	if err != nil {
		return 0, err
	}
	return len(esps), nil
}
