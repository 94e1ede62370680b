package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/JC2405/medicitas-client/client"
	"github.com/JC2405/medicitas-client/models"
)

// DoctorService covers the doctor-facing endpoints: own profile, own
// schedule management and own appointments.
type DoctorService struct {
	api      *client.Client
	validate *validator.Validate
}

func (s *DoctorService) MiPerfil(ctx context.Context) (*models.Doctor, error) {
	resp, err := s.api.Get(ctx, "/miPerfil")
	if err != nil {
		return nil, err
	}
	var doctor models.Doctor
	if err := decodeWrapped(resp, "Error al obtener el perfil", &doctor, "doctor", "data"); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (s *DoctorService) ActualizarPerfil(ctx context.Context, doctorID int64, doctor models.Doctor) error {
	resp, err := s.api.Put(ctx, fmt.Sprintf("/actualizarDoctor/%d", doctorID), doctor)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al actualizar el perfil", nil)
}

func (s *DoctorService) MisCitas(ctx context.Context, doctorID int64) ([]models.Cita, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/citasPorDoctor/%d", doctorID))
	if err != nil {
		return nil, err
	}
	var citas []models.Cita
	if err := decodeWrapped(resp, "Error al obtener las citas", &citas, "citas", "data"); err != nil {
		return nil, err
	}
	return citas, nil
}

func (s *DoctorService) CambiarEstadoCita(ctx context.Context, citaID int64, estado string) error {
	resp, err := s.api.Patch(ctx, fmt.Sprintf("/cambiarEstadoCita/%d", citaID), map[string]string{"estado": estado})
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al cambiar el estado de la cita", nil)
}

func (s *DoctorService) MisHorarios(ctx context.Context) ([]models.Horario, error) {
	resp, err := s.api.Get(ctx, "/misHorarios")
	if err != nil {
		return nil, err
	}
	var horarios []models.Horario
	if err := decodeWrapped(resp, "Error al obtener los horarios", &horarios, "horarios", "data"); err != nil {
		return nil, err
	}
	return horarios, nil
}

type HorarioRequest struct {
	DoctorID   int64  `json:"doctor_id,omitempty"`
	DiaSemana  string `json:"dia_semana" validate:"required,oneof=lunes martes miercoles jueves viernes sabado domingo"`
	HoraInicio string `json:"hora_inicio" validate:"required"`
	HoraFin    string `json:"hora_fin" validate:"required"`
	Estado     string `json:"estado,omitempty"`
}

func (s *DoctorService) CrearHorario(ctx context.Context, req HorarioRequest) (*models.Horario, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, client.ValidationError("Datos del horario inválidos", err)
	}

	resp, err := s.api.Post(ctx, "/crearHorario", req)
	if err != nil {
		return nil, err
	}
	var horario models.Horario
	if err := decodeWrapped(resp, "Error al crear el horario", &horario, "horario", "data"); err != nil {
		return nil, err
	}
	return &horario, nil
}

func (s *DoctorService) ActualizarHorario(ctx context.Context, horarioID int64, req HorarioRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return client.ValidationError("Datos del horario inválidos", err)
	}

	resp, err := s.api.Put(ctx, fmt.Sprintf("/actualizarHorario/%d", horarioID), req)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al actualizar el horario", nil)
}

func (s *DoctorService) EliminarHorario(ctx context.Context, horarioID int64) error {
	resp, err := s.api.Delete(ctx, fmt.Sprintf("/eliminarHorario/%d", horarioID))
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al eliminar el horario", nil)
}

func (s *DoctorService) Cubiculo(ctx context.Context, cubiculoID int64) (*models.Cubiculo, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/cubiculos/%d", cubiculoID))
	if err != nil {
		return nil, err
	}
	var cubiculo models.Cubiculo
	if err := decodeWrapped(resp, "Error al obtener el cubículo", &cubiculo, "cubiculo", "data"); err != nil {
		return nil, err
	}
	return &cubiculo, nil
}

func (s *DoctorService) Especialidad(ctx context.Context, especialidadID int64) (*models.Especialidad, error) {
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
