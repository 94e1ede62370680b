package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/JC2405/medicitas-client/client"
	"github.com/JC2405/medicitas-client/models"
)

// AdminService covers the administration panels: CRUD families for roles,
// users, doctors, specialties, appointments, insurance providers,
// consultation rooms and schedules.
type AdminService struct {
	api      *client.Client
	validate *validator.Validate
}

// Roles

func (s *AdminService) Roles(ctx context.Context) ([]models.Rol, error) {
	resp, err := s.api.Get(ctx, "/indexRol")
	if err != nil {
		return nil, err
	}
	var roles []models.Rol
	if err := decodeWrapped(resp, "Error al listar roles", &roles, "roles", "data"); err != nil {
		return nil, err
	}
	return roles, nil
}

// Usuarios

func (s *AdminService) Usuarios(ctx context.Context) ([]models.Usuario, error) {
	resp, err := s.api.Get(ctx, "/listarUsuariosAuth")
	if err != nil {
		return nil, err
	}
	var usuarios []models.Usuario
	if err := decodeWrapped(resp, "Error al listar usuarios", &usuarios, "data", "usuarios"); err != nil {
		return nil, err
	}
	return usuarios, nil
}

type UsuarioRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	Rol      string `json:"rol,omitempty"`
}

// CrearUsuario registers an administrator account. The backend's register
// endpoint expects the fixed admin role identifier.
func (s *AdminService) CrearUsuario(ctx context.Context, req UsuarioRequest) error {
	if req.Password == "" {
		return client.ValidationError("La contraseña es obligatoria", nil)
	}
	if err := s.validate.Struct(req); err != nil {
		return client.ValidationError("Datos del usuario inválidos", err)
	}
	req.Rol = "1"

	resp, err := s.api.Post(ctx, "/register", req)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al crear usuario", nil)
}

// ActualizarUsuario updates name and email; the password only travels when
// provided.
func (s *AdminService) ActualizarUsuario(ctx context.Context, usuarioID int64, req UsuarioRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return client.ValidationError("Datos del usuario inválidos", err)
	}
	req.Rol = ""

	resp, err := s.api.Put(ctx, fmt.Sprintf("/actualizarUsuarioAuth/%d", usuarioID), req)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al actualizar usuario", nil)
}

func (s *AdminService) EliminarUsuario(ctx context.Context, usuarioID int64) error {
	resp, err := s.api.Delete(ctx, fmt.Sprintf("/eliminarUsuarioAuth/%d", usuarioID))
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al eliminar usuario", nil)
}

// Doctores

func (s *AdminService) Doctores(ctx context.Context) ([]models.Doctor, error) {
	resp, err := s.api.Get(ctx, "/listarDoctores")
	if err != nil {
		return nil, err
	}
	var doctores []models.Doctor
	if err := decodeWrapped(resp, "Error al listar doctores", &doctores, "doctores", "data"); err != nil {
		return nil, err
	}
	return doctores, nil
}

type DoctorRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password,omitempty" validate:"omitempty,min=6"`
	Telefono         string `json:"telefono,omitempty"`
	EspecialidadID   int64  `json:"especialidad_id" validate:"required"`
	LicenciaMedica   string `json:"licencia_medica,omitempty"`
	ExperienciaAnios int    `json:"experiencia_anios,omitempty"`
	Educacion        string `json:"educacion,omitempty"`
}

func (s *AdminService) CrearDoctor(ctx context.Context, req DoctorRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return client.ValidationError("Datos del doctor inválidos", err)
	}

	resp, err := s.api.Post(ctx, "/crearDoctor", req)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al crear doctor", nil)
}

func (s *AdminService) ActualizarDoctor(ctx context.Context, doctorID int64, req DoctorRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return client.ValidationError("Datos del doctor inválidos", err)
	}

	resp, err := s.api.Put(ctx, fmt.Sprintf("/actualizarDoctor/%d", doctorID), req)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al actualizar doctor", nil)
}

func (s *AdminService) EliminarDoctor(ctx context.Context, doctorID int64) error {
	resp, err := s.api.Delete(ctx, fmt.Sprintf("/eliminarDoctor/%d", doctorID))
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al eliminar doctor", nil)
}

func (s *AdminService) DoctoresPorEspecialidad(ctx context.Context, especialidadID int64) ([]models.Doctor, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/doctoresPorEspecialidad/%d", especialidadID))
	if err != nil {
		return nil, err
	}
	var doctores []models.Doctor
	if err := decodeWrapped(resp, "Error al obtener doctores por especialidad", &doctores, "doctores", "data"); err != nil {
		return nil, err
	}
	return doctores, nil
}

// Especialidades

func (s *AdminService) Especialidades(ctx context.Context) ([]models.Especialidad, error) {
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

type EspecialidadRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Descripcion string `json:"descripcion,omitempty"`
	Estado      string `json:"estado,omitempty"`
}

func (s *AdminService) CrearEspecialidad(ctx context.Context, req EspecialidadRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return client.ValidationError("Datos de la especialidad inválidos", err)
	}

	resp, err := s.api.Post(ctx, "/crearEspecialidad", req)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al crear especialidad", nil)
}

func (s *AdminService) ActualizarEspecialidad(ctx context.Context, especialidadID int64, req EspecialidadRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return client.ValidationError("Datos de la especialidad inválidos", err)
	}

	resp, err := s.api.Put(ctx, fmt.Sprintf("/actualizarEspecialidad/%d", especialidadID), req)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al actualizar especialidad", nil)
}

func (s *AdminService) EliminarEspecialidad(ctx context.Context, especialidadID int64) error {
	resp, err := s.api.Delete(ctx, fmt.Sprintf("/eliminarEspecialidad/%d", especialidadID))
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al eliminar especialidad", nil)
}

// Citas

func (s *AdminService) Citas(ctx context.Context) ([]models.Cita, error) {
	resp, err := s.api.Get(ctx, "/listarCitas")
	if err != nil {
		return nil, err
	}
	var citas []models.Cita
	if err := decodeWrapped(resp, "Error al listar citas", &citas, "citas", "data"); err != nil {
		return nil, err
	}
	return citas, nil
}

func (s *AdminService) ActualizarCita(ctx context.Context, citaID int64, cita models.Cita) error {
	resp, err := s.api.Put(ctx, fmt.Sprintf("/actualizarCita/%d", citaID), cita)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al actualizar cita", nil)
}

func (s *AdminService) EliminarCita(ctx context.Context, citaID int64) error {
	resp, err := s.api.Delete(ctx, fmt.Sprintf("/eliminarCita/%d", citaID))
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al eliminar cita", nil)
}

func (s *AdminService) CambiarEstadoCita(ctx context.Context, citaID int64, estado string) error {
	resp, err := s.api.Patch(ctx, fmt.Sprintf("/cambiarEstadoCita/%d", citaID), map[string]string{"estado": estado})
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al cambiar estado de cita", nil)
}

// EPS

func (s *AdminService) EPSActivas(ctx context.Context) ([]models.EPS, error) {
	resp, err := s.api.Get(ctx, "/eps/activas/list")
	if err != nil {
		return nil, err
	}
	var eps []models.EPS
	if err := decodeWrapped(resp, "Error al listar EPS activas", &eps, "eps", "data"); err != nil {
		return nil, err
	}
	return eps, nil
}

type EPSRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Codigo    string `json:"codigo,omitempty"`
	NIT       string `json:"nit,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Direccion string `json:"direccion,omitempty"`
	Estado    string `json:"estado,omitempty"`
}

func (s *AdminService) CrearEPS(ctx context.Context, req EPSRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return client.ValidationError("Datos de la EPS inválidos", err)
	}

	resp, err := s.api.Post(ctx, "/eps", req)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al crear EPS", nil)
}

func (s *AdminService) CambiarEstadoEPS(ctx context.Context, epsID int64, estado string) error {
	body := map[string]interface{}{"id": epsID, "estado": estado}
	resp, err := s.api.Patch(ctx, "/e/cambiar-estado", body)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al cambiar estado de EPS", nil)
}

// Cubículos

func (s *AdminService) Cubiculos(ctx context.Context) ([]models.Cubiculo, error) {
	resp, err := s.api.Get(ctx, "/listarCubiculos")
	if err != nil {
		return nil, err
	}
	var cubiculos []models.Cubiculo
	if err := decodeWrapped(resp, "Error al listar cubículos", &cubiculos, "cubiculos", "data"); err != nil {
		return nil, err
	}
	return cubiculos, nil
}

type CubiculoRequest struct {
	Numero       string `json:"numero" validate:"required"`
	Nombre       string `json:"nombre" validate:"required"`
	Tipo         string `json:"tipo,omitempty"`
	Equipamiento string `json:"equipamiento,omitempty"`
	Estado       string `json:"estado,omitempty"`
	Capacidad    int    `json:"capacidad,omitempty"`
}

func (s *AdminService) CrearCubiculo(ctx context.Context, req CubiculoRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return client.ValidationError("Datos del cubículo inválidos", err)
	}

	resp, err := s.api.Post(ctx, "/crearCubiculo", req)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al crear cubículo", nil)
}

func (s *AdminService) CubiculosDisponibles(ctx context.Context) ([]models.Cubiculo, error) {
	resp, err := s.api.Get(ctx, "/cubiculos/disponibles/list")
	if err != nil {
		return nil, err
	}
	var cubiculos []models.Cubiculo
	if err := decodeWrapped(resp, "Error al obtener cubículos disponibles", &cubiculos, "cubiculos", "data"); err != nil {
		return nil, err
	}
	return cubiculos, nil
}

// Horarios

func (s *AdminService) Horarios(ctx context.Context) ([]models.Horario, error) {
	resp, err := s.api.Get(ctx, "/listarHorarios")
	if err != nil {
		return nil, err
	}
	var horarios []models.Horario
	if err := decodeWrapped(resp, "Error al listar horarios", &horarios, "horarios", "data"); err != nil {
		return nil, err
	}
	return horarios, nil
}

func (s *AdminService) CrearHorario(ctx context.Context, req HorarioRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return client.ValidationError("Datos del horario inválidos", err)
	}

	resp, err := s.api.Post(ctx, "/crearHorario", req)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al crear horario", nil)
}
