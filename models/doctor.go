package models

type Doctor struct {
	ID               int64  `json:"id,omitempty"`
	Name             string `json:"name"`
	Apellido         string `json:"apellido,omitempty"`
	Email            string `json:"email"`
	Password         string `json:"password,omitempty"`
	Telefono         string `json:"telefono,omitempty"`
	EspecialidadID   int64  `json:"especialidad_id"`
	LicenciaMedica   string `json:"licencia_medica,omitempty"`
	ExperienciaAnios int    `json:"experiencia_anios,omitempty"`
	Educacion        string `json:"educacion,omitempty"`
}
