package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/JC2405/medicitas-client/client"
	"github.com/JC2405/medicitas-client/enums"
	"github.com/JC2405/medicitas-client/models"
)

// AuthService covers the session-lifecycle endpoints: login, patient
// registration, logout, refresh and profile fetch.
type AuthService struct {
	api      *client.Client
	validate *validator.Validate
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResult carries what a successful POST /login returns. Guard is merged
// into the profile when the backend only reports it at the top level, so the
// role resolver always sees it.
type LoginResult struct {
	Token   string
	User    *models.UserProfile
	Guard   string
	IsAdmin bool
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, client.ValidationError("Correo o contraseña inválidos", err)
	}

	resp, err := s.api.Post(ctx, "/login", req)
	if err != nil {
		return nil, err
	}
	if err := client.Decode(resp, "Error al iniciar sesión", nil); err != nil {
		return nil, err
	}

	body := resp.Body()
	token := gjson.GetBytes(body, "access_token").String()
	if token == "" {
		return nil, &client.Error{
			Kind:       client.KindServer,
			StatusCode: resp.StatusCode(),
			Message:    "No se recibió token en la respuesta",
		}
	}

	guard := gjson.GetBytes(body, "guard").String()

	var user *models.UserProfile
	if raw := gjson.GetBytes(body, "user").Raw; raw != "" && raw != "null" {
		var u models.UserProfile
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			if u.Guard == "" && guard != "" {
				u.SetGuard(guard)
			}
			user = &u
		}
	}

	return &LoginResult{
		Token:   token,
		User:    user,
		Guard:   guard,
		IsAdmin: guard == enums.GuardAdmin,
	}, nil
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Telefono string `json:"telefono,omitempty"`
	EPSID    int64  `json:"eps_id,omitempty"`
}

type RegisterResult struct {
	Message string
	User    *models.UserProfile
}

// Register creates a patient account through the public endpoint.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, client.ValidationError("Datos de registro inválidos", err)
	}

	resp, err := s.api.Post(ctx, "/crearUsuarioPaciente", req)
	if err != nil {
		return nil, err
	}
	if err := client.Decode(resp, "Error al registrar usuario", nil); err != nil {
		return nil, err
	}

	body := resp.Body()
	result := &RegisterResult{
		Message: gjson.GetBytes(body, "message").String(),
	}
	if result.Message == "" {
		result.Message = "Usuario registrado correctamente"
	}

	raw := gjson.GetBytes(body, "usuario").Raw
	if raw == "" {
		raw = gjson.GetBytes(body, "user").Raw
	}
	if raw != "" && raw != "null" {
		var u models.UserProfile
		if err := json.Unmarshal([]byte(raw), &u); err == nil {
			result.User = &u
		}
	}
	return result, nil
}

// Logout tells the backend to revoke the session. Local session clearing is
// the app layer's job and must not wait on this call succeeding.
func (s *AuthService) Logout(ctx context.Context) error {
	resp, err := s.api.Post(ctx, "/logout", nil)
	if err != nil {
		return err
	}
	return client.Decode(resp, "Error al cerrar sesión", nil)
}

// Refresh requests a fresh access token.
func (s *AuthService) Refresh(ctx context.Context) (string, error) {
	resp, err := s.api.Post(ctx, "/refresh", nil)
	if err != nil {
		return "", err
	}
	if err := client.Decode(resp, "Error al refrescar el token", nil); err != nil {
		return "", err
	}

	body := resp.Body()
	token := gjson.GetBytes(body, "token").String()
	if token == "" {
		token = gjson.GetBytes(body, "access_token").String()
	}
	if token == "" {
		return "", &client.Error{
			Kind:       client.KindServer,
			StatusCode: resp.StatusCode(),
			Message:    "No se recibió token en la respuesta",
		}
	}
	return token, nil
}

// Me fetches the authenticated user's profile.
func (s *AuthService) Me(ctx context.Context) (*models.UserProfile, error) {
	resp, err := s.api.Get(ctx, "/me")
	if err != nil {
		return nil, err
	}
	var user models.UserProfile
	if err := client.Decode(resp, "Error al obtener el perfil", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
