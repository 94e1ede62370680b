package services

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/JC2405/medicitas-client/client"
)

func TestLogin(t *testing.T) {
	handler := jsonHandler(http.StatusOK, `{
		"access_token": "tok-login",
		"guard": "api_admin",
		"user": {"id": 3, "name": "Root", "email": "root@example.com"}
	}`)
	svcs := newTestServices(t, handler)

	result, err := svcs.Auth.Login(context.Background(), LoginRequest{
		Email:    "root@example.com",
		Password: "secreto1",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok-login", result.Token)
	assert.Equal(t, "api_admin", result.Guard)
	assert.True(t, result.IsAdmin)
	require.NotNil(t, result.User)
	assert.Equal(t, "root@example.com", result.User.Email)
	// The top-level guard is folded into the profile for the role resolver.
	assert.Equal(t, "api_admin", result.User.Guard)

	// The folded guard survives serialization; committing this profile and
	// restoring it after a restart must still route as admin.
	data, err := json.Marshal(result.User)
	require.NoError(t, err)
	assert.Equal(t, "api_admin", gjson.GetBytes(data, "guard").String())
	assert.Equal(t, "root@example.com", gjson.GetBytes(data, "email").String())
}

func TestLoginProfileGuardNotOverwritten(t *testing.T) {
	handler := jsonHandler(http.StatusOK, `{
		"access_token": "tok-login",
		"guard": "api_admin",
		"user": {"id": 3, "guard": "api_doctores"}
	}`)
	svcs := newTestServices(t, handler)

	result, err := svcs.Auth.Login(context.Background(), LoginRequest{
		Email:    "doc@example.com",
		Password: "secreto1",
	})

	require.NoError(t, err)
	assert.Equal(t, "api_doctores", result.User.Guard)
}

func TestLoginWithoutToken(t *testing.T) {
	handler := jsonHandler(http.StatusOK, `{"user":{"id":3}}`)
	svcs := newTestServices(t, handler)

	_, err := svcs.Auth.Login(context.Background(), LoginRequest{
		Email:    "root@example.com",
		Password: "secreto1",
	})

	var apiErr *client.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindServer, apiErr.Kind)
	assert.Equal(t, "No se recibió token en la respuesta", apiErr.Message)
}

func TestLoginRejectedCredentials(t *testing.T) {
	handler := jsonHandler(http.StatusUnauthorized, `{"message":"Credenciales incorrectas"}`)
	svcs := newTestServices(t, handler)

	_, err := svcs.Auth.Login(context.Background(), LoginRequest{
		Email:    "root@example.com",
		Password: "equivocada",
	})

	require.True(t, client.IsUnauthorized(err))
	assert.Equal(t, "Credenciales incorrectas", client.UserMessage(err))
}

func TestLoginValidatesBeforeSending(t *testing.T) {
	var calls int32
	svcs := newTestServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	testCases := []struct {
		name string
		req  LoginRequest
	}{
		{name: "missing email", req: LoginRequest{Password: "secreto1"}},
		{name: "bad email", req: LoginRequest{Email: "no-es-correo", Password: "secreto1"}},
		{name: "short password", req: LoginRequest{Email: "a@b.co", Password: "123"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svcs.Auth.Login(context.Background(), tc.req)
			var apiErr *client.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, client.KindValidation, apiErr.Kind)
		})
	}
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestRegister(t *testing.T) {
	handler := jsonHandler(http.StatusCreated, `{
		"message": "Paciente creado",
		"usuario": {"id": 11, "name": "Ana", "email": "ana@example.com"}
	}`)
	svcs := newTestServices(t, handler)

	result, err := svcs.Auth.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreto1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Paciente creado", result.Message)
	require.NotNil(t, result.User)
	assert.Equal(t, "Ana", result.User.Name)
}

func TestRegisterDefaultMessage(t *testing.T) {
	handler := jsonHandler(http.StatusCreated, `{"user":{"id":11}}`)
	svcs := newTestServices(t, handler)

	result, err := svcs.Auth.Register(context.Background(), RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secreto1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Usuario registrado correctamente", result.Message)
	require.NotNil(t, result.User)
}

func TestRefresh(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "token field", body: `{"token":"tok-fresh"}`},
		{name: "access_token field", body: `{"access_token":"tok-fresh"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svcs := newTestServices(t, jsonHandler(http.StatusOK, tc.body))

			token, err := svcs.Auth.Refresh(context.Background())

			require.NoError(t, err)
			assert.Equal(t, "tok-fresh", token)
		})
	}
}

func TestMe(t *testing.T) {
	handler := jsonHandler(http.StatusOK, `{"id":5,"name":"Ana","rol":"paciente"}`)
	svcs := newTestServices(t, handler)

	user, err := svcs.Auth.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.NotEmpty(t, user.Raw)
}
