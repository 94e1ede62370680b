package services

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/JC2405/medicitas-client/client"
)

func TestRolesWrappedAndBare(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "wrapped under roles", body: `{"roles":[{"id":1,"nombre":"admin"},{"id":2,"nombre":"paciente"}]}`},
		{name: "wrapped under data", body: `{"data":[{"id":1,"nombre":"admin"},{"id":2,"nombre":"paciente"}]}`},
		{name: "bare array", body: `[{"id":1,"nombre":"admin"},{"id":2,"nombre":"paciente"}]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svcs := newTestServices(t, jsonHandler(http.StatusOK, tc.body))

			roles, err := svcs.Admin.Roles(context.Background())

			require.NoError(t, err)
			require.Len(t, roles, 2)
			assert.Equal(t, "admin", roles[0].Nombre)
			assert.Equal(t, int64(2), roles[1].ID)
		})
	}
}

func TestUsuarios(t *testing.T) {
	svcs := newTestServices(t, jsonHandler(http.StatusOK,
		`{"data":[{"id":4,"name":"Root","email":"root@example.com"}]}`))

	usuarios, err := svcs.Admin.Usuarios(context.Background())

	require.NoError(t, err)
	require.Len(t, usuarios, 1)
	assert.Equal(t, "Root", usuarios[0].Name)
}

func TestCrearUsuarioForcesAdminRole(t *testing.T) {
	var sentBody []byte
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sentBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"ok"}`))
	})
	svcs := newTestServices(t, handler)

	err := svcs.Admin.CrearUsuario(context.Background(), UsuarioRequest{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "secreto1",
		Rol:      "3",
	})

	require.NoError(t, err)
	assert.Equal(t, "1", gjson.GetBytes(sentBody, "rol").String())
}

func TestCrearUsuarioRequiresPassword(t *testing.T) {
	svcs := newTestServices(t, jsonHandler(http.StatusCreated, `{}`))

	err := svcs.Admin.CrearUsuario(context.Background(), UsuarioRequest{
		Name:  "Root",
		Email: "root@example.com",
	})

	var apiErr *client.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindValidation, apiErr.Kind)
	assert.Equal(t, "La contraseña es obligatoria", apiErr.Message)
}

func TestActualizarUsuarioDropsRole(t *testing.T) {
	var sentBody []byte
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sentBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"message":"ok"}`))
	})
	svcs := newTestServices(t, handler)

	err := svcs.Admin.ActualizarUsuario(context.Background(), 4, UsuarioRequest{
		Name:  "Root",
		Email: "root@example.com",
		Rol:   "1",
	})

	require.NoError(t, err)
	assert.False(t, gjson.GetBytes(sentBody, "rol").Exists())
}

func TestCrearDoctorValidation(t *testing.T) {
	svcs := newTestServices(t, jsonHandler(http.StatusCreated, `{}`))

	err := svcs.Admin.CrearDoctor(context.Background(), DoctorRequest{
		Name:  "Dra. Ruiz",
		Email: "ruiz@example.com",
		// EspecialidadID missing
	})

	var apiErr *client.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindValidation, apiErr.Kind)
}

func TestCambiarEstadoEPS(t *testing.T) {
	var method, path string
	var sentBody []byte
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		sentBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"message":"ok"}`))
	})
	svcs := newTestServices(t, handler)

	err := svcs.Admin.CambiarEstadoEPS(context.Background(), 7, "inactiva")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/e/cambiar-estado", path)
	assert.Equal(t, int64(7), gjson.GetBytes(sentBody, "id").Int())
	assert.Equal(t, "inactiva", gjson.GetBytes(sentBody, "estado").String())
}

func TestCitasBackendError(t *testing.T) {
	svcs := newTestServices(t, jsonHandler(http.StatusInternalServerError, `{}`))

	_, err := svcs.Admin.Citas(context.Background())

	var apiErr *client.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, client.KindServer, apiErr.Kind)
	assert.Equal(t, client.MsgServidor, apiErr.Message)
}
