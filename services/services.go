package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/JC2405/medicitas-client/client"
	"github.com/JC2405/medicitas-client/utils"
)

// Services bundles the typed endpoint wrappers over one API client. Requests
// are validated locally before anything goes on the wire; backend failures
// come back as *client.Error with a presentable message.
type Services struct {
	Auth     *AuthService
	Paciente *PacienteService
	Doctor   *DoctorService
	Admin    *AdminService
}

func New(api *client.Client) *Services {
	v := validator.New()
	return &Services{
		Auth:     &AuthService{api: api, validate: v},
		Paciente: &PacienteService{api: api, validate: v},
		Doctor:   &DoctorService{api: api, validate: v},
		Admin:    &AdminService{api: api, validate: v},
	}
}

// decodeWrapped parses a list/record response that the backend sometimes
// nests under a wrapper key (roles, data, usuario, ...) and sometimes
// returns bare.
func decodeWrapped(resp *resty.Response, fallback string, out interface{}, wrapperKeys ...string) error {
	if resp.IsError() {
		return client.Decode(resp, fallback, nil)
	}
	body := resp.Body()
	for _, key := range wrapperKeys {
		if v := gjson.GetBytes(body, key); v.Exists() {
			return utils.BytesToStruct([]byte(v.Raw), out)
		}
	}
	return utils.BytesToStruct(body, out)
}
