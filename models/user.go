package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

// UserProfile is the loosely typed account record the backend returns. No
// single field is guaranteed present, and role information has historically
// moved between fields (rol, idrol, role, role_id, tipo, type) with values
// that are sometimes numbers and sometimes strings. Raw keeps the payload
// exactly as received so the role resolver can fall back across those fields;
// everything outside the resolver must consume the resolved Role instead.
type UserProfile struct {
	ID       json.Number `json:"id,omitempty"`
	Name     string      `json:"name,omitempty"`
	Nombre   string      `json:"nombre,omitempty"`
	Apellido string      `json:"apellido,omitempty"`
	Email    string      `json:"email,omitempty"`
	Guard    string      `json:"guard,omitempty"`
	UserType string      `json:"user_type,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps the original payload alongside the typed fields so no
// backend field is lost between login, storage and restore.
func (u *UserProfile) UnmarshalJSON(data []byte) error {
	type alias UserProfile
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*u = UserProfile(a)
	u.Raw = append([]byte(nil), data...)
	return nil
}

// MarshalJSON emits the original payload when one was captured, so persisting
// a profile is lossless.
func (u UserProfile) MarshalJSON() ([]byte, error) {
	if len(u.Raw) > 0 {
		return u.Raw, nil
	}
	type alias UserProfile
	return json.Marshal(alias(u))
}

// SetGuard records the authentication realm on both the typed field and the
// captured payload. Raw must carry the value too: it is what MarshalJSON
// emits, so a guard set only on the field would not survive a storage
// roundtrip.
func (u *UserProfile) SetGuard(guard string) {
	u.Guard = guard
	if len(u.Raw) == 0 {
		return
	}

	dec := json.NewDecoder(bytes.NewReader(u.Raw))
	dec.UseNumber()
	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return
	}
	fields["guard"] = guard
	if data, err := json.Marshal(fields); err == nil {
		u.Raw = data
	}
}

// DisplayName prefers the single name field and falls back to the split
// nombre/apellido pair.
func (u *UserProfile) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Apellido != "" {
		return u.Nombre + " " + u.Apellido
	}
	return u.Nombre
}
