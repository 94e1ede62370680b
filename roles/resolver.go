package roles

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/JC2405/medicitas-client/enums"
	"github.com/JC2405/medicitas-client/models"
)

// candidateFields is the ordered list of places the backend has been seen
// returning role information under.
var candidateFields = []string{"rol", "idrol", "role", "role_id", "tipo", "type"}

// Resolve reduces an ambiguous user profile to exactly one routing role.
// This is the only place allowed to read the inconsistent role fields, and it
// routes screens only; the backend stays authoritative for permissions.
// A profile with no recognizable admin or doctor signal routes as a patient,
// a safety default rather than a claim about the account.
func Resolve(user *models.UserProfile) enums.Role {
	if user == nil {
		return enums.RolePatient
	}

	switch user.Guard {
	case enums.GuardAdmin:
		return enums.RoleAdmin
	case enums.GuardDoctores:
		return enums.RoleDoctor
	case enums.GuardUsuarios:
		return enums.RolePatient
	}

	if user.UserType == enums.UserTypeAdmin {
		return enums.RoleAdmin
	}

	if adminByRoleFields(user.Raw) {
		return enums.RoleAdmin
	}

	return enums.RolePatient
}

func adminByRoleFields(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	for _, field := range candidateFields {
		v := gjson.GetBytes(raw, field)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		if matchesAdmin(v) {
			return true
		}
		// The backend sometimes nests the role as an object.
		if v.IsObject() {
			if matchesAdmin(v.Get("role")) || matchesAdmin(v.Get("rol")) {
				return true
			}
		}
	}
	return false
}

// matchesAdmin accepts the literals the backend has used to mark an admin:
// "admin" in any letter case, or 1 as a number or string.
func matchesAdmin(v gjson.Result) bool {
	switch v.Type {
	case gjson.String:
		return strings.EqualFold(v.Str, "admin") || v.Str == "1"
	case gjson.Number:
		return v.Num == 1
	default:
		return false
	}
}
