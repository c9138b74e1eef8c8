// Package validator checks user payloads before they reach the database.
// Checks return a human-readable message, or "" when the input is valid.
package validator

import (
	"fmt"
	"strings"

	"github.com/andrewouko/umoja-informatics/internal/model"
)

// ValidateRole reports an invalid role. An empty role is valid.
func ValidateRole(role string) string {
	if role == "" || model.Role(role).Valid() {
		return ""
	}

	names := make([]string, 0, len(model.Roles))
	for _, r := range model.Roles {
		names = append(names, string(r))
	}
	return fmt.Sprintf("The role should be one of the following: %s.", strings.Join(names, ", "))
}

// ValidateUserPayload checks a creation payload: name, email and role are
// all required and the role must be valid.
func ValidateUserPayload(p model.UserPayload) string {
	required := []struct {
		field string
		value string
	}{
		{"name", p.NameValue()},
		{"email", p.EmailValue()},
		{"role", p.RoleValue()},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return fmt.Sprintf("The request payload is missing the following fields: %s.", strings.Join(missing, ", "))
	}

	return ValidateRole(p.RoleValue())
}
