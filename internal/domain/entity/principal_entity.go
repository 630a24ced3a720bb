package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind tags which capability a Principal holds. Users and admins live in the
// same store but never authorize for each other's routes.
type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindUser || k == KindAdmin
}

// NameField is the JSON field carrying the principal's identifier.
func (k Kind) NameField() string {
	if k == KindAdmin {
		return "adminname"
	}
	return "username"
}

// IDField is the JSON field carrying the principal's id in login responses.
func (k Kind) IDField() string {
	if k == KindAdmin {
		return "adminId"
	}
	return "userId"
}

func (k Kind) String() string { return string(k) }

// Principal is the aggregate root for anything that can log in.
// PasswordHash holds a bcrypt hash and AccessToken is issued exactly once at
// creation; neither is ever rewritten.
type Principal struct {
	ID           string
	Kind         Kind
	Name         string
	Email        string // users only
	PasswordHash string
	AccessToken  string
	CreatedAt    time.Time
}

// MarshalJSON renders a principal with its kind-specific field names and
// without the password hash.
func (p Principal) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"_id":              p.ID,
		p.Kind.NameField(): p.Name,
		"accessToken":      p.AccessToken,
		"createdAt":        p.CreatedAt,
	}
	if p.Kind == KindUser {
		out["email"] = p.Email
	}
	return json.Marshal(out)
}

func (p Principal) String() string {
	return fmt.Sprintf("%s(%s)", p.Kind, p.Name)
}
