package account

import (
	"regexp"
	"time"

	"go-courses-api/internal/core/domain"
)

// emailPattern is deliberately loose: it rejects obvious garbage without
// trying to fully implement RFC 5322.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User is a registered account. PasswordHash is the only stored form of the
// credential secret and is excluded from every serialization.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	EmailAddress string    `json:"emailAddress"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

// Registration carries the fields a caller submits to open an account. The
// plaintext password lives only here; it is hashed before a User is built.
type Registration struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// Validate checks every field and reports all failures together.
func (r Registration) Validate() error {
	var msgs []string
	if r.FirstName == "" {
		msgs = append(msgs, "First name is required")
	}
	if r.LastName == "" {
		msgs = append(msgs, "Last name is required")
	}
	if r.EmailAddress == "" {
		msgs = append(msgs, "Email address is required")
	} else if !emailPattern.MatchString(r.EmailAddress) {
		msgs = append(msgs, "Must be a valid email address")
	}
	if r.Password == "" {
		msgs = append(msgs, "Password is required")
	}
	return domain.NewValidationError(msgs)
}
