package domain

import "time"

// AccountKind discriminates the two flavours of login-capable records that
// used to live in separate collections: managed employees versus staff
// users created through self-registration.
type AccountKind string

const (
	KindEmployee AccountKind = "employee"
	KindStaff    AccountKind = "staff"
)

// Account is the single credential record: one namespace for every person
// who can log in, tagged by Kind. Employee profile fields are empty for
// staff accounts.
type Account struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	Kind         AccountKind `json:"kind"`
	Mobile       string      `json:"mobile,omitempty"`
	Designation  string      `json:"designation,omitempty"`
	Gender       string      `json:"gender,omitempty"`
	Image        string      `json:"image,omitempty"`
	Courses      []string    `json:"courses,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// IsEmployee reports whether the account is a managed employee record.
func (a *Account) IsEmployee() bool { return a.Kind == KindEmployee }

// Identity is the decoded, verified token payload. It is reconstructed
// from the token on every request and never re-fetched from storage, so
// its fields are a snapshot taken at issuance time.
type Identity struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Employee bool   `json:"employee,omitempty"`
}

// IdentityOf builds the token payload for an account.
func IdentityOf(a *Account) Identity {
	return Identity{
		ID:       a.ID,
		Role:     a.Role,
		Name:     a.Name,
		Email:    a.Email,
		Employee: a.IsEmployee(),
	}
}
