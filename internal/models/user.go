package models

import "github.com/google/uuid"

// Password length limits enforced on create and update.
const (
	PasswordMinLength = 10
	PasswordMaxLength = 255
)

// User is an account. The password is only ever stored hashed.
type User struct {
	ID             uuid.UUID
	Email          string
	HashedPassword string
	FullName       string // empty when unset
	IsActive       bool
	IsSuperuser    bool
}

// UserCreate holds the fields accepted when creating a user. Password is
// the plain text password; hashing happens before the record is written.
type UserCreate struct {
	Email       string
	Password    string
	FullName    string
	IsActive    *bool // defaults to true
	IsSuperuser bool
}

// UserUpdate is a sparse update request for a user. Password, when set,
// is re-hashed before being written.
type UserUpdate struct {
	Email       Field[string]
	Password    Field[string]
	FullName    Field[string]
	IsActive    Field[bool]
	IsSuperuser Field[bool]
}

// UserFilters select users for a listing; users have no filter dimensions
// beyond pagination.
type UserFilters struct {
	Skip  int
	Limit int // zero or negative means no page bound
}
