package models

import "github.com/google/uuid"

// AccessRole grades what a user may do with a hidden manufacturer.
type AccessRole string

const (
	// RoleOwner may additionally delete the manufacturer and manage admins.
	RoleOwner AccessRole = "owner"
	// RoleAdmin may additionally manage editors.
	RoleAdmin AccessRole = "admin"
	// RoleEditor may edit the manufacturer.
	RoleEditor AccessRole = "editor"
	// RoleShared may read the manufacturer even while it is hidden.
	RoleShared AccessRole = "shared"
)

// Manufacturer is an equipment manufacturer. Hidden manufacturers are only
// visible to users holding an access grant.
type Manufacturer struct {
	ID          uuid.UUID
	Name        string
	ShortName   string // empty when unset
	Description string // empty when unset
	Website     string // empty when unset
	Hidden      bool
}

// ManufacturerAccess is one access grant, keyed by (manufacturer, user).
type ManufacturerAccess struct {
	ManufacturerID uuid.UUID
	UserID         uuid.UUID
	Role           AccessRole
}

// ManufacturerCreate holds the fields accepted on creation. Hidden
// defaults to true when nil.
type ManufacturerCreate struct {
	Name        string
	ShortName   string
	Description string
	Website     string
	Hidden      *bool
}

// ManufacturerUpdate is a sparse update request for a manufacturer.
type ManufacturerUpdate struct {
	Name        Field[string]
	ShortName   Field[string]
	Description Field[string]
	Website     Field[string]
	Hidden      Field[bool]
}

// ManufacturerFilters select manufacturers for a listing.
//
// When UserID is set the listing is scoped to what that user may see;
// with neither Hidden nor AccessRoles given this means "public OR granted
// access" (the one OR-combined filter pair in the system). AccessRoles
// distinguishes nil (no role filter) from an empty non-nil slice (rows
// where the user holds no grant).
type ManufacturerFilters struct {
	UserID      *uuid.UUID
	Hidden      *bool
	AccessRoles []AccessRole
	Skip        int
	Limit       int // zero or negative means no page bound
}

// ManufacturerWithRole pairs a listed manufacturer with the access role
// of the requesting user, if any.
type ManufacturerWithRole struct {
	Manufacturer *Manufacturer
	Role         *AccessRole
}
