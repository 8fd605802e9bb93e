package models

import (
	"github.com/google/uuid"
)

// LocationType categorizes a location.
type LocationType string

const (
	LocationOther  LocationType = "other"
	LocationRegion LocationType = "region"
	LocationArea   LocationType = "area"
	LocationCrag   LocationType = "crag"
	LocationPOI    LocationType = "poi"
	LocationCity   LocationType = "city"
	LocationGym    LocationType = "gym"
)

// Location is a place activities happen at. Locations form an optional
// hierarchy via ParentID; deleting a parent nulls the children's pointer.
type Location struct {
	ID            uuid.UUID
	Name          string
	Abbreviation  string // empty when unset
	Website       string // empty when unset
	Type          LocationType
	ParentID      *uuid.UUID
	ActivityTypes []ActivityType
}

// LocationCreate holds the fields accepted when creating a location.
// An empty Abbreviation or Website is stored as null.
type LocationCreate struct {
	Name          string
	Abbreviation  string
	Website       string
	Type          LocationType
	ParentID      *uuid.UUID
	ActivityTypes []ActivityType
}

// LocationUpdate is a sparse update request for a location. A nil
// ActivityTypes slice leaves the association set untouched.
type LocationUpdate struct {
	Name          Field[string]
	Abbreviation  Field[string]
	Website       Field[string]
	Type          Field[LocationType]
	ParentID      Field[uuid.UUID]
	ActivityTypes []ActivityType
}

// LocationFilters are the optional dimensions of a location listing.
type LocationFilters struct {
	Types     []LocationType
	ParentIDs []uuid.NullUUID
	Skip      int
	Limit     int // zero or negative means no page bound
}
