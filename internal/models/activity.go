package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies an activity, grouped as "Group/Kind".
type ActivityType string

const (
	ActivityIndoorSportClimbing ActivityType = "Indoor/Sport Climbing"
	ActivityIndoorBouldering    ActivityType = "Indoor/Bouldering"
	ActivityRunningJogging      ActivityType = "Running/Jogging"
	ActivityRunningTrail        ActivityType = "Running/Trail Running"
	ActivityHikingCityWalking   ActivityType = "Hiking/City Walking"
	ActivityHikingTrail         ActivityType = "Hiking/Hiking Trail"
	ActivityHikingLongDistance  ActivityType = "Hiking/Long Distance Hiking"
	ActivityMountainHike        ActivityType = "Mountaineering/Mountain Hike"
	ActivityAlpineTour          ActivityType = "Mountaineering/Alpine Tour"
	ActivityClimbingBouldering  ActivityType = "Climbing/Bouldering"
	ActivityClimbingSport       ActivityType = "Climbing/Sport Climbing"
	ActivityClimbingAlpine      ActivityType = "Climbing/Alpine Climbing"
	ActivityClimbingIce         ActivityType = "Climbing/Ice Climbing"
	ActivityClimbingViaFerrata  ActivityType = "Climbing/Via Ferrata"
	ActivityWinterHike          ActivityType = "Winter/Winter Hiking"
	ActivityWinterSnowshoeing   ActivityType = "Winter/Snow Shoeing"
	ActivityWinterSkiTouring    ActivityType = "Winter/Ski Touring"
	ActivityWinterSkiAlpine     ActivityType = "Winter/Ski Alpine"
	ActivityCyclingBike         ActivityType = "Cycling/Bike Riding"
	ActivityCyclingMountain     ActivityType = "Cycling/Mountain Biking"
	ActivityCyclingRoad         ActivityType = "Cycling/Road Cycling"
	ActivityCyclingGravel       ActivityType = "Cycling/Gravel Biking"
)

// Activity is a tracked activity, optionally nested under a parent and
// tied to a location, a set of types and a set of participating users.
type Activity struct {
	ID          uuid.UUID
	Title       string
	Description string // empty when unset
	Start       *time.Time
	Duration    *time.Duration
	LocationID  *uuid.UUID
	ParentID    *uuid.UUID
	Types       []ActivityType
	UserIDs     []uuid.UUID
}

// LocationRef names a location either directly by ID or through an
// already-loaded record. Both forms collapse to the ID before any write.
type LocationRef struct {
	id uuid.UUID
}

// LocationByID references a location by its bare identifier.
func LocationByID(id uuid.UUID) LocationRef {
	return LocationRef{id: id}
}

// LocationOf references a location through a loaded record.
func LocationOf(l *Location) LocationRef {
	return LocationRef{id: l.ID}
}

// ResolveID returns the identifier the reference points at.
func (r LocationRef) ResolveID() uuid.UUID { return r.id }

// ActivityCreate holds the fields accepted when creating an activity.
// Nil type/user sets create the activity without associations.
type ActivityCreate struct {
	Title       string
	Description string
	Start       *time.Time // naive values are assumed UTC
	Duration    *time.Duration
	Location    *LocationRef
	ParentID    *uuid.UUID
	Types       []ActivityType
	UserIDs     []uuid.UUID
}

// ActivityUpdate is a sparse update request. Scalar fields follow the
// tri-state Field contract; nil Types/UserIDs leave the association set
// untouched while an empty non-nil set removes every row.
type ActivityUpdate struct {
	Title       Field[string]
	Description Field[string]
	Start       Field[time.Time]
	Duration    Field[time.Duration]
	Location    Field[LocationRef]
	ParentID    Field[uuid.UUID]
	Types       []ActivityType
	UserIDs     []uuid.UUID
}

// ActivityFilters are the optional dimensions of an activity listing.
// Null entries in LocationIDs/ParentIDs match rows whose column is unset.
// Empty collections skip the dimension entirely.
type ActivityFilters struct {
	UserIDs     []uuid.UUID
	LocationIDs []uuid.NullUUID
	ParentIDs   []uuid.NullUUID
	Types       []sql.NullString
	Skip        int
	Limit       int // zero or negative means no page bound
}
