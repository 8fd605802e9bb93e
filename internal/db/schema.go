package db

// SchemaSQL is the complete schema for fresh basecamp databases. It is
// the single source of truth: tests load it through GetSchemaSQL instead
// of hardcoding CREATE TABLE statements, so drift between repository code
// and schema surfaces immediately as "no such column".
//
// Keep this in sync with the migration list in migrations.go.
const SchemaSQL = `
-- Users (accounts; passwords stored hashed only)
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	hashed_password TEXT NOT NULL,
	full_name TEXT,
	is_active INTEGER NOT NULL DEFAULT 1,
	is_superuser INTEGER NOT NULL DEFAULT 0
);

-- Locations (optional self-referential hierarchy; deleting a parent
-- nulls the children's pointer, it never cascades)
CREATE TABLE IF NOT EXISTS locations (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	abbreviation TEXT,
	website TEXT,
	location_type TEXT NOT NULL DEFAULT 'other'
		CHECK(location_type IN ('other', 'region', 'area', 'crag', 'poi', 'city', 'gym')),
	parent_id TEXT REFERENCES locations(id) ON DELETE SET NULL
);
CREATE INDEX IF NOT EXISTS idx_locations_parent ON locations(parent_id);

-- Activity types offered at a location
CREATE TABLE IF NOT EXISTS location_activity_types (
	location_id TEXT NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
	activity_type TEXT NOT NULL,
	PRIMARY KEY (location_id, activity_type)
);

-- Per-user location favorites
CREATE TABLE IF NOT EXISTS location_user_favorites (
	location_id TEXT NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
	user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	PRIMARY KEY (location_id, user_id)
);

-- Activities (optional hierarchy like locations; soft reference to a
-- location)
CREATE TABLE IF NOT EXISTS activities (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	start_at DATETIME,
	duration_secs INTEGER,
	location_id TEXT REFERENCES locations(id) ON DELETE SET NULL,
	parent_id TEXT REFERENCES activities(id) ON DELETE SET NULL
);
CREATE INDEX IF NOT EXISTS idx_activities_location ON activities(location_id);
CREATE INDEX IF NOT EXISTS idx_activities_parent ON activities(parent_id);

-- Types of an activity
CREATE TABLE IF NOT EXISTS activity_types (
	activity_id TEXT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
	activity_type TEXT NOT NULL,
	PRIMARY KEY (activity_id, activity_type)
);

-- Participants of an activity
CREATE TABLE IF NOT EXISTS activity_users (
	activity_id TEXT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
	user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	PRIMARY KEY (activity_id, user_id)
);

-- Manufacturers (hidden by default; visibility governed by access grants)
CREATE TABLE IF NOT EXISTS manufacturers (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	short_name TEXT,
	description TEXT,
	website TEXT,
	hidden INTEGER NOT NULL DEFAULT 1
);

-- Access grants for hidden manufacturers
CREATE TABLE IF NOT EXISTS manufacturer_accesses (
	manufacturer_id TEXT NOT NULL REFERENCES manufacturers(id) ON DELETE CASCADE,
	user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	role TEXT NOT NULL DEFAULT 'shared'
		CHECK(role IN ('owner', 'admin', 'editor', 'shared')),
	PRIMARY KEY (manufacturer_id, user_id)
);

-- Financial transactions; every reference survives deletion of its
-- target as NULL
CREATE TABLE IF NOT EXISTS transactions (
	id TEXT PRIMARY KEY,
	activity_id TEXT REFERENCES activities(id) ON DELETE SET NULL,
	location_id TEXT REFERENCES locations(id) ON DELETE SET NULL,
	user_id TEXT REFERENCES users(id) ON DELETE SET NULL,
	occurred_at DATETIME,
	amount INTEGER,
	category TEXT,
	description TEXT,
	note TEXT
);
CREATE INDEX IF NOT EXISTS idx_transactions_activity ON transactions(activity_id);
CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id);
`

// GetSchemaSQL returns the authoritative schema. Tests must use this
// instead of hardcoding CREATE TABLE statements.
func GetSchemaSQL() string {
	return SchemaSQL
}
