// Package cli implements the cobra commands of the basecamp binary.
package cli

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/example/basecamp/internal/models"
)

// nullWord marks the "no value" entry in list-valued filter flags, e.g.
// --location null matches rows without a location.
const nullWord = "null"

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func parseIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := parseID(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseNullableIDs parses a filter list where the word "null" selects
// rows without a value in that column.
func parseNullableIDs(values []string) ([]uuid.NullUUID, error) {
	ids := make([]uuid.NullUUID, 0, len(values))
	for _, v := range values {
		if strings.EqualFold(v, nullWord) {
			ids = append(ids, uuid.NullUUID{})
			continue
		}
		id, err := parseID(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uuid.NullUUID{UUID: id, Valid: true})
	}
	return ids, nil
}

// parseNullableStrings parses a filter list where the word "null"
// selects rows without a value.
func parseNullableStrings(values []string) []sql.NullString {
	out := make([]sql.NullString, 0, len(values))
	for _, v := range values {
		if strings.EqualFold(v, nullWord) {
			out = append(out, sql.NullString{})
			continue
		}
		out = append(out, sql.NullString{String: v, Valid: true})
	}
	return out
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q (want RFC3339 or YYYY-MM-DD)", s)
}

// stringField reads a tri-state string flag: untouched when the flag was
// not given, cleared when given empty, set otherwise.
func stringField(cmd *cobra.Command, name string) models.Field[string] {
	if !cmd.Flags().Changed(name) {
		return models.Field[string]{}
	}
	v, _ := cmd.Flags().GetString(name)
	return models.Set(v)
}

// idField reads a tri-state ID flag; the word "null" clears the
// reference.
func idField(cmd *cobra.Command, name string) (models.Field[uuid.UUID], error) {
	if !cmd.Flags().Changed(name) {
		return models.Field[uuid.UUID]{}, nil
	}
	v, _ := cmd.Flags().GetString(name)
	if v == "" || strings.EqualFold(v, nullWord) {
		return models.Clear[uuid.UUID](), nil
	}
	id, err := parseID(v)
	if err != nil {
		return models.Field[uuid.UUID]{}, err
	}
	return models.Set(id), nil
}

// timeField reads a tri-state time flag; the word "null" clears it.
func timeField(cmd *cobra.Command, name string) (models.Field[time.Time], error) {
	if !cmd.Flags().Changed(name) {
		return models.Field[time.Time]{}, nil
	}
	v, _ := cmd.Flags().GetString(name)
	if v == "" || strings.EqualFold(v, nullWord) {
		return models.Clear[time.Time](), nil
	}
	t, err := parseTime(v)
	if err != nil {
		return models.Field[time.Time]{}, err
	}
	return models.Set(t), nil
}

// boolField reads a tri-state bool flag.
func boolField(cmd *cobra.Command, name string) models.Field[bool] {
	if !cmd.Flags().Changed(name) {
		return models.Field[bool]{}
	}
	v, _ := cmd.Flags().GetBool(name)
	return models.Set(v)
}

// boolFlag reads an optional bool flag as a pointer.
func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func pageFlags(cmd *cobra.Command) (skip, limit int) {
	skip, _ = cmd.Flags().GetInt("skip")
	limit, _ = cmd.Flags().GetInt("limit")
	return skip, limit
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int("skip", 0, "Number of rows to skip")
	cmd.Flags().Int("limit", 50, "Maximum number of rows")
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func formatID(id *uuid.UUID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}
