package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestField_ZeroValueIsUnset(t *testing.T) {
	var f Field[string]
	if !f.IsUnset() {
		t.Error("zero Field is not unset")
	}
	if f.IsClear() {
		t.Error("zero Field reports clear")
	}
	if _, ok := f.Value(); ok {
		t.Error("zero Field reports a value")
	}
}

func TestField_Set(t *testing.T) {
	f := Set("climbing")
	if f.IsUnset() || f.IsClear() {
		t.Errorf("set Field reports unset=%v clear=%v", f.IsUnset(), f.IsClear())
	}
	v, ok := f.Value()
	if !ok || v != "climbing" {
		t.Errorf("Value() = %q, %v; want climbing, true", v, ok)
	}
}

func TestField_SetZeroValue(t *testing.T) {
	// Setting the type's zero value is distinct from clearing.
	f := Set("")
	v, ok := f.Value()
	if !ok || v != "" {
		t.Errorf("Value() = %q, %v; want empty string, true", v, ok)
	}
	if f.IsClear() {
		t.Error("Set(\"\") reports clear")
	}
}

func TestLocationRef_BothFormsResolveToTheID(t *testing.T) {
	id := uuid.New()
	if got := LocationByID(id).ResolveID(); got != id {
		t.Errorf("LocationByID.ResolveID() = %s, want %s", got, id)
	}
	if got := LocationOf(&Location{ID: id}).ResolveID(); got != id {
		t.Errorf("LocationOf.ResolveID() = %s, want %s", got, id)
	}
}

func TestField_Clear(t *testing.T) {
	f := Clear[int64]()
	if !f.IsClear() {
		t.Error("cleared Field does not report clear")
	}
	if f.IsUnset() {
		t.Error("cleared Field reports unset")
	}
	if _, ok := f.Value(); ok {
		t.Error("cleared Field reports a value")
	}
}
