package model

import (
	"reflect"
	"testing"
)

func TestDiff_SingleFieldChange(t *testing.T) {
	oldAsset := Asset{Location: "Stock"}
	newAsset := Asset{Location: "Ahmed"}

	changes := Diff(oldAsset, newAsset)
	want := []FieldChange{{Field: "location", OldValue: "Stock", NewValue: "Ahmed"}}
	if !reflect.DeepEqual(changes, want) {
		t.Fatalf("Diff = %#v, want %#v", changes, want)
	}
}

func TestDiff_IdenticalIsEmpty(t *testing.T) {
	a := Asset{SerialNumber: "A1B2", Type: TypeCore, Size: "C", Location: "Stock", Notes: "x"}
	if changes := Diff(a, a); len(changes) != 0 {
		t.Fatalf("Diff(X, X) = %#v, want empty", changes)
	}
}

func TestDiff_FixedFieldOrder(t *testing.T) {
	oldAsset := Asset{SerialNumber: "AAAA", Type: TypeCore, Size: "B", Location: "Stock", Notes: "old"}
	newAsset := Asset{SerialNumber: "BBBB", Type: TypeAdvanced, Size: "C", Location: "Luca", Notes: "new"}

	changes := Diff(oldAsset, newAsset)
	gotOrder := make([]string, len(changes))
	for i, c := range changes {
		gotOrder[i] = c.Field
	}
	want := []string{"serialNumber", "type", "size", "location", "notes"}
	if !reflect.DeepEqual(gotOrder, want) {
		t.Fatalf("change order = %v, want %v", gotOrder, want)
	}
}

func TestDiff_IgnoresUntrackedFields(t *testing.T) {
	oldAsset := Asset{Enclosure: "New", DateSent: "2026-01-01T00:00:00Z"}
	newAsset := Asset{Enclosure: "Worn", DateSent: ""}
	if changes := Diff(oldAsset, newAsset); len(changes) != 0 {
		t.Fatalf("Diff tracked untracked fields: %#v", changes)
	}
}
