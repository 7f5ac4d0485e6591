package model

import "testing"

func TestIsValidSerial(t *testing.T) {
	valid := []string{"", "A1b2", "ABCD", "0000", "zzzz"}
	for _, serial := range valid {
		if !IsValidSerial(serial) {
			t.Errorf("IsValidSerial(%q) = false, want true", serial)
		}
	}

	invalid := []string{"A1", "TOOLONG1", "A1!2", "ABC", "ABCDE", "AB D", "ÄBCD"}
	for _, serial := range invalid {
		if IsValidSerial(serial) {
			t.Errorf("IsValidSerial(%q) = true, want false", serial)
		}
	}
}

func TestNormalizeSerial(t *testing.T) {
	if got := NormalizeSerial("  a1b2 "); got != "A1B2" {
		t.Fatalf("NormalizeSerial = %q, want A1B2", got)
	}
	if got := NormalizeSerial(""); got != "" {
		t.Fatalf("NormalizeSerial(\"\") = %q, want empty", got)
	}
}

func TestGenerateSerialIsValid(t *testing.T) {
	for i := 0; i < 50; i++ {
		serial := GenerateSerial()
		if len(serial) != 4 || !IsValidSerial(serial) {
			t.Fatalf("GenerateSerial returned %q", serial)
		}
	}
}

func TestFieldRoundTrip(t *testing.T) {
	var a Asset
	fields := []string{
		"serialNumber", "type", "size", "location", "enclosure",
		"pairStatus", "dateAdded", "dateSent", "notes",
	}
	for _, field := range fields {
		if !a.SetField(field, "v-"+field) {
			t.Fatalf("SetField(%q) = false", field)
		}
	}
	for _, field := range fields {
		if got := a.Field(field); got != "v-"+field {
			t.Fatalf("Field(%q) = %q, want %q", field, got, "v-"+field)
		}
	}

	if a.SetField("id", "nope") {
		t.Fatal("SetField should refuse id")
	}
	if a.SetField("lastModified", "nope") {
		t.Fatal("SetField should refuse lastModified")
	}
	if got := a.Field("bogus"); got != "" {
		t.Fatalf("Field(bogus) = %q, want empty", got)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("NewID returned duplicate %q", id)
		}
		seen[id] = struct{}{}
	}
}
