package model

import (
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Asset types.
const (
	TypeCore     = "Core"
	TypeAdvanced = "Advanced"
)

// Asset is one tracked insole. All persisted fields are strings; dates are
// ISO 8601 or empty. JSON tags match the remote spreadsheet's column names.
type Asset struct {
	ID           string `json:"id"`
	SerialNumber string `json:"serialNumber"`
	Type         string `json:"type"`
	Size         string `json:"size"`
	Location     string `json:"location"`
	Enclosure    string `json:"enclosure"`
	PairStatus   string `json:"pairStatus"`
	DateAdded    string `json:"dateAdded"`
	DateSent     string `json:"dateSent"`
	Notes        string `json:"notes"`
	LastModified string `json:"lastModified"`

	// Highlight marks a freshly created asset for a short-lived visual cue.
	// Never persisted.
	Highlight bool `json:"-"`
}

// Field returns the named field's value, or "" for unknown names.
// Field names follow the JSON tags.
func (a Asset) Field(name string) string {
	switch name {
	case "id":
		return a.ID
	case "serialNumber":
		return a.SerialNumber
	case "type":
		return a.Type
	case "size":
		return a.Size
	case "location":
		return a.Location
	case "enclosure":
		return a.Enclosure
	case "pairStatus":
		return a.PairStatus
	case "dateAdded":
		return a.DateAdded
	case "dateSent":
		return a.DateSent
	case "notes":
		return a.Notes
	case "lastModified":
		return a.LastModified
	}
	return ""
}

// SetField assigns the named field. Returns false for unknown or immutable
// field names (id is assigned once, lastModified is stamped by the store).
func (a *Asset) SetField(name, value string) bool {
	switch name {
	case "serialNumber":
		a.SerialNumber = value
	case "type":
		a.Type = value
	case "size":
		a.Size = value
	case "location":
		a.Location = value
	case "enclosure":
		a.Enclosure = value
	case "pairStatus":
		a.PairStatus = value
	case "dateAdded":
		a.DateAdded = value
	case "dateSent":
		a.DateSent = value
	case "notes":
		a.Notes = value
	default:
		return false
	}
	return true
}

var serialPattern = regexp.MustCompile(`^[A-Za-z0-9]{4}$`)

// IsValidSerial reports whether serial is acceptable: empty, or exactly
// four alphanumeric characters. Serials are optional and not unique.
func IsValidSerial(serial string) bool {
	return serial == "" || serialPattern.MatchString(serial)
}

// NormalizeSerial trims and uppercases a serial number.
func NormalizeSerial(serial string) string {
	return strings.ToUpper(strings.TrimSpace(serial))
}

const serialCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSerial returns a random four-character serial suggestion.
func GenerateSerial() string {
	b := make([]byte, 4)
	for i := range b {
		b[i] = serialCharset[rand.Intn(len(serialCharset))]
	}
	return string(b)
}

// NewID returns a fresh client-assigned asset id. The remote store may
// replace it with its own authoritative id on create.
func NewID() string {
	return uuid.NewString()
}

// NowISO returns the current UTC time in ISO 8601, the timestamp format
// used for dateAdded, lastModified and the cache sync marker.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ValidationError reports client-side input rejected before any I/O.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
