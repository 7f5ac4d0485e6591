// Package settings persists the editable reference lists: team members,
// clients and size codes. Each list lives in its own JSON file; absent or
// unparseable data falls back to built-in defaults. Saves replace whole
// lists and enforce that members and sizes stay non-empty.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lubu-ai/soletrack/internal/model"
)

const (
	teamMembersFile = "team_members.json"
	clientsFile     = "clients.json"
	sizesFile       = "sizes.json"
)

// Size is one entry of the size list: a short code and the shoe-size range
// it stands for.
type Size struct {
	Code  string `json:"code"`
	Range string `json:"range"`
}

// Lists is a snapshot of all reference lists, passed explicitly to the
// store and the badge logic instead of being looked up ambiently.
type Lists struct {
	TeamMembers []string
	Clients     []string
	Sizes       []Size
}

// DefaultLists returns the built-in reference lists.
func DefaultLists() Lists {
	return Lists{
		TeamMembers: []string{"Ahmed", "Luca"},
		Clients:     []string{"Spire", "HAUHSU"},
		Sizes: []Size{
			{Code: "B", Range: "38-39"},
			{Code: "C", Range: "40-41"},
			{Code: "D", Range: "42-43"},
			{Code: "E", Range: "44-45"},
		},
	}
}

// SizeLabel formats a size code with its configured range, e.g. "C (40-41)".
// Stale codes with no matching entry render as the bare code.
func (l Lists) SizeLabel(code string) string {
	for _, s := range l.Sizes {
		if s.Code == code {
			return s.Code + " (" + s.Range + ")"
		}
	}
	if code == "" {
		return "—"
	}
	return code
}

// SizeCodes returns the configured codes in list order.
func (l Lists) SizeCodes() []string {
	codes := make([]string, 0, len(l.Sizes))
	for _, s := range l.Sizes {
		codes = append(codes, s.Code)
	}
	return codes
}

// Store reads and writes the reference lists under a data directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Load returns the persisted lists, falling back to defaults per list when
// a file is missing or malformed.
func (s *Store) Load() Lists {
	defaults := DefaultLists()
	if s == nil || s.dir == "" {
		return defaults
	}

	lists := Lists{
		TeamMembers: defaults.TeamMembers,
		Clients:     defaults.Clients,
		Sizes:       defaults.Sizes,
	}
	var members []string
	if s.read(teamMembersFile, &members) {
		lists.TeamMembers = members
	}
	var clients []string
	if s.read(clientsFile, &clients) {
		lists.Clients = clients
	}
	var sizes []Size
	if s.read(sizesFile, &sizes) {
		lists.Sizes = sizes
	}
	return lists
}

// Save validates and persists all lists, replacing previous contents.
// Blank entries are dropped before validation; duplicates are kept as-is.
func (s *Store) Save(lists Lists) (Lists, error) {
	cleaned := Lists{}
	for _, m := range lists.TeamMembers {
		if m = strings.TrimSpace(m); m != "" {
			cleaned.TeamMembers = append(cleaned.TeamMembers, m)
		}
	}
	for _, c := range lists.Clients {
		if c = strings.TrimSpace(c); c != "" {
			cleaned.Clients = append(cleaned.Clients, c)
		}
	}
	for _, sz := range lists.Sizes {
		sz.Code = strings.TrimSpace(sz.Code)
		sz.Range = strings.TrimSpace(sz.Range)
		if sz.Code != "" && sz.Range != "" {
			cleaned.Sizes = append(cleaned.Sizes, sz)
		}
	}

	if len(cleaned.TeamMembers) == 0 {
		return Lists{}, &model.ValidationError{Msg: "at least one team member is required"}
	}
	if len(cleaned.Sizes) == 0 {
		return Lists{}, &model.ValidationError{Msg: "at least one size is required"}
	}

	if s != nil && s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			logrus.WithError(err).Debug("settings: create dir")
		} else {
			s.write(teamMembersFile, cleaned.TeamMembers)
			s.write(clientsFile, cleaned.Clients)
			s.write(sizesFile, cleaned.Sizes)
		}
	}
	return cleaned, nil
}

func (s *Store) read(name string, dest any) bool {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logrus.WithError(err).WithField("file", name).Debug("settings: decode")
		return false
	}
	return true
}

func (s *Store) write(name string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).WithField("file", name).Debug("settings: encode")
		return
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		logrus.WithError(err).WithField("file", name).Debug("settings: write")
	}
}
