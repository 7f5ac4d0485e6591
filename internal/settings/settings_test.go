package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lubu-ai/soletrack/internal/model"
)

func TestLoadDefaultsWhenNothingPersisted(t *testing.T) {
	lists := New(t.TempDir()).Load()
	assert.Equal(t, []string{"Ahmed", "Luca"}, lists.TeamMembers)
	assert.Equal(t, []string{"Spire", "HAUHSU"}, lists.Clients)
	require.Len(t, lists.Sizes, 4)
	assert.Equal(t, Size{Code: "B", Range: "38-39"}, lists.Sizes[0])
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	saved, err := s.Save(Lists{
		TeamMembers: []string{"Mira"},
		Clients:     []string{"Northside"},
		Sizes:       []Size{{Code: "F", Range: "46-47"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Mira"}, saved.TeamMembers)

	loaded := s.Load()
	assert.Equal(t, saved, loaded)
}

func TestSaveDropsBlankEntries(t *testing.T) {
	saved, err := New(t.TempDir()).Save(Lists{
		TeamMembers: []string{"  Ahmed  ", "", "   "},
		Clients:     []string{"", "Spire"},
		Sizes:       []Size{{Code: " C ", Range: " 40-41 "}, {Code: "D", Range: ""}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ahmed"}, saved.TeamMembers)
	assert.Equal(t, []string{"Spire"}, saved.Clients)
	assert.Equal(t, []Size{{Code: "C", Range: "40-41"}}, saved.Sizes)
}

func TestSaveRequiresTeamMembersAndSizes(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.Save(Lists{Sizes: []Size{{Code: "C", Range: "40-41"}}})
	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Msg, "team member")

	_, err = s.Save(Lists{TeamMembers: []string{"Ahmed"}})
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Msg, "size")
}

func TestSaveAllowsEmptyClients(t *testing.T) {
	saved, err := New(t.TempDir()).Save(Lists{
		TeamMembers: []string{"Ahmed"},
		Sizes:       []Size{{Code: "C", Range: "40-41"}},
	})
	require.NoError(t, err)
	assert.Empty(t, saved.Clients)
}

func TestLoadMalformedFileFallsBackPerList(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	_, err := s.Save(Lists{
		TeamMembers: []string{"Mira"},
		Clients:     []string{"Northside"},
		Sizes:       []Size{{Code: "F", Range: "46-47"}},
	})
	require.NoError(t, err)

	// Corrupt only the clients file; the other lists must survive.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clients.json"), []byte("oops"), 0o644))

	lists := s.Load()
	assert.Equal(t, []string{"Mira"}, lists.TeamMembers)
	assert.Equal(t, []string{"Spire", "HAUHSU"}, lists.Clients)
	assert.Equal(t, []Size{{Code: "F", Range: "46-47"}}, lists.Sizes)
}

func TestSizeLabel(t *testing.T) {
	lists := DefaultLists()
	assert.Equal(t, "C (40-41)", lists.SizeLabel("C"))
	assert.Equal(t, "Z", lists.SizeLabel("Z"))
	assert.Equal(t, "—", lists.SizeLabel(""))
}

func TestSizeCodes(t *testing.T) {
	assert.Equal(t, []string{"B", "C", "D", "E"}, DefaultLists().SizeCodes())
}
