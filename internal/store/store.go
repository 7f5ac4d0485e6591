package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lubu-ai/soletrack/internal/api"
	"github.com/lubu-ai/soletrack/internal/cache"
	"github.com/lubu-ai/soletrack/internal/model"
	"github.com/lubu-ai/soletrack/internal/settings"
)

const highlightFor = 2500 * time.Millisecond

// Store is the in-memory source of truth for the asset collection, the
// derived filtered view, and the pending-operation flags. Mutations
// coordinate the remote client and the local cache and always end by
// recomputing the filtered view.
//
// The per-class flags (syncing, saving, deleting) are advisory cooperative
// locks: a second operation of the same class started while one is in
// flight is dropped, not queued.
type Store struct {
	mu sync.Mutex

	remote   api.Remote
	cache    *cache.Cache
	settings *settings.Store
	notifier *Notifier

	assets   []model.Asset
	filtered []model.Asset
	lists    settings.Lists

	lastSynced string
	loading    bool
	syncing    bool
	saving     bool
	deleting   bool
	offline    bool

	filters Filters
	sort    Sort

	history        []model.HistoryEntry
	historyFor     string
	historyLoading bool

	highlightFor time.Duration
	nowISO       func() string
}

// New wires a Store. The settings store is read once here; later edits go
// through UpdateLists.
func New(remote api.Remote, c *cache.Cache, s *settings.Store, notifier *Notifier) *Store {
	if notifier == nil {
		notifier = NewNotifier()
	}
	return &Store{
		remote:       remote,
		cache:        c,
		settings:     s,
		notifier:     notifier,
		lists:        s.Load(),
		loading:      true,
		sort:         Sort{Field: "dateAdded", Desc: true},
		highlightFor: highlightFor,
		nowISO:       model.NowISO,
	}
}

// Initialize loads the cache for instant rendering, then synchronizes from
// the remote store when configured and online. Always ends with a fresh
// filtered view.
func (s *Store) Initialize(ctx context.Context) {
	assets, syncedAt := s.cache.Load()

	s.mu.Lock()
	s.assets = assets
	s.lastSynced = syncedAt
	s.loading = len(assets) == 0
	s.applyFiltersLocked()
	shouldSync := s.remote.Configured() && !s.offline
	s.mu.Unlock()

	if shouldSync {
		s.Synchronize(ctx)
	}

	s.mu.Lock()
	s.loading = false
	s.applyFiltersLocked()
	s.mu.Unlock()
}

// Synchronize replaces the collection wholesale from the remote store.
// No-op while another synchronize is in flight, when unconfigured, or
// while offline. Failures keep the existing collection and surface a
// notification instead of propagating.
func (s *Store) Synchronize(ctx context.Context) {
	s.mu.Lock()
	if s.syncing || s.offline || !s.remote.Configured() {
		s.mu.Unlock()
		return
	}
	s.syncing = true
	s.mu.Unlock()

	assets, err := s.remote.ListInsoles(ctx)

	s.mu.Lock()
	s.syncing = false
	if err != nil {
		s.mu.Unlock()
		logrus.WithError(err).Warn("sync failed")
		s.notifier.Push("Failed to sync - using cached data", SeverityError)
		return
	}
	if assets == nil {
		assets = []model.Asset{}
	}
	s.assets = assets
	s.lastSynced = s.nowISO()
	s.applyFiltersLocked()
	snapshot := cloneAssets(s.assets)
	syncedAt := s.lastSynced
	s.mu.Unlock()

	s.cache.Save(snapshot, syncedAt)
}

// Draft carries the add-form fields for Create. Dates arrive as entered
// (YYYY-MM-DD or ISO) and are normalized here.
type Draft struct {
	SerialNumber string
	Type         string
	Size         string
	Location     string
	Enclosure    string
	PairStatus   string
	DateAdded    string
	DateSent     string
	Notes        string
}

// Create validates the draft, writes it to the remote store when
// configured, and appends it to the collection. The client assigns a
// random id up front; if the remote store echoes its own id the local one
// is replaced. The new record carries a transient highlight that clears
// itself after a short delay.
func (s *Store) Create(ctx context.Context, draft Draft) {
	serial := model.NormalizeSerial(draft.SerialNumber)
	if !model.IsValidSerial(serial) {
		logrus.WithField("serial", draft.SerialNumber).Debug("create rejected: bad serial")
		s.notifier.Push("Serial number must be 4 alphanumeric characters", SeverityError)
		return
	}

	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return
	}
	s.saving = true
	s.mu.Unlock()

	asset := model.Asset{
		ID:           model.NewID(),
		SerialNumber: serial,
		Type:         draft.Type,
		Size:         draft.Size,
		Location:     strings.TrimSpace(draft.Location),
		Enclosure:    draft.Enclosure,
		PairStatus:   draft.PairStatus,
		DateAdded:    normalizeDate(draft.DateAdded),
		DateSent:     normalizeDate(draft.DateSent),
		Notes:        draft.Notes,
	}
	if asset.DateAdded == "" {
		asset.DateAdded = s.nowISO()
	}

	if s.remote.Configured() {
		stored, err := s.remote.AddInsole(ctx, asset)
		if err != nil {
			s.clearFlag(&s.saving)
			logrus.WithError(err).Warn("add failed")
			s.notifier.Push("Failed to save - "+err.Error(), SeverityError)
			return
		}
		if stored != nil && stored.ID != "" {
			asset.ID = stored.ID
		}
	}

	asset.LastModified = s.nowISO()
	asset.Highlight = true

	s.mu.Lock()
	s.assets = append(s.assets, asset)
	s.applyFiltersLocked()
	snapshot := cloneAssets(s.assets)
	syncedAt := s.lastSynced
	s.saving = false
	s.mu.Unlock()

	id := asset.ID
	time.AfterFunc(s.highlightFor, func() {
		s.clearHighlight(id)
	})

	s.cache.Save(snapshot, syncedAt)
	s.notifier.Push("Insole added", SeveritySuccess)
}

// UpdateField applies one inline edit. The input is trimmed (serials also
// uppercased); an unchanged value is a complete no-op. The remote write
// settles first; local state only mutates after it succeeds, or
// immediately when unconfigured. The update payload carries the
// field-change records so the remote store can append a history entry.
func (s *Store) UpdateField(ctx context.Context, id, field, rawValue string) {
	value := strings.TrimSpace(rawValue)
	if field == "serialNumber" {
		value = model.NormalizeSerial(value)
	}

	s.mu.Lock()
	idx := s.indexByIDLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	current := s.assets[idx]
	if current.Field(field) == value {
		s.mu.Unlock()
		return
	}
	if s.saving {
		s.mu.Unlock()
		return
	}
	s.saving = true
	s.mu.Unlock()

	updated := current
	updated.SetField(field, value)

	if s.remote.Configured() {
		payload := map[string]any{"id": id, field: value}
		if changes := model.Diff(current, updated); len(changes) > 0 {
			payload["changes"] = changes
		}
		if err := s.remote.UpdateInsole(ctx, payload); err != nil {
			s.clearFlag(&s.saving)
			logrus.WithError(err).WithField("field", field).Warn("update failed")
			s.notifier.Push("Failed to save - "+err.Error(), SeverityError)
			return
		}
	}

	s.mu.Lock()
	if idx = s.indexByIDLocked(id); idx >= 0 {
		s.assets[idx].SetField(field, value)
		s.assets[idx].LastModified = s.nowISO()
	}
	s.applyFiltersLocked()
	snapshot := cloneAssets(s.assets)
	syncedAt := s.lastSynced
	s.saving = false
	s.mu.Unlock()

	s.cache.Save(snapshot, syncedAt)
	s.notifier.Push("Updated", SeveritySuccess)
}

// Remove deletes an asset. The remote deletion runs first and gates the
// local removal: on remote failure the collection is left untouched. When
// unconfigured the record is removed locally right away.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	if s.deleting {
		s.mu.Unlock()
		return
	}
	s.deleting = true
	s.mu.Unlock()

	if s.remote.Configured() {
		if err := s.remote.DeleteInsole(ctx, id); err != nil {
			s.clearFlag(&s.deleting)
			logrus.WithError(err).Warn("delete failed")
			s.notifier.Push("Failed to delete - "+err.Error(), SeverityError)
			return
		}
	}

	s.mu.Lock()
	kept := s.assets[:0]
	for _, a := range s.assets {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.assets = kept
	s.applyFiltersLocked()
	snapshot := cloneAssets(s.assets)
	syncedAt := s.lastSynced
	s.deleting = false
	s.mu.Unlock()

	s.cache.Save(snapshot, syncedAt)
	s.notifier.Push("Insole deleted", SeveritySuccess)
}

// LoadHistory fetches an asset's change log, replacing the displayed list
// wholesale. History is never cached; a failure leaves the list empty and
// surfaces a notification.
func (s *Store) LoadHistory(ctx context.Context, id string) {
	s.mu.Lock()
	if s.historyLoading {
		s.mu.Unlock()
		return
	}
	s.historyLoading = true
	s.historyFor = id
	s.history = nil
	configured := s.remote.Configured()
	s.mu.Unlock()

	if !configured {
		s.mu.Lock()
		s.historyLoading = false
		s.mu.Unlock()
		return
	}

	entries, err := s.remote.FetchHistory(ctx, id)

	s.mu.Lock()
	s.historyLoading = false
	if err != nil {
		s.mu.Unlock()
		logrus.WithError(err).Warn("history fetch failed")
		s.notifier.Push("Failed to load history", SeverityError)
		return
	}
	s.history = entries
	s.mu.Unlock()
}

// History returns the loaded entries, the asset id they belong to, and
// whether a fetch is in flight.
func (s *Store) History() ([]model.HistoryEntry, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]model.HistoryEntry, len(s.history))
	copy(entries, s.history)
	return entries, s.historyFor, s.historyLoading
}

// ClearHistory drops the displayed history when its overlay closes.
func (s *Store) ClearHistory() {
	s.mu.Lock()
	s.history = nil
	s.historyFor = ""
	s.mu.Unlock()
}

// UpdateLists validates and persists edited reference lists, then adopts
// them for filtering and badge derivation. The returned error keeps the
// settings editor open on validation failure.
func (s *Store) UpdateLists(lists settings.Lists) error {
	cleaned, err := s.settings.Save(lists)
	if err != nil {
		s.notifier.Push(err.Error(), SeverityError)
		return err
	}

	s.mu.Lock()
	s.lists = cleaned
	s.applyFiltersLocked()
	s.mu.Unlock()

	s.notifier.Push("Settings saved", SeveritySuccess)
	return nil
}

// SetOnline records the device connectivity signal. It returns true when
// the transition from offline to online should trigger exactly one
// synchronize.
func (s *Store) SetOnline(online bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	wasOffline := s.offline
	s.offline = !online
	return online && wasOffline && s.remote.Configured()
}

// Notify forwards a message to the notification queue.
func (s *Store) Notify(message string, severity Severity) {
	s.notifier.Push(message, severity)
}

// Notifications returns the live notification queue.
func (s *Store) Notifications() []Notification {
	return s.notifier.Active()
}

// Accessors. Each returns a copy or scalar under the lock.

func (s *Store) Loading() bool    { return s.flag(&s.loading) }
func (s *Store) Syncing() bool    { return s.flag(&s.syncing) }
func (s *Store) Saving() bool     { return s.flag(&s.saving) }
func (s *Store) Deleting() bool   { return s.flag(&s.deleting) }
func (s *Store) Offline() bool    { return s.flag(&s.offline) }
func (s *Store) Configured() bool { return s.remote.Configured() }

// LastSynced returns the ISO timestamp of the last successful sync, or "".
func (s *Store) LastSynced() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSynced
}

// Lists returns the active reference lists.
func (s *Store) Lists() settings.Lists {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists
}

// Filtered returns the current derived view.
func (s *Store) Filtered() []model.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAssets(s.filtered)
}

// Get returns the asset with the given id from the collection.
func (s *Store) Get(id string) (model.Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexByIDLocked(id); idx >= 0 {
		return s.assets[idx], true
	}
	return model.Asset{}, false
}

// Len returns the size of the unfiltered collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.assets)
}

func (s *Store) flag(f *bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *f
}

func (s *Store) clearFlag(f *bool) {
	s.mu.Lock()
	*f = false
	s.mu.Unlock()
}

func (s *Store) clearHighlight(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexByIDLocked(id); idx >= 0 {
		s.assets[idx].Highlight = false
		s.applyFiltersLocked()
	}
}

func (s *Store) indexByIDLocked(id string) int {
	for i := range s.assets {
		if s.assets[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAssets(assets []model.Asset) []model.Asset {
	if len(assets) == 0 {
		return nil
	}
	dup := make([]model.Asset, len(assets))
	copy(dup, assets)
	return dup
}

// normalizeDate keeps empty and ISO values as-is and widens bare
// YYYY-MM-DD form input to a full ISO timestamp at midnight UTC.
func normalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	return value
}
