package store

import (
	"sort"
	"strings"

	"github.com/lubu-ai/soletrack/internal/model"
)

// Filters are AND-combined; an empty value passes everything through.
// Search is a case-insensitive substring match, the rest are exact.
type Filters struct {
	Search   string
	Type     string
	Size     string
	Location string
}

// Active reports whether any filter is set.
func (f Filters) Active() bool {
	return f.Search != "" || f.Type != "" || f.Size != "" || f.Location != ""
}

// Sort names the active sort field and direction.
type Sort struct {
	Field string
	Desc  bool
}

// SetSearch updates the free-text search and recomputes the view.
func (s *Store) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Search = query
	s.applyFiltersLocked()
}

// SetTypeFilter updates the exact-match type filter.
func (s *Store) SetTypeFilter(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Type = value
	s.applyFiltersLocked()
}

// SetSizeFilter updates the exact-match size filter.
func (s *Store) SetSizeFilter(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Size = value
	s.applyFiltersLocked()
}

// SetLocationFilter updates the exact-match location filter.
func (s *Store) SetLocationFilter(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Location = value
	s.applyFiltersLocked()
}

// ClearFilters resets all filters.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = Filters{}
	s.applyFiltersLocked()
}

// SortBy sorts by field, toggling direction on a repeated field and
// starting ascending on a new one.
func (s *Store) SortBy(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sort.Field == field {
		s.sort.Desc = !s.sort.Desc
	} else {
		s.sort = Sort{Field: field}
	}
	s.applyFiltersLocked()
}

// Filters returns the active criteria.
func (s *Store) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Sorting returns the active sort.
func (s *Store) Sorting() Sort {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// applyFiltersLocked recomputes the derived view: search, then exact
// filters, then a stable sort. Pure over (assets, filters, sort); the
// source collection is never reordered. Must hold s.mu.
func (s *Store) applyFiltersLocked() {
	s.filtered = FilteredView(s.assets, s.filters, s.sort)
}

// FilteredView derives the visible sequence from a collection and the
// filter/sort criteria. It copies its input and is safe to re-apply to its
// own output.
func FilteredView(assets []model.Asset, filters Filters, sortBy Sort) []model.Asset {
	result := make([]model.Asset, 0, len(assets))

	query := strings.ToLower(filters.Search)
	for _, a := range assets {
		if query != "" && !matchesSearch(a, query) {
			continue
		}
		if filters.Type != "" && a.Type != filters.Type {
			continue
		}
		if filters.Size != "" && a.Size != filters.Size {
			continue
		}
		if filters.Location != "" && a.Location != filters.Location {
			continue
		}
		result = append(result, a)
	}

	// Stable, so equal keys keep their input order.
	sort.SliceStable(result, func(i, j int) bool {
		a := strings.ToLower(result[i].Field(sortBy.Field))
		b := strings.ToLower(result[j].Field(sortBy.Field))
		if sortBy.Desc {
			return a > b
		}
		return a < b
	})
	return result
}

func matchesSearch(a model.Asset, query string) bool {
	for _, field := range [...]string{a.SerialNumber, a.Type, a.Size, a.Location, a.Notes} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Stats summarizes the filtered view so the header reflects active
// filters.
type Stats struct {
	Core        int
	Advanced    int
	WithClients int
	LostDamaged int
	Sizes       map[string]int
}

// Stats derives header counts from the current filtered view and the
// configured reference lists.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{Sizes: make(map[string]int, len(s.lists.Sizes))}
	for _, size := range s.lists.Sizes {
		stats.Sizes[size.Code] = 0
	}

	for _, a := range s.filtered {
		switch a.Type {
		case model.TypeCore:
			stats.Core++
		case model.TypeAdvanced:
			stats.Advanced++
		}
		if _, ok := stats.Sizes[a.Size]; ok {
			stats.Sizes[a.Size]++
		}
		switch model.ClassifyLocation(a.Location, s.lists.TeamMembers, s.lists.Clients) {
		case model.LocationLost, model.LocationDamaged:
			stats.LostDamaged++
		case model.LocationClient:
			stats.WithClients++
		}
	}
	return stats
}

// UniqueLocations returns the distinct non-blank locations across the
// whole collection, sorted, for the location filter.
func (s *Store) UniqueLocations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	for _, a := range s.assets {
		if loc := strings.TrimSpace(a.Location); loc != "" {
			seen[loc] = struct{}{}
		}
	}
	locs := make([]string, 0, len(seen))
	for loc := range seen {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	return locs
}

// KnownLocations merges the reference lists, the status keywords, and the
// locations already in use, sorted, for the add form's suggestions.
func (s *Store) KnownLocations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	for _, m := range s.lists.TeamMembers {
		seen[m] = struct{}{}
	}
	for _, c := range s.lists.Clients {
		seen[c] = struct{}{}
	}
	for _, kw := range [...]string{"Stock", "Lost", "Damaged", "Returned"} {
		seen[kw] = struct{}{}
	}
	for _, a := range s.assets {
		if loc := strings.TrimSpace(a.Location); loc != "" {
			seen[loc] = struct{}{}
		}
	}
	locs := make([]string, 0, len(seen))
	for loc := range seen {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	return locs
}
