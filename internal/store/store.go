package store

import (
	"context"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/roadwatch-io/trackview/internal/model"
	"github.com/roadwatch-io/trackview/internal/tenant"
)

// Fetcher is the remote surface the store drives. *gateway.Client implements it.
type Fetcher interface {
	FetchAll(ctx context.Context, credential string) ([]model.Record, error)
	FetchByID(ctx context.Context, credential string, id int64) ([]model.Record, error)
}

// Snapshot is the published view of the store's state. Slices and maps are
// copies; mutating a snapshot never affects the store.
type Snapshot struct {
	RawRecords     []model.Record
	FinalRecords   []model.Record
	FilterText     string
	FilterColumn   model.FilterColumn
	SortColumn     model.SortColumn
	SortDescending bool
	VisibleColumns map[model.DisplayColumn]bool
	ActiveTenant   tenant.Tenant
	IDQueryText    string
	IsLoading      bool
	Selected       *model.Record
	LastFailure    error
}

// Store owns every mutable input of the query pipeline and the derived final
// view. All mutation goes through its methods; fetch completions apply under
// the same lock. Subscribers are notified after every published change.
type Store struct {
	fetcher  Fetcher
	registry *tenant.Registry
	log      zerolog.Logger

	mu             sync.Mutex
	rawRecords     []model.Record
	finalRecords   []model.Record
	filterText     string
	filterColumn   model.FilterColumn
	sortColumn     model.SortColumn
	sortDescending bool
	visibleColumns map[model.DisplayColumn]bool
	activeTenant   tenant.Tenant
	idQueryText    string
	isLoading      bool
	selected       *model.Record
	lastFailure    error
	fetchGen       uint64

	subMu sync.Mutex
	subs  []func()
}

// New returns a store with the default snapshot: empty record set, timestamp
// sort descending, all columns visible, the registry's default tenant active.
func New(fetcher Fetcher, registry *tenant.Registry, log zerolog.Logger) *Store {
	visible := make(map[model.DisplayColumn]bool, len(model.DisplayColumns()))
	for _, c := range model.DisplayColumns() {
		visible[c] = true
	}
	return &Store{
		fetcher:        fetcher,
		registry:       registry,
		log:            log,
		filterColumn:   model.FilterAll,
		sortColumn:     model.SortTimestamp,
		sortDescending: true,
		visibleColumns: visible,
		activeTenant:   registry.Default(),
	}
}

// OnChange registers fn to run after every published state change. fn is
// called outside the store lock and may call Snapshot.
func (s *Store) OnChange(fn func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	visible := make(map[model.DisplayColumn]bool, len(s.visibleColumns))
	for c, v := range s.visibleColumns {
		visible[c] = v
	}
	var selected *model.Record
	if s.selected != nil {
		cp := *s.selected
		selected = &cp
	}
	return Snapshot{
		RawRecords:     append([]model.Record(nil), s.rawRecords...),
		FinalRecords:   append([]model.Record(nil), s.finalRecords...),
		FilterText:     s.filterText,
		FilterColumn:   s.filterColumn,
		SortColumn:     s.sortColumn,
		SortDescending: s.sortDescending,
		VisibleColumns: visible,
		ActiveTenant:   s.activeTenant,
		IDQueryText:    s.idQueryText,
		IsLoading:      s.isLoading,
		Selected:       selected,
		LastFailure:    s.lastFailure,
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := append(([]func())(nil), s.subs...)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) rederiveLocked() {
	s.finalRecords = derive(s.rawRecords, s.filterText, s.filterColumn, s.sortColumn, s.sortDescending)
}

// SetFilterText replaces the free-text filter and recomputes the view.
func (s *Store) SetFilterText(text string) {
	s.mu.Lock()
	s.filterText = text
	s.rederiveLocked()
	s.mu.Unlock()
	s.notify()
}

// SetFilterColumn replaces the filter target column and recomputes the view.
func (s *Store) SetFilterColumn(col model.FilterColumn) {
	s.mu.Lock()
	s.filterColumn = col
	s.rederiveLocked()
	s.mu.Unlock()
	s.notify()
}

// ClearFilter empties the filter text.
func (s *Store) ClearFilter() {
	s.SetFilterText("")
}

// SortBy sorts by col. Selecting the current sort column flips the direction;
// a new column always starts descending.
func (s *Store) SortBy(col model.SortColumn) {
	s.mu.Lock()
	if s.sortColumn == col {
		s.sortDescending = !s.sortDescending
	} else {
		s.sortColumn = col
		s.sortDescending = true
	}
	s.rederiveLocked()
	s.mu.Unlock()
	s.notify()
}

// ToggleColumnVisible hides col if it is visible and at least one other column
// would remain, shows it if hidden. Hiding the last visible column is a no-op.
func (s *Store) ToggleColumnVisible(col model.DisplayColumn) {
	s.mu.Lock()
	if s.visibleColumns[col] {
		if s.countVisibleLocked() > 1 {
			delete(s.visibleColumns, col)
		}
	} else {
		s.visibleColumns[col] = true
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) countVisibleLocked() int {
	n := 0
	for _, v := range s.visibleColumns {
		if v {
			n++
		}
	}
	return n
}

// SelectRecord marks r as the record under detail inspection.
func (s *Store) SelectRecord(r model.Record) {
	s.mu.Lock()
	cp := r
	s.selected = &cp
	s.mu.Unlock()
	s.notify()
}

// DismissSelection clears the selected record.
func (s *Store) DismissSelection() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
	s.notify()
}

// SetIDQueryText replaces the pending id input verbatim. No validation happens
// until LookupByID.
func (s *Store) SetIDQueryText(text string) {
	s.mu.Lock()
	s.idQueryText = text
	s.mu.Unlock()
	s.notify()
}

// SwitchTenant activates t, clears the filter text, and refreshes. Switching
// to the already-active tenant is a no-op.
func (s *Store) SwitchTenant(t tenant.Tenant) {
	s.mu.Lock()
	if t == s.activeTenant {
		s.mu.Unlock()
		return
	}
	s.activeTenant = t
	s.filterText = ""
	s.rederiveLocked()
	s.mu.Unlock()
	s.notify()
	s.Refresh()
}

// Refresh clears the pending id input and replaces the raw record set with a
// fresh fetch-all for the active tenant. The fetch runs in the background; a
// completion that is no longer the latest issued fetch is discarded.
func (s *Store) Refresh() {
	s.mu.Lock()
	s.fetchGen++
	gen := s.fetchGen
	cred := s.activeTenant.Credential
	name := s.activeTenant.Name
	s.isLoading = true
	s.idQueryText = ""
	s.mu.Unlock()
	s.notify()

	go s.runFetch(gen, name, func(ctx context.Context) ([]model.Record, error) {
		return s.fetcher.FetchAll(ctx, cred)
	})
}

// LookupByID parses the pending id text and fetches matching records. When the
// text is not a valid 64-bit integer nothing happens: no fetch is issued and
// the state is left untouched.
func (s *Store) LookupByID() {
	s.mu.Lock()
	raw := s.idQueryText
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.mu.Unlock()
		s.log.Debug().Str("input", raw).Msg("ignoring unparsable id query")
		return
	}
	s.fetchGen++
	gen := s.fetchGen
	cred := s.activeTenant.Credential
	name := s.activeTenant.Name
	s.isLoading = true
	s.filterText = ""
	s.rederiveLocked()
	s.mu.Unlock()
	s.notify()

	go s.runFetch(gen, name, func(ctx context.Context) ([]model.Record, error) {
		return s.fetcher.FetchByID(ctx, cred, id)
	})
}

// runFetch applies a fetch result. On failure the raw set degrades to empty
// and the cause is kept on the snapshot; the error never propagates further.
func (s *Store) runFetch(gen uint64, tenantName string, call func(context.Context) ([]model.Record, error)) {
	records, err := call(context.Background())

	s.mu.Lock()
	if gen != s.fetchGen {
		s.mu.Unlock()
		s.log.Debug().Uint64("generation", gen).Msg("discarding stale fetch response")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Str("tenant", tenantName).Msg("fetch failed")
		s.rawRecords = nil
		s.lastFailure = err
	} else {
		s.rawRecords = records
		s.lastFailure = nil
	}
	s.isLoading = false
	s.rederiveLocked()
	s.mu.Unlock()
	s.notify()
}
