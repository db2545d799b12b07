// Package state holds the client-side view of fetched data. Stores are owned by the
// caller, mutated only through setters, and push a snapshot to subscribers after
// every change.
package state

import (
	"sync"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/dispatch"
)

// DispatchState is a snapshot of the dispatch store. Records is never mutated after
// it has been handed out; every change builds a new slice.
type DispatchState struct {
	Records        []dispatch.Record
	SelectedRecord *dispatch.Record
	ActiveTab      dispatch.Tab
}

type DispatchStore struct {
	mu       sync.Mutex
	state    DispatchState
	watchers listeners[DispatchState]
}

func NewDispatchStore() *DispatchStore {
	return &DispatchStore{
		state: DispatchState{
			Records:   []dispatch.Record{},
			ActiveTab: dispatch.TabAll,
		},
	}
}

func (s *DispatchStore) Snapshot() DispatchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Records returns a copy of the list; changing it does not affect the store.
func (s *DispatchStore) Records() []dispatch.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dispatch.Record, len(s.state.Records))
	copy(out, s.state.Records)
	return out
}

func (s *DispatchStore) SelectedRecord() *dispatch.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRecord(s.state.SelectedRecord)
}

func (s *DispatchStore) ActiveTab() dispatch.Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActiveTab
}

// SetRecords replaces the whole list.
func (s *DispatchStore) SetRecords(records []dispatch.Record) {
	next := make([]dispatch.Record, len(records))
	copy(next, records)
	s.mutate(func(st *DispatchState) bool {
		st.Records = next
		return true
	})
}

// SetSelectedRecord replaces the selection; nil clears it.
func (s *DispatchStore) SetSelectedRecord(r *dispatch.Record) {
	sel := copyRecord(r)
	s.mutate(func(st *DispatchState) bool {
		st.SelectedRecord = sel
		return true
	})
}

func (s *DispatchStore) SetActiveTab(tab dispatch.Tab) {
	s.mutate(func(st *DispatchState) bool {
		st.ActiveTab = tab
		return true
	})
}

// UpdateRecord merges patch into the record with the given id. Other records keep
// their values and positions. An unknown id changes nothing and notifies no one.
func (s *DispatchStore) UpdateRecord(id string, patch dispatch.Patch) {
	s.mutate(func(st *DispatchState) bool {
		idx := -1
		for i := range st.Records {
			if st.Records[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}
		next := make([]dispatch.Record, len(st.Records))
		copy(next, st.Records)
		next[idx] = next[idx].Merge(patch)
		st.Records = next
		return true
	})
}

// AddRecord puts r in front of the list.
func (s *DispatchStore) AddRecord(r dispatch.Record) {
	s.mutate(func(st *DispatchState) bool {
		next := make([]dispatch.Record, 0, len(st.Records)+1)
		next = append(next, r)
		next = append(next, st.Records...)
		st.Records = next
		return true
	})
}

// Subscribe registers fn for snapshots after each change and returns its cancel func.
func (s *DispatchStore) Subscribe(fn func(DispatchState)) (unsubscribe func()) {
	s.mu.Lock()
	x := s.watchers.add(fn)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.watchers.remove(x)
			s.mu.Unlock()
		})
	}
}

// mutate applies fn under the lock and notifies outside it when fn reports a change.
func (s *DispatchStore) mutate(fn func(st *DispatchState) bool) {
	s.mu.Lock()
	if !fn(&s.state) {
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked()
	fns := s.watchers.fns()
	s.mu.Unlock()

	notify(fns, snap)
}

func (s *DispatchStore) snapshotLocked() DispatchState {
	return DispatchState{
		Records:        s.state.Records,
		SelectedRecord: copyRecord(s.state.SelectedRecord),
		ActiveTab:      s.state.ActiveTab,
	}
}

func copyRecord(r *dispatch.Record) *dispatch.Record {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
