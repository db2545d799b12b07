package state

import "sync"

// ShiftNone is the placeholder shown until a shift has been picked.
const ShiftNone = "<Trống>"

type UIState struct {
	Title        string
	CurrentShift string
}

// UIStore keeps the page heading and the selected work shift.
type UIStore struct {
	mu       sync.Mutex
	state    UIState
	watchers listeners[UIState]
}

func NewUIStore() *UIStore {
	return &UIStore{state: UIState{CurrentShift: ShiftNone}}
}

func (s *UIStore) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Title
}

func (s *UIStore) CurrentShift() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentShift
}

func (s *UIStore) Snapshot() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *UIStore) SetTitle(title string) {
	s.set(func(st *UIState) { st.Title = title })
}

func (s *UIStore) SetCurrentShift(shift string) {
	s.set(func(st *UIState) { st.CurrentShift = shift })
}

func (s *UIStore) Subscribe(fn func(UIState)) (unsubscribe func()) {
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

func (s *UIStore) set(fn func(st *UIState)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state
	fns := s.watchers.fns()
	s.mu.Unlock()

	notify(fns, snap)
}
