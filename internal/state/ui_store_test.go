package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUIStoreShift(t *testing.T) {
	s := NewUIStore()
	assert.Equal(t, ShiftNone, s.CurrentShift())

	s.SetCurrentShift("Sáng")
	assert.Equal(t, "Sáng", s.CurrentShift())
}

func TestUIStoreTitleAndSubscribe(t *testing.T) {
	s := NewUIStore()
	assert.Empty(t, s.Title())

	var got []UIState
	unsubscribe := s.Subscribe(func(st UIState) { got = append(got, st) })
	s.SetTitle("Điều độ")
	s.SetCurrentShift("Chiều")
	unsubscribe()
	s.SetTitle("ignored")

	assert.Equal(t, []UIState{
		{Title: "Điều độ", CurrentShift: ShiftNone},
		{Title: "Điều độ", CurrentShift: "Chiều"},
	}, got)
	assert.Equal(t, UIState{Title: "ignored", CurrentShift: "Chiều"}, s.Snapshot())
}
