package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/dispatch"
)

func ptr[V any](v V) *V { return &v }

func sampleRecords() []dispatch.Record {
	return []dispatch.Record{
		{ID: "r1", Status: dispatch.StatusEntered, PlateNumber: "51B-123.45", PassengersArrived: 20},
		{ID: "r2", Status: dispatch.StatusPaid, PlateNumber: "29A-678.90", Notes: "late"},
		{ID: "r3", Status: dispatch.StatusDeparted, PlateNumber: "43C-111.22"},
	}
}

func TestNewDispatchStoreDefaults(t *testing.T) {
	s := NewDispatchStore()
	assert.Empty(t, s.Records())
	assert.NotNil(t, s.Records())
	assert.Nil(t, s.SelectedRecord())
	assert.Equal(t, dispatch.TabAll, s.ActiveTab())
}

func TestUpdateRecordMergesOnlyMatchingRecord(t *testing.T) {
	s := NewDispatchStore()
	s.SetRecords(sampleRecords())
	before := s.Records()

	s.UpdateRecord("r2", dispatch.Patch{
		Status:              ptr(dispatch.StatusDepartureOrdered),
		PassengersDeparting: ptr(31),
	})

	after := s.Records()
	require.Len(t, after, 3)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])

	want := before[1]
	want.Status = dispatch.StatusDepartureOrdered
	want.PassengersDeparting = 31
	assert.Equal(t, want, after[1])
	assert.Equal(t, "late", after[1].Notes)

	// the earlier snapshot is untouched
	assert.Equal(t, dispatch.StatusPaid, before[1].Status)
}

func TestUpdateRecordUnknownIDIsNoop(t *testing.T) {
	s := NewDispatchStore()
	s.SetRecords(sampleRecords())
	calls := 0
	s.Subscribe(func(DispatchState) { calls++ })

	s.UpdateRecord("missing", dispatch.Patch{Notes: ptr("x")})

	assert.Equal(t, sampleRecords(), s.Records())
	assert.Zero(t, calls)
}

func TestAddRecordPrepends(t *testing.T) {
	s := NewDispatchStore()
	s.SetRecords(sampleRecords())

	rec := dispatch.Record{ID: "r0", Status: dispatch.StatusEntered, PlateNumber: "60B-000.01"}
	s.AddRecord(rec)

	got := s.Records()
	require.Len(t, got, 4)
	assert.Equal(t, rec, got[0])
	assert.Equal(t, sampleRecords(), got[1:])
}

func TestSettersReplace(t *testing.T) {
	s := NewDispatchStore()
	s.SetRecords(sampleRecords())
	s.SetRecords([]dispatch.Record{{ID: "only"}})
	assert.Equal(t, []dispatch.Record{{ID: "only"}}, s.Records())

	sel := sampleRecords()[1]
	s.SetSelectedRecord(&sel)
	sel.Notes = "changed by caller"
	require.NotNil(t, s.SelectedRecord())
	assert.Equal(t, "late", s.SelectedRecord().Notes)

	s.SetSelectedRecord(nil)
	assert.Nil(t, s.SelectedRecord())

	s.SetActiveTab(dispatch.Tab(dispatch.StatusPaid))
	assert.Equal(t, dispatch.Tab(dispatch.StatusPaid), s.ActiveTab())
}

func TestSetRecordsCopiesInput(t *testing.T) {
	s := NewDispatchStore()
	in := sampleRecords()
	s.SetRecords(in)
	in[0].PlateNumber = "mutated"
	assert.Equal(t, "51B-123.45", s.Records()[0].PlateNumber)
}

func TestRecordsReturnsCopy(t *testing.T) {
	s := NewDispatchStore()
	s.SetRecords(sampleRecords())
	notified := 0
	unsubscribe := s.Subscribe(func(DispatchState) { notified++ })
	defer unsubscribe()

	s.Records()[0].Notes = "mutated"
	assert.NotEqual(t, "mutated", s.Records()[0].Notes)
	assert.Zero(t, notified)
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	s := NewDispatchStore()
	var got []DispatchState
	unsubscribe := s.Subscribe(func(st DispatchState) { got = append(got, st) })

	s.SetRecords(sampleRecords())
	s.AddRecord(dispatch.Record{ID: "r0"})
	s.SetActiveTab(dispatch.Tab(dispatch.StatusEntered))

	require.Len(t, got, 3)
	assert.Len(t, got[0].Records, 3)
	assert.Len(t, got[1].Records, 4)
	assert.Equal(t, "r0", got[1].Records[0].ID)
	assert.Equal(t, dispatch.Tab(dispatch.StatusEntered), got[2].ActiveTab)

	unsubscribe()
	unsubscribe()
	s.SetRecords(nil)
	assert.Len(t, got, 3)
}

func TestSubscriberMayReadStore(t *testing.T) {
	s := NewDispatchStore()
	var seen int
	s.Subscribe(func(DispatchState) { seen = len(s.Records()) })
	s.SetRecords(sampleRecords())
	assert.Equal(t, 3, seen)
}
