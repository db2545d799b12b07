// Package board keeps the dispatch store in step with the dispatch-records backend.
package board

import (
	"context"

	"go.uber.org/zap"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/dispatch"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/resource"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/state"
)

// DispatchService is the dispatch-records CRUD contract; *dispatch.Service satisfies it.
type DispatchService = resource.EntityService[dispatch.Record, dispatch.Input, dispatch.Patch, dispatch.Filter]

var _ DispatchService = (*dispatch.Service)(nil)

// Board applies successful service calls to the store. A failed call returns the
// service error as is and leaves the store untouched.
type Board struct {
	svc    DispatchService
	store  *state.DispatchStore
	logger *zap.Logger
}

func New(svc DispatchService, store *state.DispatchStore, logger *zap.Logger) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board{svc: svc, store: store, logger: logger}
}

func (b *Board) Store() *state.DispatchStore { return b.store }

// Refresh reloads the records matching filter.
func (b *Board) Refresh(ctx context.Context, filter dispatch.Filter) error {
	records, err := b.svc.GetAll(ctx, filter)
	if err != nil {
		return err
	}
	b.store.SetRecords(records)
	b.logger.Debug("dispatch records loaded", zap.Int("count", len(records)))
	return nil
}

func (b *Board) Create(ctx context.Context, input dispatch.Input) (*dispatch.Record, error) {
	rec, err := b.svc.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	b.store.AddRecord(*rec)
	return rec, nil
}

// Patch sends the partial update and merges the same patch into the stored record,
// so fields absent from patch keep their values. UpdatedAt is taken from the server
// response when it describes the same record.
func (b *Board) Patch(ctx context.Context, id string, patch dispatch.Patch) (*dispatch.Record, error) {
	rec, err := b.svc.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if rec != nil && rec.ID == id && rec.UpdatedAt != nil && patch.UpdatedAt == nil {
		patch.UpdatedAt = rec.UpdatedAt
	}
	b.store.UpdateRecord(id, patch)
	if sel := b.store.SelectedRecord(); sel != nil && sel.ID == id {
		merged := sel.Merge(patch)
		b.store.SetSelectedRecord(&merged)
	}
	return rec, nil
}

func (b *Board) Remove(ctx context.Context, id string) error {
	if err := b.svc.Delete(ctx, id); err != nil {
		return err
	}
	current := b.store.Records()
	kept := make([]dispatch.Record, 0, len(current))
	for _, r := range current {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	b.store.SetRecords(kept)
	if sel := b.store.SelectedRecord(); sel != nil && sel.ID == id {
		b.store.SetSelectedRecord(nil)
	}
	return nil
}

// Select marks the record with id as selected; an unknown id clears the selection.
func (b *Board) Select(id string) {
	for _, r := range b.store.Records() {
		if r.ID == id {
			b.store.SetSelectedRecord(&r)
			return
		}
	}
	b.store.SetSelectedRecord(nil)
}

// Visible returns the records shown under the active tab.
func (b *Board) Visible() []dispatch.Record {
	snap := b.store.Snapshot()
	return dispatch.Visible(snap.Records, snap.ActiveTab)
}
