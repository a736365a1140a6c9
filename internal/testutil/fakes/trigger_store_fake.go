package fakes

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dhima/auto-run-ac/internal/models"
	"github.com/dhima/auto-run-ac/internal/storage"
)

// ErrStoreDown is a convenient backend failure for tests.
var ErrStoreDown = errors.New("store unavailable")

// FakeTriggerStore is an in-memory implementation of the TriggerStore interface. Lists come
// back in insertion order. Set Err to make every call fail with it.
type FakeTriggerStore struct {
	mu sync.Mutex

	defaults     map[string]models.DefaultTrigger
	defaultOrder []string
	dates        map[string]models.DateTrigger
	dateOrder    []string

	Err   error
	calls int
}

func NewFakeTriggerStore() *FakeTriggerStore {
	return &FakeTriggerStore{
		defaults: make(map[string]models.DefaultTrigger),
		dates:    make(map[string]models.DateTrigger),
	}
}

func (f *FakeTriggerStore) begin() error {
	f.calls++
	return f.Err
}

func (f *FakeTriggerStore) ListDefaultTriggers(context.Context) ([]models.DefaultTrigger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return nil, err
	}
	list := make([]models.DefaultTrigger, 0, len(f.defaultOrder))
	for _, id := range f.defaultOrder {
		list = append(list, f.defaults[id])
	}
	return list, nil
}

func (f *FakeTriggerStore) CreateDefaultTrigger(_ context.Context, t models.DefaultTrigger) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return err
	}
	if _, ok := f.defaults[t.ID]; ok {
		return storage.ErrTriggerConflict
	}
	f.defaults[t.ID] = t
	f.defaultOrder = append(f.defaultOrder, t.ID)
	return nil
}

func (f *FakeTriggerStore) GetDefaultTrigger(_ context.Context, id string) (models.DefaultTrigger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return models.DefaultTrigger{}, err
	}
	t, ok := f.defaults[id]
	if !ok {
		return models.DefaultTrigger{}, storage.ErrTriggerNotFound
	}
	return t, nil
}

func (f *FakeTriggerStore) updateDefault(id string, apply func(*models.DefaultTrigger)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return err
	}
	t, ok := f.defaults[id]
	if !ok {
		return storage.ErrTriggerNotFound
	}
	apply(&t)
	f.defaults[id] = t
	return nil
}

func (f *FakeTriggerStore) UpdateDefaultTriggerTime(_ context.Context, id string, at models.TimeOfDay) error {
	return f.updateDefault(id, func(t *models.DefaultTrigger) { t.Time = at })
}

func (f *FakeTriggerStore) UpdateDefaultTriggerTemp(_ context.Context, id string, temp float64) error {
	return f.updateDefault(id, func(t *models.DefaultTrigger) { t.Temp = temp })
}

func (f *FakeTriggerStore) UpdateDefaultTriggerACMode(_ context.Context, id string, mode models.OperationMode) error {
	return f.updateDefault(id, func(t *models.DefaultTrigger) { t.AC.Mode = mode })
}

func (f *FakeTriggerStore) UpdateDefaultTriggerACTemp(_ context.Context, id string, temp float64) error {
	return f.updateDefault(id, func(t *models.DefaultTrigger) { t.AC.Temp = temp })
}

func (f *FakeTriggerStore) DeleteDefaultTrigger(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return err
	}
	if _, ok := f.defaults[id]; !ok {
		return storage.ErrTriggerNotFound
	}
	delete(f.defaults, id)
	f.defaultOrder = without(f.defaultOrder, id)
	return nil
}

func (f *FakeTriggerStore) ListDateTriggers(context.Context) ([]models.DateTrigger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return nil, err
	}
	list := make([]models.DateTrigger, 0, len(f.dateOrder))
	for _, id := range f.dateOrder {
		list = append(list, f.dates[id])
	}
	return list, nil
}

func (f *FakeTriggerStore) CreateDateTrigger(_ context.Context, t models.DateTrigger) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return err
	}
	if _, ok := f.dates[t.ID]; ok {
		return storage.ErrTriggerConflict
	}
	t.DateTime = asStored(t.DateTime)
	f.dates[t.ID] = t
	f.dateOrder = append(f.dateOrder, t.ID)
	return nil
}

func (f *FakeTriggerStore) GetDateTrigger(_ context.Context, id string) (models.DateTrigger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return models.DateTrigger{}, err
	}
	t, ok := f.dates[id]
	if !ok {
		return models.DateTrigger{}, storage.ErrTriggerNotFound
	}
	return t, nil
}

func (f *FakeTriggerStore) updateDate(id string, apply func(*models.DateTrigger)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return err
	}
	t, ok := f.dates[id]
	if !ok {
		return storage.ErrTriggerNotFound
	}
	apply(&t)
	f.dates[id] = t
	return nil
}

func (f *FakeTriggerStore) UpdateDateTriggerDateTime(_ context.Context, id string, at time.Time) error {
	return f.updateDate(id, func(t *models.DateTrigger) { t.DateTime = asStored(at) })
}

func (f *FakeTriggerStore) UpdateDateTriggerTemp(_ context.Context, id string, temp float64) error {
	return f.updateDate(id, func(t *models.DateTrigger) { t.Temp = temp })
}

func (f *FakeTriggerStore) UpdateDateTriggerACMode(_ context.Context, id string, mode models.OperationMode) error {
	return f.updateDate(id, func(t *models.DateTrigger) { t.AC.Mode = mode })
}

func (f *FakeTriggerStore) UpdateDateTriggerACTemp(_ context.Context, id string, temp float64) error {
	return f.updateDate(id, func(t *models.DateTrigger) { t.AC.Temp = temp })
}

func (f *FakeTriggerStore) DeleteDateTrigger(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(); err != nil {
		return err
	}
	if _, ok := f.dates[id]; !ok {
		return storage.ErrTriggerNotFound
	}
	delete(f.dates, id)
	f.dateOrder = without(f.dateOrder, id)
	return nil
}

// CallCount returns how many store calls were made.
func (f *FakeTriggerStore) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// asStored mirrors the DATETIME(6) column: UTC at microsecond precision.
func asStored(at time.Time) time.Time {
	return at.UTC().Truncate(time.Microsecond)
}

func without(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
