package services

import (
	"context"
	"fmt"
	"strings"

	"eventmicrosite/internal/domain"
)

// In-memory repositories shared by the service tests.

type fakeEventRepo struct {
	byID   map[int64]*domain.Event
	nextID int64
	err    error // if set, every call returns this error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[int64]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.byID {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.byID {
		if existing.Slug == e.Slug {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateSlug, e.Slug)
		}
	}
	e.ID = f.nextID
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEventRepo) Duplicate(ctx context.Context, id int64, title, slug string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	src, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	dup := *src
	dup.ID = f.nextID
	f.nextID++
	dup.Title = title
	dup.Slug = slug
	dup.IsPublished = false
	f.byID[dup.ID] = &dup
	return &dup, nil
}

type fakePersonRepo struct {
	byID   map[int64]*domain.Person
	nextID int64
	err    error
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{byID: make(map[int64]*domain.Person), nextID: 1}
}

func (f *fakePersonRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Person, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Person
	for _, p := range f.byID {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePersonRepo) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakePersonRepo) Create(ctx context.Context, p *domain.Person) error {
	if f.err != nil {
		return f.err
	}
	p.ID = f.nextID
	f.nextID++
	f.byID[p.ID] = p
	return nil
}

func (f *fakePersonRepo) Update(ctx context.Context, p *domain.Person) error {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakePersonRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeGuestRepo struct {
	byID   map[int64]*domain.Guest
	nextID int64
	err    error
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{byID: make(map[int64]*domain.Guest), nextID: 1}
}

func (f *fakeGuestRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Guest, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Guest
	for _, g := range f.byID {
		if g.EventID == eventID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGuestRepo) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	if g, ok := f.byID[id]; ok {
		return g, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGuestRepo) Create(ctx context.Context, g *domain.Guest) error {
	if f.err != nil {
		return f.err
	}
	g.ID = f.nextID
	f.nextID++
	f.byID[g.ID] = g
	return nil
}

func (f *fakeGuestRepo) Update(ctx context.Context, g *domain.Guest) error {
	if _, ok := f.byID[g.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[g.ID] = g
	return nil
}

func (f *fakeGuestRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeScheduleRepo struct {
	byID   map[int64]*domain.ScheduleItem
	nextID int64
	err    error
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{byID: make(map[int64]*domain.ScheduleItem), nextID: 1}
}

func (f *fakeScheduleRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.ScheduleItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.ScheduleItem
	for _, item := range f.byID {
		if item.EventID == eventID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
	if item, ok := f.byID[id]; ok {
		return item, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeScheduleRepo) Create(ctx context.Context, item *domain.ScheduleItem) error {
	if f.err != nil {
		return f.err
	}
	item.ID = f.nextID
	f.nextID++
	f.byID[item.ID] = item
	return nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, item *domain.ScheduleItem) error {
	if _, ok := f.byID[item.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[item.ID] = item
	return nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeUserRepo struct {
	byID       map[int64]*domain.User
	nextID     int64
	lastLogins map[int64]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[int64]*domain.User), nextID: 1, lastLogins: make(map[int64]int)}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range f.byID {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	u.ID = f.nextID
	f.nextID++
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	f.lastLogins[id]++
	return nil
}

type fakeSettingsRepo struct {
	values map[string]string
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: make(map[string]string)}
}

func (f *fakeSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", domain.ErrNotFound
}

func (f *fakeSettingsRepo) Set(ctx context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

type fakeMediaRepo struct {
	byID   map[int64]*domain.Media
	nextID int64
	err    error
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{byID: make(map[int64]*domain.Media), nextID: 1}
}

func (f *fakeMediaRepo) Create(ctx context.Context, m *domain.Media) error {
	if f.err != nil {
		return f.err
	}
	m.ID = f.nextID
	f.nextID++
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMediaRepo) GetByID(ctx context.Context, id int64) (*domain.Media, error) {
	if m, ok := f.byID[id]; ok {
		return m, nil
	}
	return nil, domain.ErrNotFound
}
