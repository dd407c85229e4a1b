package http

import (
	"context"
	"fmt"
	"strings"

	"eventmicrosite/internal/domain"
)

// In-memory repositories backing the handler tests. Real services run on
// top of these so the tests exercise routing, middleware, validation and
// business rules together.

type memEventRepo struct {
	byID   map[int64]*domain.Event
	nextID int64
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{byID: make(map[int64]*domain.Event), nextID: 1}
}

func (m *memEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(m.byID))
	for _, e := range m.byID {
		out = append(out, e)
	}
	return out, nil
}

func (m *memEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if e, ok := m.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	for _, e := range m.byID {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memEventRepo) Create(ctx context.Context, e *domain.Event) error {
	for _, existing := range m.byID {
		if existing.Slug == e.Slug {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateSlug, e.Slug)
		}
	}
	e.ID = m.nextID
	m.nextID++
	m.byID[e.ID] = e
	return nil
}

func (m *memEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if _, ok := m.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	m.byID[e.ID] = e
	return nil
}

func (m *memEventRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memEventRepo) Duplicate(ctx context.Context, id int64, title, slug string) (*domain.Event, error) {
	src, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	dup := *src
	dup.ID = m.nextID
	m.nextID++
	dup.Title = title
	dup.Slug = slug
	dup.IsPublished = false
	m.byID[dup.ID] = &dup
	return &dup, nil
}

type memPersonRepo struct {
	byID   map[int64]*domain.Person
	nextID int64
}

func newMemPersonRepo() *memPersonRepo {
	return &memPersonRepo{byID: make(map[int64]*domain.Person), nextID: 1}
}

func (m *memPersonRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Person, error) {
	var out []*domain.Person
	for _, p := range m.byID {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPersonRepo) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	if p, ok := m.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memPersonRepo) Create(ctx context.Context, p *domain.Person) error {
	p.ID = m.nextID
	m.nextID++
	m.byID[p.ID] = p
	return nil
}

func (m *memPersonRepo) Update(ctx context.Context, p *domain.Person) error {
	if _, ok := m.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	m.byID[p.ID] = p
	return nil
}

func (m *memPersonRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memGuestRepo struct {
	byID   map[int64]*domain.Guest
	nextID int64
}

func newMemGuestRepo() *memGuestRepo {
	return &memGuestRepo{byID: make(map[int64]*domain.Guest), nextID: 1}
}

func (m *memGuestRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Guest, error) {
	var out []*domain.Guest
	for _, g := range m.byID {
		if g.EventID == eventID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memGuestRepo) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	if g, ok := m.byID[id]; ok {
		return g, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memGuestRepo) Create(ctx context.Context, g *domain.Guest) error {
	g.ID = m.nextID
	m.nextID++
	m.byID[g.ID] = g
	return nil
}

func (m *memGuestRepo) Update(ctx context.Context, g *domain.Guest) error {
	if _, ok := m.byID[g.ID]; !ok {
		return domain.ErrNotFound
	}
	m.byID[g.ID] = g
	return nil
}

func (m *memGuestRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memScheduleRepo struct {
	byID   map[int64]*domain.ScheduleItem
	nextID int64
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{byID: make(map[int64]*domain.ScheduleItem), nextID: 1}
}

func (m *memScheduleRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.ScheduleItem, error) {
	var out []*domain.ScheduleItem
	for _, item := range m.byID {
		if item.EventID == eventID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
	if item, ok := m.byID[id]; ok {
		return item, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memScheduleRepo) Create(ctx context.Context, item *domain.ScheduleItem) error {
	item.ID = m.nextID
	m.nextID++
	m.byID[item.ID] = item
	return nil
}

func (m *memScheduleRepo) Update(ctx context.Context, item *domain.ScheduleItem) error {
	if _, ok := m.byID[item.ID]; !ok {
		return domain.ErrNotFound
	}
	m.byID[item.ID] = item
	return nil
}

func (m *memScheduleRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memUserRepo struct {
	byID   map[int64]*domain.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[int64]*domain.User), nextID: 1}
}

func (m *memUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range m.byID {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserRepo) Create(ctx context.Context, u *domain.User) error {
	u.ID = m.nextID
	m.nextID++
	m.byID[u.ID] = u
	return nil
}

func (m *memUserRepo) UpdateLastLogin(ctx context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

type memSettingsRepo struct {
	values map[string]string
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{values: make(map[string]string)}
}

func (m *memSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", domain.ErrNotFound
}

func (m *memSettingsRepo) Set(ctx context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

type memMediaRepo struct {
	byID   map[int64]*domain.Media
	nextID int64
}

func newMemMediaRepo() *memMediaRepo {
	return &memMediaRepo{byID: make(map[int64]*domain.Media), nextID: 1}
}

func (m *memMediaRepo) Create(ctx context.Context, media *domain.Media) error {
	media.ID = m.nextID
	m.nextID++
	m.byID[media.ID] = media
	return nil
}

func (m *memMediaRepo) GetByID(ctx context.Context, id int64) (*domain.Media, error) {
	if media, ok := m.byID[id]; ok {
		return media, nil
	}
	return nil, domain.ErrNotFound
}
