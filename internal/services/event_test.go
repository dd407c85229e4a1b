package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventmicrosite/internal/domain"
)

func newTestEventService() (domain.EventService, *fakeEventRepo, *fakeGuestRepo) {
	events := newFakeEventRepo()
	hosts := newFakePersonRepo()
	speakers := newFakePersonRepo()
	guests := newFakeGuestRepo()
	schedule := newFakeScheduleRepo()
	return NewEventService(events, hosts, speakers, guests, schedule), events, guests
}

func TestEventService_Create(t *testing.T) {
	t.Run("derives slug from title when absent", func(t *testing.T) {
		svc, _, _ := newTestEventService()

		created, err := svc.Create(context.Background(), &domain.Event{Title: "Demo Night & After Party!"})
		require.NoError(t, err)
		assert.Equal(t, "demo-night-after-party", created.Slug)
		assert.NotZero(t, created.ID)
	})

	t.Run("keeps an explicit slug", func(t *testing.T) {
		svc, _, _ := newTestEventService()

		created, err := svc.Create(context.Background(), &domain.Event{Title: "Demo Night", Slug: "dn-2026"})
		require.NoError(t, err)
		assert.Equal(t, "dn-2026", created.Slug)
	})

	t.Run("sanitizes rich-text fields", func(t *testing.T) {
		svc, _, _ := newTestEventService()

		created, err := svc.Create(context.Background(), &domain.Event{
			Title:       "Demo Night",
			Description: `<p>Hello</p><script>alert("x")</script>`,
		})
		require.NoError(t, err)
		assert.Equal(t, "<p>Hello</p>", created.Description)
	})

	t.Run("surfaces duplicate slugs", func(t *testing.T) {
		svc, _, _ := newTestEventService()

		_, err := svc.Create(context.Background(), &domain.Event{Title: "Demo Night"})
		require.NoError(t, err)
		_, err = svc.Create(context.Background(), &domain.Event{Title: "Demo Night"})
		assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
	})
}

func TestEventService_GetDetail(t *testing.T) {
	svc, events, guests := newTestEventService()
	created, err := svc.Create(context.Background(), &domain.Event{Title: "Demo Night"})
	require.NoError(t, err)
	require.NoError(t, guests.Create(context.Background(), &domain.Guest{EventID: created.ID, Name: "Ada Lovelace"}))

	t.Run("resolves by id", func(t *testing.T) {
		detail, err := svc.GetDetail(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, created.ID, detail.ID)
		require.Len(t, detail.Guests, 1)
		assert.Equal(t, "Ada Lovelace", detail.Guests[0].Name)
	})

	t.Run("resolves by slug", func(t *testing.T) {
		detail, err := svc.GetDetail(context.Background(), "demo-night")
		require.NoError(t, err)
		assert.Equal(t, created.ID, detail.ID)
	})

	t.Run("numeric id wins over a numeric slug", func(t *testing.T) {
		other := &domain.Event{Title: "Other", Slug: "1"}
		require.NoError(t, events.Create(context.Background(), other))

		detail, err := svc.GetDetail(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, created.ID, detail.ID)
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := svc.GetDetail(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_Update(t *testing.T) {
	svc, _, _ := newTestEventService()
	created, err := svc.Create(context.Background(), &domain.Event{Title: "Demo Night"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &domain.Event{Title: "Demo Night 2", Slug: "demo-night"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Demo Night 2", updated.Title)

	_, err = svc.Update(context.Background(), 999, &domain.Event{Title: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_Duplicate(t *testing.T) {
	svc, events, _ := newTestEventService()
	created, err := svc.Create(context.Background(), &domain.Event{Title: "Demo Night", IsPublished: true})
	require.NoError(t, err)

	dup, err := svc.Duplicate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Demo Night (Copy)", dup.Title)
	assert.True(t, strings.HasPrefix(dup.Slug, "demo-night-copy-"), "slug %q", dup.Slug)
	assert.False(t, dup.IsPublished)
	assert.NotEqual(t, created.ID, dup.ID)

	// Repeated copies of the same source must not collide on the slug.
	second, err := svc.Duplicate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Demo Night (Copy)", second.Title)

	_, err = svc.Duplicate(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Len(t, events.byID, 3)
}

func TestEventService_Delete(t *testing.T) {
	svc, events, _ := newTestEventService()
	created, err := svc.Create(context.Background(), &domain.Event{Title: "Demo Night"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, events.byID)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), domain.ErrNotFound)
}
