package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventmicrosite/internal/db"
	"eventmicrosite/internal/domain"
)

// eventColumnList is the full column set in insert order; scanEvent scans in
// the same order.
const eventColumnList = `id, title, slug, subtitle, event_date, event_time, location, venue,
	hero_image, description, description_image, schedule_heading, schedule_intro,
	agenda_content, schedule_image, welcome_message, signature,
	contact_name, contact_title, contact_email, contact_phone,
	partner_name, partner_logo, partner_description, partner_website,
	testimonial_text, testimonial_author, testimonial_title, testimonial_company, testimonial_image,
	partner_hero_image, connect_intro, connect_instructions, connect_link, connect_image,
	is_published, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	e := &domain.Event{}
	var dateNull sql.NullTime
	err := s.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Subtitle, &dateNull, &e.EventTime, &e.Location, &e.Venue,
		&e.HeroImage, &e.Description, &e.DescriptionImage, &e.ScheduleHeading, &e.ScheduleIntro,
		&e.AgendaContent, &e.ScheduleImage, &e.WelcomeMessage, &e.Signature,
		&e.ContactName, &e.ContactTitle, &e.ContactEmail, &e.ContactPhone,
		&e.PartnerName, &e.PartnerLogo, &e.PartnerDescription, &e.PartnerWebsite,
		&e.TestimonialText, &e.TestimonialAuthor, &e.TestimonialTitle, &e.TestimonialCompany, &e.TestimonialImage,
		&e.PartnerHeroImage, &e.ConnectIntro, &e.ConnectInstructions, &e.ConnectLink, &e.ConnectImage,
		&e.IsPublished, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dateNull.Valid {
		e.EventDate = &dateNull.Time
	}
	return e, nil
}

// contentArgs returns the 35 content column values in insert order
// (everything except id and the timestamps).
func contentArgs(e *domain.Event) []any {
	return []any{
		e.Title, e.Slug, e.Subtitle, e.EventDate, e.EventTime, e.Location, e.Venue,
		e.HeroImage, e.Description, e.DescriptionImage, e.ScheduleHeading, e.ScheduleIntro,
		e.AgendaContent, e.ScheduleImage, e.WelcomeMessage, e.Signature,
		e.ContactName, e.ContactTitle, e.ContactEmail, e.ContactPhone,
		e.PartnerName, e.PartnerLogo, e.PartnerDescription, e.PartnerWebsite,
		e.TestimonialText, e.TestimonialAuthor, e.TestimonialTitle, e.TestimonialCompany, e.TestimonialImage,
		e.PartnerHeroImage, e.ConnectIntro, e.ConnectInstructions, e.ConnectLink, e.ConnectImage,
		e.IsPublished,
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

type eventRepository struct {
	db *db.Executor
}

func NewEventRepository(x *db.Executor) domain.EventRepository {
	return &eventRepository{db: x}
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumnList + `
		FROM events
		ORDER BY event_date DESC, created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumnList + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumnList + `
		FROM events
		WHERE slug = $1
	`
	e, err := scanEvent(r.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

const insertEventQuery = `
	INSERT INTO events (
		title, slug, subtitle, event_date, event_time, location, venue,
		hero_image, description, description_image, schedule_heading, schedule_intro,
		agenda_content, schedule_image, welcome_message, signature,
		contact_name, contact_title, contact_email, contact_phone,
		partner_name, partner_logo, partner_description, partner_website,
		testimonial_text, testimonial_author, testimonial_title, testimonial_company, testimonial_image,
		partner_hero_image, connect_intro, connect_instructions, connect_link, connect_image,
		is_published
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
		$18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35
	) RETURNING id, created_at, updated_at`

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	err := r.db.QueryRowContext(ctx, insertEventQuery, contentArgs(e)...).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateSlug, e.Slug)
		}
		return err
	}
	return nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events SET
			title = $1, slug = $2, subtitle = $3, event_date = $4, event_time = $5,
			location = $6, venue = $7, hero_image = $8, description = $9, description_image = $10,
			schedule_heading = $11, schedule_intro = $12, agenda_content = $13, schedule_image = $14,
			welcome_message = $15, signature = $16,
			contact_name = $17, contact_title = $18, contact_email = $19, contact_phone = $20,
			partner_name = $21, partner_logo = $22, partner_description = $23, partner_website = $24,
			testimonial_text = $25, testimonial_author = $26, testimonial_title = $27,
			testimonial_company = $28, testimonial_image = $29, partner_hero_image = $30,
			connect_intro = $31, connect_instructions = $32, connect_link = $33, connect_image = $34,
			is_published = $35,
			updated_at = NOW()
		WHERE id = $36
		RETURNING created_at, updated_at
	`
	args := append(contentArgs(e), e.ID)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateSlug, e.Slug)
		}
		return err
	}
	return nil
}

// childTables lists the owned tables in deletion order: children before the
// parent, schedule items first to mirror the admin UI's cascade.
var childTables = []string{"schedule_items", "guests", "speakers", "hosts"}

// Delete removes the event and all child rows in a single transaction, so a
// failure part-way leaves nothing orphaned.
func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range childTables {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

// Duplicate deep-copies the event under the supplied title and slug. The copy
// is always unpublished. Each child row is re-inserted individually with the
// new parent id, all inside one transaction.
func (r *eventRepository) Duplicate(ctx context.Context, id int64, title, slug string) (*domain.Event, error) {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	src, err := scanEvent(tx.QueryRowContext(ctx, `SELECT `+eventColumnList+` FROM events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	dup := *src
	dup.Title = title
	dup.Slug = slug
	dup.IsPublished = false
	err = tx.QueryRowContext(ctx, insertEventQuery, contentArgs(&dup)...).
		Scan(&dup.ID, &dup.CreatedAt, &dup.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateSlug, slug)
		}
		return nil, err
	}

	if err := copyPeople(ctx, tx, "hosts", id, dup.ID); err != nil {
		return nil, err
	}
	if err := copyPeople(ctx, tx, "speakers", id, dup.ID); err != nil {
		return nil, err
	}
	if err := copyGuests(ctx, tx, id, dup.ID); err != nil {
		return nil, err
	}
	if err := copyScheduleItems(ctx, tx, id, dup.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &dup, nil
}

func copyPeople(ctx context.Context, tx *sql.Tx, table string, srcID, dstID int64) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT name, title, company, bio, image, sort_order FROM `+table+` WHERE event_id = $1`, srcID)
	if err != nil {
		return fmt.Errorf("read %s: %w", table, err)
	}
	defer rows.Close()

	type personRow struct {
		name, title, company, bio, image string
		sortOrder                        int
	}
	var people []personRow
	for rows.Next() {
		var p personRow
		if err := rows.Scan(&p.name, &p.title, &p.company, &p.bio, &p.image, &p.sortOrder); err != nil {
			return err
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, p := range people {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO `+table+` (event_id, name, title, company, bio, image, sort_order)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			dstID, p.name, p.title, p.company, p.bio, p.image, p.sortOrder)
		if err != nil {
			return fmt.Errorf("copy %s: %w", table, err)
		}
	}
	return nil
}

func copyGuests(ctx context.Context, tx *sql.Tx, srcID, dstID int64) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT name, title, company, bio, image, badge, sort_order FROM guests WHERE event_id = $1`, srcID)
	if err != nil {
		return fmt.Errorf("read guests: %w", err)
	}
	defer rows.Close()

	type guestRow struct {
		name, title, company, bio, image string
		badge                            sql.NullString
		sortOrder                        int
	}
	var guests []guestRow
	for rows.Next() {
		var g guestRow
		if err := rows.Scan(&g.name, &g.title, &g.company, &g.bio, &g.image, &g.badge, &g.sortOrder); err != nil {
			return err
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, g := range guests {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO guests (event_id, name, title, company, bio, image, badge, sort_order)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			dstID, g.name, g.title, g.company, g.bio, g.image, g.badge, g.sortOrder)
		if err != nil {
			return fmt.Errorf("copy guests: %w", err)
		}
	}
	return nil
}

func copyScheduleItems(ctx context.Context, tx *sql.Tx, srcID, dstID int64) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT time, description, sort_order FROM schedule_items WHERE event_id = $1`, srcID)
	if err != nil {
		return fmt.Errorf("read schedule_items: %w", err)
	}
	defer rows.Close()

	type itemRow struct {
		time, description string
		sortOrder         int
	}
	var items []itemRow
	for rows.Next() {
		var it itemRow
		if err := rows.Scan(&it.time, &it.description, &it.sortOrder); err != nil {
			return err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, it := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO schedule_items (event_id, time, description, sort_order)
			 VALUES ($1, $2, $3, $4)`,
			dstID, it.time, it.description, it.sortOrder)
		if err != nil {
			return fmt.Errorf("copy schedule_items: %w", err)
		}
	}
	return nil
}
