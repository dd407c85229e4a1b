package postgres

// fieldColumn pairs an external (JSON) field name with its storage column.
// Repositories keep these tables alongside their SQL; a test asserts each
// table is a bijection with the domain struct's JSON fields and matches the
// column order used by the scan helpers.
type fieldColumn struct {
	Field  string
	Column string
}

var eventFieldColumns = []fieldColumn{
	{"id", "id"},
	{"title", "title"},
	{"slug", "slug"},
	{"subtitle", "subtitle"},
	{"eventDate", "event_date"},
	{"eventTime", "event_time"},
	{"location", "location"},
	{"venue", "venue"},
	{"heroImage", "hero_image"},
	{"description", "description"},
	{"descriptionImage", "description_image"},
	{"scheduleHeading", "schedule_heading"},
	{"scheduleIntro", "schedule_intro"},
	{"agendaContent", "agenda_content"},
	{"scheduleImage", "schedule_image"},
	{"welcomeMessage", "welcome_message"},
	{"signature", "signature"},
	{"contactName", "contact_name"},
	{"contactTitle", "contact_title"},
	{"contactEmail", "contact_email"},
	{"contactPhone", "contact_phone"},
	{"partnerName", "partner_name"},
	{"partnerLogo", "partner_logo"},
	{"partnerDescription", "partner_description"},
	{"partnerWebsite", "partner_website"},
	{"testimonialText", "testimonial_text"},
	{"testimonialAuthor", "testimonial_author"},
	{"testimonialTitle", "testimonial_title"},
	{"testimonialCompany", "testimonial_company"},
	{"testimonialImage", "testimonial_image"},
	{"partnerHeroImage", "partner_hero_image"},
	{"connectIntro", "connect_intro"},
	{"connectInstructions", "connect_instructions"},
	{"connectLink", "connect_link"},
	{"connectImage", "connect_image"},
	{"isPublished", "is_published"},
	{"createdAt", "created_at"},
	{"updatedAt", "updated_at"},
}

var personFieldColumns = []fieldColumn{
	{"id", "id"},
	{"eventId", "event_id"},
	{"name", "name"},
	{"title", "title"},
	{"company", "company"},
	{"bio", "bio"},
	{"image", "image"},
	{"sortOrder", "sort_order"},
	{"createdAt", "created_at"},
	{"updatedAt", "updated_at"},
}

var guestFieldColumns = []fieldColumn{
	{"id", "id"},
	{"eventId", "event_id"},
	{"name", "name"},
	{"title", "title"},
	{"company", "company"},
	{"bio", "bio"},
	{"image", "image"},
	{"badge", "badge"},
	{"sortOrder", "sort_order"},
	{"createdAt", "created_at"},
	{"updatedAt", "updated_at"},
}

var scheduleFieldColumns = []fieldColumn{
	{"id", "id"},
	{"eventId", "event_id"},
	{"time", "time"},
	{"description", "description"},
	{"sortOrder", "sort_order"},
	{"createdAt", "created_at"},
	{"updatedAt", "updated_at"},
}
