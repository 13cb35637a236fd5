package domain

// Query projections used by the per-stage candidate lookups. Each one is
// the left-anti-join result feeding a stage: the rows that exist upstream
// but have no output row downstream yet.

// ArchiveCandidate is a detail row with an external link and no
// archived attachment.
type ArchiveCandidate struct {
	ID           string `db:"id"`
	ExternalLink string `db:"external_link"`
}

// ScoringCandidate is an archived offer lacking a score for one user.
type ScoringCandidate struct {
	ID               string `db:"id"`
	Title            string `db:"title"`
	Activity         string `db:"activity"`
	Sector           string `db:"sector"`
	Role             string `db:"role"`
	Schedule         string `db:"schedule"`
	Compensation     string `db:"compensation"`
	Location         string `db:"location"`
	ProfileHTML      string `db:"profile_html"`
	TasksHTML        string `db:"tasks_html"`
	ObservationsHTML string `db:"observations_html"`
}

// LetterCandidate is a fit score lacking a letter, with the archived
// offer text the composer needs.
type LetterCandidate struct {
	OfferID     string  `db:"offer_id"`
	RawHTMLText *string `db:"raw_html_text"`
	PDFText     *string `db:"pdf_text"`
}

// NotificationCandidate is a fit, unnotified score for a non-primary
// user, carrying the offer facts and every date field the eligibility
// resolver consults.
type NotificationCandidate struct {
	OfferID       string  `db:"offer_id"`
	UserID        int64   `db:"user_id"`
	UserName      string  `db:"user_name"`
	UserEmail     string  `db:"user_email"`
	Rationale     string  `db:"rationale"`
	Title         string  `db:"title"`
	Role          string  `db:"role"`
	Compensation  string  `db:"compensation"`
	Location      string  `db:"location"`
	ExternalLink  string  `db:"external_link"`
	RawHTMLText   *string `db:"raw_html_text"`
	PDFText       *string `db:"pdf_text"`
	CVDeadlineISO string  `db:"cv_deadline_date"`
	DeadlineISO   string  `db:"deadline_iso"`
	OfferDateISO  string  `db:"offer_date_iso"`
}
