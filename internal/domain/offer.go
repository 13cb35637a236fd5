package domain

import "time"

// ListedOffer is one row scraped from the portal's paginated listing.
// Identity is the portal-native offer id; re-upserting refreshes the
// title, dates and scraped_at.
type ListedOffer struct {
	ID               string    `db:"id"`
	Title            string    `db:"title"`
	DetailLink       string    `db:"link"`
	OfferDateDisplay string    `db:"offer_date_display"`
	DeadlineDisplay  string    `db:"deadline_display"`
	OfferDateISO     string    `db:"offer_date_iso"`
	DeadlineISO      string    `db:"deadline_iso"`
	ScrapedAt        time.Time `db:"scraped_at"`
}

// OfferDetail holds the labeled fields parsed from an offer's detail page.
// At most one per offer. ExternalLink is empty when the application flow
// stays on the portal.
type OfferDetail struct {
	ID               string    `db:"id"`
	Entity           string    `db:"entity"`
	Activity         string    `db:"activity"`
	Sector           string    `db:"sector"`
	Role             string    `db:"role"`
	Schedule         string    `db:"schedule"`
	Compensation     string    `db:"compensation"`
	Location         string    `db:"location"`
	ProfileHTML      string    `db:"profile_html"`
	TasksHTML        string    `db:"tasks_html"`
	ObservationsHTML string    `db:"observations_html"`
	ExternalLink     string    `db:"external_link"`
	CVDeadlineISO    string    `db:"cv_deadline_date"`
	ScrapedAt        time.Time `db:"scraped_at"`
}

// OfferAttachment is the archived text of an offer's external document.
// Exactly one of RawHTMLText or PDFText is populated.
type OfferAttachment struct {
	ID           string    `db:"id"`
	SourceURL    string    `db:"source_url"`
	DownloadedAt time.Time `db:"downloaded_at"`
	RawHTMLText  *string   `db:"raw_html_text"`
	PDFText      *string   `db:"pdf_text"`
}

// User is externally managed; the pipeline only reads it.
type User struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Email  string `db:"email"`
	CVPath string `db:"cv_path"`
}

// Score is one oracle verdict for an (offer, user) pair. The
// (OfferID, UserID) unique key is the pipeline's at-most-one-evaluation
// guarantee.
type Score struct {
	OfferID     string    `db:"offer_id"`
	UserID      int64     `db:"user_id"`
	Score       float64   `db:"score"`
	IsFit       int       `db:"is_fit"`
	Rationale   string    `db:"rationale"`
	EvaluatedAt time.Time `db:"evaluated_at"`
	Notified    int       `db:"notified"`
}

// Letter is one generated cover letter for an (offer, user) pair, plus the
// email envelope the composer suggested. Unique per (OfferID, UserID).
type Letter struct {
	OfferID     string    `db:"offer_id"`
	UserID      int64     `db:"user_id"`
	LetterText  string    `db:"letter_text"`
	Recipient   string    `db:"recipient"`
	Subject     string    `db:"subject"`
	Body        string    `db:"body"`
	GeneratedAt time.Time `db:"generated_at"`
	AllowsEmail int       `db:"allows_email"`
	EmailSent   int       `db:"email_sent"`
}

// Verdict is the structured response of the scoring oracle.
type Verdict struct {
	Score     float64 `json:"score"`
	Fit       int     `json:"apto"`
	Rationale string  `json:"justificacion"`
}

// LetterDraft is the structured response of the letter composer.
type LetterDraft struct {
	LetterText  string `json:"carta_texto"`
	AllowsEmail int    `json:"permite_envio_email"`
	Recipient   string `json:"destinatario"`
	Subject     string `json:"asunto_email"`
	Body        string `json:"cuerpo_email"`
}

// EmailDraft is the structured response of the notification composer.
type EmailDraft struct {
	Subject string `json:"asunto"`
	Body    string `json:"cuerpo"`
}
