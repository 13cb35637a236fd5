package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

type LetterStore struct {
	db *sqlx.DB
}

func NewLetterStore(db *sqlx.DB) *LetterStore {
	return &LetterStore{db: db}
}

// Insert writes a letter at most once per (offer, user) pair. Once a
// letter exists it is never overwritten.
func (s *LetterStore) Insert(ctx context.Context, l *domain.Letter) error {
	query := `
		INSERT INTO letters (
			offer_id, user_id, letter_text, recipient, subject, body,
			generated_at, allows_email, email_sent
		) VALUES (
			:offer_id, :user_id, :letter_text, :recipient, :subject, :body,
			:generated_at, :allows_email, :email_sent
		)
		ON CONFLICT (offer_id, user_id) DO NOTHING`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, l)
	return err
}

func (s *LetterStore) Exists(ctx context.Context, offerID string, userID int64) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM letters WHERE offer_id = $1 AND user_id = $2)`,
		offerID, userID)
	return exists, err
}

// ListCandidatesForUser returns the fit scores this user has no letter
// for yet, with the archived offer text the composer needs.
func (s *LetterStore) ListCandidatesForUser(ctx context.Context, userID int64) ([]domain.LetterCandidate, error) {
	var candidates []domain.LetterCandidate
	err := s.db.SelectContext(ctx, &candidates, `
		SELECT s.offer_id, a.raw_html_text, a.pdf_text
		FROM scores AS s
		JOIN offer_attachments AS a ON a.id = s.offer_id
		LEFT JOIN letters AS c ON c.offer_id = s.offer_id AND c.user_id = $1
		WHERE s.is_fit = 1
		  AND s.user_id = $1
		  AND c.offer_id IS NULL
		ORDER BY s.offer_id`, userID)
	return candidates, err
}

// ListFitForUser returns every letter belonging to a fit score for the
// user; the reconciliation pass checks their files on disk.
func (s *LetterStore) ListFitForUser(ctx context.Context, userID int64) ([]domain.Letter, error) {
	var letters []domain.Letter
	err := s.db.SelectContext(ctx, &letters, `
		SELECT c.offer_id, c.user_id, c.letter_text, c.recipient, c.subject,
		       c.body, c.generated_at, c.allows_email, c.email_sent
		FROM letters AS c
		JOIN scores AS s ON s.offer_id = c.offer_id AND s.user_id = c.user_id
		WHERE s.is_fit = 1 AND c.user_id = $1
		ORDER BY c.offer_id`, userID)
	return letters, err
}

// ListDraftable returns the user's letters that allow email, were never
// drafted, and carry a recipient.
func (s *LetterStore) ListDraftable(ctx context.Context, userID int64) ([]domain.Letter, error) {
	var letters []domain.Letter
	err := s.db.SelectContext(ctx, &letters, `
		SELECT offer_id, user_id, letter_text, recipient, subject, body,
		       generated_at, allows_email, email_sent
		FROM letters
		WHERE user_id = $1
		  AND allows_email = 1
		  AND email_sent = 0
		  AND recipient != ''
		ORDER BY offer_id`, userID)
	return letters, err
}

func (s *LetterStore) MarkEmailSent(ctx context.Context, offerID string, userID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE letters SET email_sent = 1 WHERE offer_id = $1 AND user_id = $2`,
		offerID, userID)
	return err
}
