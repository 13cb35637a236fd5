package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

type ScoreStore struct {
	db *sqlx.DB
}

func NewScoreStore(db *sqlx.DB) *ScoreStore {
	return &ScoreStore{db: db}
}

// Upsert writes one verdict. The (offer_id, user_id) key means a
// concurrent run's duplicate attempt updates in place instead of
// failing; the candidate query keeps existing rows from being re-scored
// within a run.
func (s *ScoreStore) Upsert(ctx context.Context, score *domain.Score) error {
	query := `
		INSERT INTO scores (offer_id, user_id, score, is_fit, rationale, evaluated_at, notified)
		VALUES (:offer_id, :user_id, :score, :is_fit, :rationale, :evaluated_at, :notified)
		ON CONFLICT (offer_id, user_id) DO UPDATE SET
			score = EXCLUDED.score,
			is_fit = EXCLUDED.is_fit,
			rationale = EXCLUDED.rationale,
			evaluated_at = EXCLUDED.evaluated_at`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, score)
	return err
}

// GetPair returns the score for one (offer, user) pair, or nil when the
// pair was never evaluated.
func (s *ScoreStore) GetPair(ctx context.Context, offerID string, userID int64) (*domain.Score, error) {
	var score domain.Score
	err := s.db.GetContext(ctx, &score, `
		SELECT offer_id, user_id, score, is_fit, rationale, evaluated_at, notified
		FROM scores
		WHERE offer_id = $1 AND user_id = $2`, offerID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// ListPendingForUser returns the archived offers this user has no
// verdict for yet.
func (s *ScoreStore) ListPendingForUser(ctx context.Context, userID int64) ([]domain.ScoringCandidate, error) {
	var candidates []domain.ScoringCandidate
	err := s.db.SelectContext(ctx, &candidates, `
		SELECT a.id, l.title,
		       d.activity, d.sector, d.role, d.schedule,
		       d.compensation, d.location,
		       d.profile_html, d.tasks_html, d.observations_html
		FROM offer_attachments AS a
		JOIN offer_details AS d ON d.id = a.id
		JOIN listed_offers AS l ON l.id = a.id
		LEFT JOIN scores AS s ON s.offer_id = a.id AND s.user_id = $1
		WHERE s.offer_id IS NULL
		ORDER BY a.id`, userID)
	return candidates, err
}

// ListNotifiable returns fit, unnotified scores for users other than
// the primary operator who have an email address.
func (s *ScoreStore) ListNotifiable(ctx context.Context, primaryUserID int64) ([]domain.NotificationCandidate, error) {
	var candidates []domain.NotificationCandidate
	err := s.db.SelectContext(ctx, &candidates, `
		SELECT s.offer_id, s.user_id, s.rationale,
		       u.name AS user_name, u.email AS user_email,
		       l.title, d.role, d.compensation, d.location, d.external_link,
		       a.raw_html_text, a.pdf_text,
		       d.cv_deadline_date, l.deadline_iso, l.offer_date_iso
		FROM scores AS s
		JOIN users AS u ON u.id = s.user_id
		JOIN listed_offers AS l ON l.id = s.offer_id
		JOIN offer_details AS d ON d.id = s.offer_id
		JOIN offer_attachments AS a ON a.id = s.offer_id
		WHERE s.user_id != $1
		  AND s.is_fit = 1
		  AND s.notified = 0
		  AND u.email != ''
		ORDER BY s.offer_id, s.user_id`, primaryUserID)
	return candidates, err
}

// MarkNotified flips the notified flag; it is also used to permanently
// suppress expired offers without sending anything.
func (s *ScoreStore) MarkNotified(ctx context.Context, offerID string, userID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE scores SET notified = 1 WHERE offer_id = $1 AND user_id = $2`,
		offerID, userID)
	return err
}
