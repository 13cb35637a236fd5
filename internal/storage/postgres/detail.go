package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

type DetailStore struct {
	db *sqlx.DB
}

func NewDetailStore(db *sqlx.DB) *DetailStore {
	return &DetailStore{db: db}
}

func (s *DetailStore) Upsert(ctx context.Context, d *domain.OfferDetail) error {
	query := `
		INSERT INTO offer_details (
			id, entity, activity, sector, role, schedule, compensation,
			location, profile_html, tasks_html, observations_html,
			external_link, cv_deadline_date, scraped_at
		) VALUES (
			:id, :entity, :activity, :sector, :role, :schedule, :compensation,
			:location, :profile_html, :tasks_html, :observations_html,
			:external_link, :cv_deadline_date, :scraped_at
		)
		ON CONFLICT (id) DO UPDATE SET
			entity = EXCLUDED.entity,
			activity = EXCLUDED.activity,
			sector = EXCLUDED.sector,
			role = EXCLUDED.role,
			schedule = EXCLUDED.schedule,
			compensation = EXCLUDED.compensation,
			location = EXCLUDED.location,
			profile_html = EXCLUDED.profile_html,
			tasks_html = EXCLUDED.tasks_html,
			observations_html = EXCLUDED.observations_html,
			external_link = EXCLUDED.external_link,
			cv_deadline_date = EXCLUDED.cv_deadline_date,
			scraped_at = EXCLUDED.scraped_at`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, d)
	return err
}

func (s *DetailStore) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM offer_details WHERE id = $1)`, id)
	return exists, err
}

// ListArchivable returns details that point at an external document but
// have no archived attachment yet.
func (s *DetailStore) ListArchivable(ctx context.Context) ([]domain.ArchiveCandidate, error) {
	var candidates []domain.ArchiveCandidate
	err := s.db.SelectContext(ctx, &candidates, `
		SELECT d.id, d.external_link
		FROM offer_details AS d
		LEFT JOIN offer_attachments AS a ON a.id = d.id
		WHERE d.external_link != '' AND a.id IS NULL
		ORDER BY d.id`)
	return candidates, err
}
