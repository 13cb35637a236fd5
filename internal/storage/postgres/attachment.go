package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

type AttachmentStore struct {
	db *sqlx.DB
}

func NewAttachmentStore(db *sqlx.DB) *AttachmentStore {
	return &AttachmentStore{db: db}
}

func (s *AttachmentStore) Upsert(ctx context.Context, a *domain.OfferAttachment) error {
	query := `
		INSERT INTO offer_attachments (id, source_url, downloaded_at, raw_html_text, pdf_text)
		VALUES (:id, :source_url, :downloaded_at, :raw_html_text, :pdf_text)
		ON CONFLICT (id) DO UPDATE SET
			source_url = EXCLUDED.source_url,
			downloaded_at = EXCLUDED.downloaded_at,
			raw_html_text = EXCLUDED.raw_html_text,
			pdf_text = EXCLUDED.pdf_text`

	_, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, a)
	return err
}

func (s *AttachmentStore) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM offer_attachments WHERE id = $1)`, id)
	return exists, err
}
