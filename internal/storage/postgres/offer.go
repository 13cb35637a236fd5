package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

type ListedOfferStore struct {
	db *sqlx.DB
}

func NewListedOfferStore(db *sqlx.DB) *ListedOfferStore {
	return &ListedOfferStore{db: db}
}

// upsertChunk keeps each statement well under the placeholder limit.
const upsertChunk = 500

// UpsertBatch inserts the offers in chunked multi-row statements,
// refreshing title and dates on conflict. Safe against the cross-run
// dedup race: a concurrent insert of the same id just becomes an update.
// Run it under WithTransaction when the batch must land atomically.
func (s *ListedOfferStore) UpsertBatch(ctx context.Context, offers []domain.ListedOffer) error {
	for len(offers) > 0 {
		n := len(offers)
		if n > upsertChunk {
			n = upsertChunk
		}
		if err := s.upsertChunk(ctx, offers[:n]); err != nil {
			return err
		}
		offers = offers[n:]
	}
	return nil
}

func (s *ListedOfferStore) upsertChunk(ctx context.Context, offers []domain.ListedOffer) error {
	var sb strings.Builder
	sb.WriteString(`INSERT INTO listed_offers
		(id, title, link, offer_date_display, deadline_display, offer_date_iso, deadline_iso, scraped_at)
	VALUES `)

	const cols = 8
	args := make([]interface{}, 0, len(offers)*cols)
	for i, o := range offers {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * cols
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8)
		args = append(args,
			o.ID, o.Title, o.DetailLink,
			o.OfferDateDisplay, o.DeadlineDisplay,
			o.OfferDateISO, o.DeadlineISO, o.ScrapedAt,
		)
	}

	sb.WriteString(` ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		link = EXCLUDED.link,
		offer_date_display = EXCLUDED.offer_date_display,
		deadline_display = EXCLUDED.deadline_display,
		offer_date_iso = EXCLUDED.offer_date_iso,
		deadline_iso = EXCLUDED.deadline_iso,
		scraped_at = EXCLUDED.scraped_at`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), args...)
	return err
}

// ExistingIDs answers the cross-run dedup check: which of the candidate
// ids are already stored.
func (s *ListedOfferStore) ExistingIDs(ctx context.Context, ids []string) (map[string]struct{}, error) {
	result := make(map[string]struct{})
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM listed_offers WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result[id] = struct{}{}
	}

	return result, rows.Err()
}

func (s *ListedOfferStore) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM listed_offers WHERE id = $1)`, id)
	return exists, err
}

// ListMissingDetail returns the offers that were listed but never
// enriched with a detail row.
func (s *ListedOfferStore) ListMissingDetail(ctx context.Context) ([]domain.ListedOffer, error) {
	var offers []domain.ListedOffer
	err := s.db.SelectContext(ctx, &offers, `
		SELECT l.id, l.title, l.link, l.offer_date_display, l.deadline_display,
		       l.offer_date_iso, l.deadline_iso, l.scraped_at
		FROM listed_offers AS l
		LEFT JOIN offer_details AS d ON d.id = l.id
		WHERE d.id IS NULL
		ORDER BY l.id`)
	return offers, err
}
