//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
	"github.com/olarrevi/Auto-oferta-applier/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_offers.up.sql"),
			filepath.Join(migrationsPath, "002_create_users_scores_letters.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM letters")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM scores")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM users")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM offer_attachments")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM offer_details")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM listed_offers")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) listOffer(id string) domain.ListedOffer {
	return domain.ListedOffer{
		ID:               id,
		Title:            "Tecnic de projectes",
		DetailLink:       "https://example.org/membres/oferta/" + id,
		OfferDateDisplay: "01/06/2026",
		DeadlineDisplay:  "30/09/2026",
		OfferDateISO:     "2026-06-01",
		DeadlineISO:      "2026-09-30",
		ScrapedAt:        time.Now().Truncate(time.Microsecond),
	}
}

func (s *PostgresIntegrationSuite) insertUser(name, email, cvPath string) int64 {
	var id int64
	err := s.db.GetContext(s.ctx, &id,
		`INSERT INTO users (name, email, cv_path) VALUES ($1, $2, $3) RETURNING id`,
		name, email, cvPath)
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) TestListedOfferStore_UpsertBatch_Insert() {
	store := NewListedOfferStore(s.db)

	err := store.UpsertBatch(s.ctx, []domain.ListedOffer{s.listOffer("100"), s.listOffer("101")})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM listed_offers")
	s.NoError(err)
	s.Equal(2, count)
}

func (s *PostgresIntegrationSuite) TestListedOfferStore_UpsertBatch_RefreshesOnConflict() {
	store := NewListedOfferStore(s.db)

	offer := s.listOffer("100")
	s.NoError(store.UpsertBatch(s.ctx, []domain.ListedOffer{offer}))

	offer.Title = "Updated title"
	offer.DeadlineISO = "2026-10-15"
	s.NoError(store.UpsertBatch(s.ctx, []domain.ListedOffer{offer}))

	var title, deadline string
	s.NoError(s.db.GetContext(s.ctx, &title, "SELECT title FROM listed_offers WHERE id = $1", "100"))
	s.NoError(s.db.GetContext(s.ctx, &deadline, "SELECT deadline_iso FROM listed_offers WHERE id = $1", "100"))
	s.Equal("Updated title", title)
	s.Equal("2026-10-15", deadline)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM listed_offers"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestListedOfferStore_ExistingIDs() {
	store := NewListedOfferStore(s.db)

	s.NoError(store.UpsertBatch(s.ctx, []domain.ListedOffer{s.listOffer("100"), s.listOffer("101")}))

	existing, err := store.ExistingIDs(s.ctx, []string{"100", "101", "999"})
	s.NoError(err)
	s.Len(existing, 2)
	s.Contains(existing, "100")
	s.Contains(existing, "101")
	s.NotContains(existing, "999")
}

func (s *PostgresIntegrationSuite) TestListedOfferStore_ListMissingDetail() {
	offers := NewListedOfferStore(s.db)
	details := NewDetailStore(s.db)

	s.NoError(offers.UpsertBatch(s.ctx, []domain.ListedOffer{s.listOffer("100"), s.listOffer("101")}))
	s.NoError(details.Upsert(s.ctx, &domain.OfferDetail{ID: "100", Entity: "ACME", ScrapedAt: time.Now()}))

	missing, err := offers.ListMissingDetail(s.ctx)
	s.NoError(err)
	s.Len(missing, 1)
	s.Equal("101", missing[0].ID)
}

func (s *PostgresIntegrationSuite) TestDetailStore_ListArchivable() {
	offers := NewListedOfferStore(s.db)
	details := NewDetailStore(s.db)
	files := NewAttachmentStore(s.db)

	s.NoError(offers.UpsertBatch(s.ctx, []domain.ListedOffer{
		s.listOffer("100"), s.listOffer("101"), s.listOffer("102"),
	}))
	s.NoError(details.Upsert(s.ctx, &domain.OfferDetail{ID: "100", ExternalLink: "https://jobs.example.com/1", ScrapedAt: time.Now()}))
	s.NoError(details.Upsert(s.ctx, &domain.OfferDetail{ID: "101", ExternalLink: "", ScrapedAt: time.Now()}))
	s.NoError(details.Upsert(s.ctx, &domain.OfferDetail{ID: "102", ExternalLink: "https://jobs.example.com/2", ScrapedAt: time.Now()}))
	s.NoError(files.Upsert(s.ctx, &domain.OfferAttachment{
		ID: "102", SourceURL: "https://jobs.example.com/2",
		DownloadedAt: time.Now(), RawHTMLText: utils.Ptr("archived"),
	}))

	archivable, err := details.ListArchivable(s.ctx)
	s.NoError(err)
	s.Len(archivable, 1)
	s.Equal("100", archivable[0].ID)
	s.Equal("https://jobs.example.com/1", archivable[0].ExternalLink)
}

func (s *PostgresIntegrationSuite) TestAttachmentStore_UpsertAndExists() {
	offers := NewListedOfferStore(s.db)
	details := NewDetailStore(s.db)
	files := NewAttachmentStore(s.db)

	s.NoError(offers.UpsertBatch(s.ctx, []domain.ListedOffer{s.listOffer("100")}))
	s.NoError(details.Upsert(s.ctx, &domain.OfferDetail{ID: "100", ScrapedAt: time.Now()}))

	exists, err := files.Exists(s.ctx, "100")
	s.NoError(err)
	s.False(exists)

	s.NoError(files.Upsert(s.ctx, &domain.OfferAttachment{
		ID: "100", SourceURL: "https://jobs.example.com/1",
		DownloadedAt: time.Now(), PDFText: utils.Ptr("pdf body"),
	}))

	exists, err = files.Exists(s.ctx, "100")
	s.NoError(err)
	s.True(exists)
}

func (s *PostgresIntegrationSuite) TestScoreStore_Upsert_KeepsNotifiedFlag() {
	offers := NewListedOfferStore(s.db)
	scores := NewScoreStore(s.db)
	userID := s.insertUser("Maria", "maria@example.com", "/cv/maria.pdf")

	s.NoError(offers.UpsertBatch(s.ctx, []domain.ListedOffer{s.listOffer("100")}))
	s.NoError(scores.Upsert(s.ctx, &domain.Score{
		OfferID: "100", UserID: userID, Score: 7.5, IsFit: 1,
		Rationale: "good match", EvaluatedAt: time.Now(),
	}))
	s.NoError(scores.MarkNotified(s.ctx, "100", userID))

	s.NoError(scores.Upsert(s.ctx, &domain.Score{
		OfferID: "100", UserID: userID, Score: 8.0, IsFit: 1,
		Rationale: "re-evaluated", EvaluatedAt: time.Now(),
	}))

	score, err := scores.GetPair(s.ctx, "100", userID)
	s.NoError(err)
	s.Require().NotNil(score)
	s.Equal(8.0, score.Score)
	s.Equal(1, score.Notified)
}

func (s *PostgresIntegrationSuite) TestScoreStore_GetPair_NilWhenMissing() {
	scores := NewScoreStore(s.db)

	score, err := scores.GetPair(s.ctx, "404", 1)
	s.NoError(err)
	s.Nil(score)
}

func (s *PostgresIntegrationSuite) TestScoreStore_ListPendingForUser() {
	offers := NewListedOfferStore(s.db)
	details := NewDetailStore(s.db)
	files := NewAttachmentStore(s.db)
	scores := NewScoreStore(s.db)
	userID := s.insertUser("Maria", "maria@example.com", "/cv/maria.pdf")

	s.NoError(offers.UpsertBatch(s.ctx, []domain.ListedOffer{s.listOffer("100"), s.listOffer("101")}))
	for _, id := range []string{"100", "101"} {
		s.NoError(details.Upsert(s.ctx, &domain.OfferDetail{ID: id, Role: "enginyer", ScrapedAt: time.Now()}))
		s.NoError(files.Upsert(s.ctx, &domain.OfferAttachment{
			ID: id, SourceURL: "https://jobs.example.com/" + id,
			DownloadedAt: time.Now(), RawHTMLText: utils.Ptr("text"),
		}))
	}
	s.NoError(scores.Upsert(s.ctx, &domain.Score{OfferID: "100", UserID: userID, EvaluatedAt: time.Now()}))

	pending, err := scores.ListPendingForUser(s.ctx, userID)
	s.NoError(err)
	s.Len(pending, 1)
	s.Equal("101", pending[0].ID)
}

func (s *PostgresIntegrationSuite) TestScoreStore_ListNotifiable_ExcludesPrimaryUser() {
	offers := NewListedOfferStore(s.db)
	details := NewDetailStore(s.db)
	files := NewAttachmentStore(s.db)
	scores := NewScoreStore(s.db)

	primary := s.insertUser("Owner", "owner@example.com", "/cv/owner.pdf")
	other := s.insertUser("Maria", "maria@example.com", "/cv/maria.pdf")

	s.NoError(offers.UpsertBatch(s.ctx, []domain.ListedOffer{s.listOffer("100")}))
	s.NoError(details.Upsert(s.ctx, &domain.OfferDetail{ID: "100", CVDeadlineISO: "2026-09-15", ScrapedAt: time.Now()}))
	s.NoError(files.Upsert(s.ctx, &domain.OfferAttachment{
		ID: "100", SourceURL: "https://jobs.example.com/1",
		DownloadedAt: time.Now(), RawHTMLText: utils.Ptr("text"),
	}))
	for _, uid := range []int64{primary, other} {
		s.NoError(scores.Upsert(s.ctx, &domain.Score{
			OfferID: "100", UserID: uid, Score: 8, IsFit: 1,
			Rationale: "fit", EvaluatedAt: time.Now(),
		}))
	}

	notifiable, err := scores.ListNotifiable(s.ctx, primary)
	s.NoError(err)
	s.Require().Len(notifiable, 1)
	s.Equal(other, notifiable[0].UserID)
	s.Equal("maria@example.com", notifiable[0].UserEmail)
	s.Equal("2026-09-15", notifiable[0].CVDeadlineISO)

	s.NoError(scores.MarkNotified(s.ctx, "100", other))
	notifiable, err = scores.ListNotifiable(s.ctx, primary)
	s.NoError(err)
	s.Len(notifiable, 0)
}

func (s *PostgresIntegrationSuite) TestLetterStore_Insert_IgnoresDuplicates() {
	offers := NewListedOfferStore(s.db)
	letters := NewLetterStore(s.db)
	userID := s.insertUser("Maria", "maria@example.com", "/cv/maria.pdf")

	s.NoError(offers.UpsertBatch(s.ctx, []domain.ListedOffer{s.listOffer("100")}))

	letter := &domain.Letter{
		OfferID: "100", UserID: userID, LetterText: "first version",
		Recipient: "hr@example.com", Subject: "Candidatura",
		Body: "Adjunto carta", GeneratedAt: time.Now(), AllowsEmail: 1,
	}
	s.NoError(letters.Insert(s.ctx, letter))

	letter.LetterText = "second version"
	s.NoError(letters.Insert(s.ctx, letter))

	var text string
	s.NoError(s.db.GetContext(s.ctx, &text,
		"SELECT letter_text FROM letters WHERE offer_id = $1 AND user_id = $2", "100", userID))
	s.Equal("first version", text)
}

func (s *PostgresIntegrationSuite) TestLetterStore_ListDraftable() {
	offers := NewListedOfferStore(s.db)
	scores := NewScoreStore(s.db)
	letters := NewLetterStore(s.db)
	userID := s.insertUser("Owner", "owner@example.com", "/cv/owner.pdf")

	s.NoError(offers.UpsertBatch(s.ctx, []domain.ListedOffer{s.listOffer("100"), s.listOffer("101"), s.listOffer("102")}))
	for _, id := range []string{"100", "101", "102"} {
		s.NoError(scores.Upsert(s.ctx, &domain.Score{OfferID: id, UserID: userID, IsFit: 1, EvaluatedAt: time.Now()}))
	}

	s.NoError(letters.Insert(s.ctx, &domain.Letter{
		OfferID: "100", UserID: userID, LetterText: "t",
		Recipient: "hr@example.com", GeneratedAt: time.Now(), AllowsEmail: 1,
	}))
	// No recipient, must not be drafted.
	s.NoError(letters.Insert(s.ctx, &domain.Letter{
		OfferID: "101", UserID: userID, LetterText: "t",
		GeneratedAt: time.Now(), AllowsEmail: 1,
	}))
	// Composer vetoed email.
	s.NoError(letters.Insert(s.ctx, &domain.Letter{
		OfferID: "102", UserID: userID, LetterText: "t",
		Recipient: "hr2@example.com", GeneratedAt: time.Now(), AllowsEmail: 0,
	}))

	draftable, err := letters.ListDraftable(s.ctx, userID)
	s.NoError(err)
	s.Require().Len(draftable, 1)
	s.Equal("100", draftable[0].OfferID)

	s.NoError(letters.MarkEmailSent(s.ctx, "100", userID))
	draftable, err = letters.ListDraftable(s.ctx, userID)
	s.NoError(err)
	s.Len(draftable, 0)
}

func (s *PostgresIntegrationSuite) TestLetterStore_ListCandidatesForUser() {
	offers := NewListedOfferStore(s.db)
	details := NewDetailStore(s.db)
	files := NewAttachmentStore(s.db)
	scores := NewScoreStore(s.db)
	letters := NewLetterStore(s.db)
	userID := s.insertUser("Maria", "maria@example.com", "/cv/maria.pdf")

	s.NoError(offers.UpsertBatch(s.ctx, []domain.ListedOffer{s.listOffer("100"), s.listOffer("101")}))
	for _, id := range []string{"100", "101"} {
		s.NoError(details.Upsert(s.ctx, &domain.OfferDetail{ID: id, ScrapedAt: time.Now()}))
		s.NoError(files.Upsert(s.ctx, &domain.OfferAttachment{
			ID: id, SourceURL: "u", DownloadedAt: time.Now(), PDFText: utils.Ptr("pdf " + id),
		}))
	}
	s.NoError(scores.Upsert(s.ctx, &domain.Score{OfferID: "100", UserID: userID, IsFit: 1, EvaluatedAt: time.Now()}))
	s.NoError(scores.Upsert(s.ctx, &domain.Score{OfferID: "101", UserID: userID, IsFit: 0, EvaluatedAt: time.Now()}))

	candidates, err := letters.ListCandidatesForUser(s.ctx, userID)
	s.NoError(err)
	s.Require().Len(candidates, 1)
	s.Equal("100", candidates[0].OfferID)
	s.Require().NotNil(candidates[0].PDFText)
	s.Equal("pdf 100", *candidates[0].PDFText)
}

func (s *PostgresIntegrationSuite) TestUserStore_ListWithCV() {
	users := NewUserStore(s.db)

	withCV := s.insertUser("Maria", "maria@example.com", "/cv/maria.pdf")
	s.insertUser("Empty", "empty@example.com", "")

	list, err := users.ListWithCV(s.ctx)
	s.NoError(err)
	s.Require().Len(list, 1)
	s.Equal(withCV, list[0].ID)

	user, err := users.Get(s.ctx, withCV)
	s.NoError(err)
	s.Require().NotNil(user)
	s.Equal("Maria", user.Name)
}

func (s *PostgresIntegrationSuite) TestTransaction_CommitAndRollback() {
	tm := NewTransactionManager(s.db)
	offers := NewListedOfferStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		return offers.UpsertBatch(ctx, []domain.ListedOffer{s.listOffer("100")})
	})
	s.NoError(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM listed_offers"))
	s.Equal(1, count)

	err = tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := offers.UpsertBatch(ctx, []domain.ListedOffer{s.listOffer("101")}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM listed_offers"))
	s.Equal(1, count)
}
