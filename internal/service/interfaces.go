package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
	"github.com/olarrevi/Auto-oferta-applier/internal/oracle"
	"github.com/olarrevi/Auto-oferta-applier/internal/portal"
)

type ListedOfferStore interface {
	UpsertBatch(ctx context.Context, offers []domain.ListedOffer) error
	ExistingIDs(ctx context.Context, ids []string) (map[string]struct{}, error)
	Exists(ctx context.Context, id string) (bool, error)
	ListMissingDetail(ctx context.Context) ([]domain.ListedOffer, error)
}

type DetailStore interface {
	Upsert(ctx context.Context, detail *domain.OfferDetail) error
	Exists(ctx context.Context, id string) (bool, error)
	ListArchivable(ctx context.Context) ([]domain.ArchiveCandidate, error)
}

type AttachmentStore interface {
	Upsert(ctx context.Context, attachment *domain.OfferAttachment) error
	Exists(ctx context.Context, id string) (bool, error)
}

type ScoreStore interface {
	Upsert(ctx context.Context, score *domain.Score) error
	GetPair(ctx context.Context, offerID string, userID int64) (*domain.Score, error)
	ListPendingForUser(ctx context.Context, userID int64) ([]domain.ScoringCandidate, error)
	ListNotifiable(ctx context.Context, primaryUserID int64) ([]domain.NotificationCandidate, error)
	MarkNotified(ctx context.Context, offerID string, userID int64) error
}

type LetterStore interface {
	Insert(ctx context.Context, letter *domain.Letter) error
	Exists(ctx context.Context, offerID string, userID int64) (bool, error)
	ListCandidatesForUser(ctx context.Context, userID int64) ([]domain.LetterCandidate, error)
	ListFitForUser(ctx context.Context, userID int64) ([]domain.Letter, error)
	ListDraftable(ctx context.Context, userID int64) ([]domain.Letter, error)
	MarkEmailSent(ctx context.Context, offerID string, userID int64) error
}

type UserStore interface {
	ListWithCV(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
}

type PortalClient interface {
	Login(ctx context.Context) error
	FetchListingPage(ctx context.Context, page int) (string, error)
	ParseListing(markup string, scrapedAt time.Time) ([]domain.ListedOffer, error)
	FetchDetail(ctx context.Context, detailURL string) (string, error)
	ParseDetail(markup, detailURL string, scrapedAt time.Time) (*domain.OfferDetail, *portal.ApplicationForm, error)
	FetchAttachment(ctx context.Context, url string) (string, []byte, error)
	ResolveApplicationLink(ctx context.Context, form *portal.ApplicationForm) (string, error)
}

type Extractor interface {
	HTMLText(raw string) string
	Contacts(raw string) []string
	PDFText(data []byte) string
	FileText(path string) string
}

type Oracle interface {
	Evaluate(ctx context.Context, cvText, offerText string) (*domain.Verdict, error)
	ComposeLetter(ctx context.Context, cvText, offerText, userName string) (*domain.LetterDraft, error)
	ComposeNotification(ctx context.Context, userName string, facts oracle.NotificationFacts) (*domain.EmailDraft, error)
}

type Renderer interface {
	Render(offerID, userName, letterText, cvPath string) error
	FilesPresent(offerID, userName string) bool
	LetterPath(offerID, userName string) string
	CVCopyPath(offerID, userName string) string
}

type MailTransport interface {
	CreateDraft(ctx context.Context, to, subject, body string, attachments []string) (string, error)
	Send(ctx context.Context, to, subject, body string) (string, error)
}

type Publisher interface {
	PublishCollected(ctx context.Context, offer *domain.ListedOffer) error
	PublishFit(ctx context.Context, score *domain.Score) error
	Close() error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
