package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
	"github.com/olarrevi/Auto-oferta-applier/internal/oracle"
)

// Config carries the orchestrator knobs. See config.PipelineConfig for
// the file-level defaults.
type Config struct {
	HorizonDays   int
	RecencyDays   int
	MaxPages      int
	PageDelay     time.Duration
	PrimaryUserID int64
	DraftUserID   int64
}

// Pipeline drives one full pass over the offer lifecycle: listing,
// detail enrichment, attachment archival, per-user scoring, lettering,
// Gmail drafts and notifications. Every stage re-derives its pending
// work from the store, so a rerun after a crash picks up exactly where
// the previous run stopped.
type Pipeline struct {
	portal    PortalClient
	extractor Extractor
	oracle    Oracle
	renderer  Renderer
	mail      MailTransport
	publisher Publisher
	offers    ListedOfferStore
	details   DetailStore
	files     AttachmentStore
	scores    ScoreStore
	letters   LetterStore
	users     UserStore
	txManager TransactionManager
	logger    *slog.Logger
	config    Config

	now func() time.Time
}

func NewPipeline(
	portal PortalClient,
	extractor Extractor,
	oracle Oracle,
	renderer Renderer,
	mail MailTransport,
	publisher Publisher,
	offers ListedOfferStore,
	details DetailStore,
	files AttachmentStore,
	scores ScoreStore,
	letters LetterStore,
	users UserStore,
	txManager TransactionManager,
	logger *slog.Logger,
	cfg Config,
) *Pipeline {
	return &Pipeline{
		portal:    portal,
		extractor: extractor,
		oracle:    oracle,
		renderer:  renderer,
		mail:      mail,
		publisher: publisher,
		offers:    offers,
		details:   details,
		files:     files,
		scores:    scores,
		letters:   letters,
		users:     users,
		txManager: txManager,
		logger:    logger,
		config:    cfg,
		now:       time.Now,
	}
}

func (p *Pipeline) Run(ctx context.Context) (*domain.RunStats, error) {
	startTime := p.now()
	stats := &domain.RunStats{}

	p.logger.Info("starting run",
		"horizon_days", p.config.HorizonDays,
		"max_pages", p.config.MaxPages,
	)

	if err := p.portal.Login(ctx); err != nil {
		return nil, fmt.Errorf("portal login: %w", err)
	}

	collected, err := p.collect(ctx, stats)
	if err != nil {
		return stats, fmt.Errorf("collect listings: %w", err)
	}
	if err := p.storeListings(ctx, collected, stats); err != nil {
		return stats, fmt.Errorf("store listings: %w", err)
	}

	p.enrichDetails(ctx, stats)
	p.archiveAttachments(ctx, stats)

	users, err := p.users.ListWithCV(ctx)
	if err != nil {
		return stats, fmt.Errorf("list users: %w", err)
	}

	for i := range users {
		p.scoreOffers(ctx, &users[i], stats)
	}
	for i := range users {
		p.composeLetters(ctx, &users[i], stats)
		p.reconcileLetters(ctx, &users[i], stats)
	}

	p.createDrafts(ctx, stats)
	p.sendNotifications(ctx, stats)

	stats.Duration = time.Since(startTime)

	p.logger.Info("run completed",
		"fetched", stats.Fetched,
		"new", stats.New,
		"detailed", stats.Detailed,
		"archived", stats.Archived,
		"scored", stats.Scored,
		"lettered", stats.Lettered,
		"rendered", stats.Rendered,
		"drafted", stats.Drafted,
		"notified", stats.Notified,
		"discarded", stats.Discarded,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

// collect walks the paginated listing until a page comes back empty,
// the last offer on a page falls past the horizon, or the page cap is
// hit. Applies the deadline filter and the intra-batch dedup as pages
// are consumed, since pagination can repeat rows between pages.
func (p *Pipeline) collect(ctx context.Context, stats *domain.RunStats) ([]domain.ListedOffer, error) {
	today := p.now()
	seen := make(map[string]struct{})

	var collected []domain.ListedOffer
	for page := 1; page <= p.config.MaxPages; page++ {
		if page > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(p.config.PageDelay):
			}
		}

		markup, err := p.portal.FetchListingPage(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}

		offers, err := p.portal.ParseListing(markup, today)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		if len(offers) == 0 {
			p.logger.Debug("empty listing page, stopping", "page", page)
			break
		}
		stats.Fetched += len(offers)

		for _, o := range offers {
			if o.ID == "" {
				stats.Skipped++
				continue
			}
			if !IsCollectible(o.DeadlineISO, today) {
				stats.Skipped++
				continue
			}
			if _, dup := seen[o.ID]; dup {
				stats.Skipped++
				continue
			}
			seen[o.ID] = struct{}{}
			collected = append(collected, o)
		}

		if HorizonReached(offers[len(offers)-1].OfferDateISO, today, p.config.HorizonDays) {
			p.logger.Debug("horizon reached, stopping", "page", page)
			break
		}
	}

	p.logger.Info("listing walk done", "fetched", stats.Fetched, "collected", len(collected))
	return collected, nil
}

// storeListings drops offers already in the store, then upserts the
// rest in one transaction. The read-then-write check is not atomic;
// the upsert tolerates the duplicate a concurrent run could sneak in.
func (p *Pipeline) storeListings(ctx context.Context, collected []domain.ListedOffer, stats *domain.RunStats) error {
	if len(collected) == 0 {
		return nil
	}

	ids := make([]string, len(collected))
	for i, o := range collected {
		ids[i] = o.ID
	}
	existing, err := p.offers.ExistingIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("existing ids: %w", err)
	}

	var fresh []domain.ListedOffer
	for _, o := range collected {
		if _, ok := existing[o.ID]; ok {
			stats.Skipped++
			continue
		}
		fresh = append(fresh, o)
	}
	if len(fresh) == 0 {
		return nil
	}

	err = p.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return p.offers.UpsertBatch(txCtx, fresh)
	})
	if err != nil {
		return fmt.Errorf("upsert batch: %w", err)
	}
	stats.New += len(fresh)

	if p.publisher != nil {
		for i := range fresh {
			if err := p.publisher.PublishCollected(ctx, &fresh[i]); err != nil {
				p.logger.Error("publish collected offer", "offer_id", fresh[i].ID, "error", err)
				stats.Errors++
			}
		}
	}

	return nil
}

// enrichDetails fetches and parses the detail page for every listed
// offer without one. A failure skips that offer, never the batch.
func (p *Pipeline) enrichDetails(ctx context.Context, stats *domain.RunStats) {
	pending, err := p.offers.ListMissingDetail(ctx)
	if err != nil {
		p.logger.Error("list offers missing detail", "error", err)
		stats.Errors++
		return
	}

	for _, o := range pending {
		markup, err := p.portal.FetchDetail(ctx, o.DetailLink)
		if err != nil {
			p.logger.Error("fetch detail", "offer_id", o.ID, "error", err)
			stats.Errors++
			continue
		}

		detail, form, err := p.portal.ParseDetail(markup, o.DetailLink, p.now())
		if err != nil {
			p.logger.Error("parse detail", "offer_id", o.ID, "error", err)
			stats.Errors++
			continue
		}
		detail.ID = o.ID

		if form != nil {
			link, err := p.portal.ResolveApplicationLink(ctx, form)
			if err != nil {
				p.logger.Warn("resolve application link", "offer_id", o.ID, "error", err)
			} else {
				detail.ExternalLink = link
			}
		}

		if err := p.details.Upsert(ctx, detail); err != nil {
			p.logger.Error("upsert detail", "offer_id", o.ID, "error", err)
			stats.Errors++
			continue
		}
		stats.Detailed++
	}
}

// archiveAttachments downloads the external document of every detailed
// offer that has a link but no archived text yet. Exactly one of the
// two text columns is populated per row.
func (p *Pipeline) archiveAttachments(ctx context.Context, stats *domain.RunStats) {
	pending, err := p.details.ListArchivable(ctx)
	if err != nil {
		p.logger.Error("list archivable offers", "error", err)
		stats.Errors++
		return
	}

	for _, c := range pending {
		contentType, body, err := p.portal.FetchAttachment(ctx, c.ExternalLink)
		if err != nil {
			p.logger.Error("fetch attachment", "offer_id", c.ID, "url", c.ExternalLink, "error", err)
			stats.Errors++
			continue
		}

		attachment := &domain.OfferAttachment{
			ID:           c.ID,
			SourceURL:    c.ExternalLink,
			DownloadedAt: p.now(),
		}
		if isPDF(contentType, c.ExternalLink) {
			text := p.extractor.PDFText(body)
			attachment.PDFText = &text
		} else {
			text := p.extractor.HTMLText(string(body))
			if contacts := p.extractor.Contacts(string(body)); len(contacts) > 0 {
				text += "\n\nCONTACTOS:\n" + strings.Join(contacts, "\n")
			}
			attachment.RawHTMLText = &text
		}

		if err := p.files.Upsert(ctx, attachment); err != nil {
			p.logger.Error("upsert attachment", "offer_id", c.ID, "error", err)
			stats.Errors++
			continue
		}
		stats.Archived++
	}
}

// scoreOffers evaluates every archived offer the user has no score for.
func (p *Pipeline) scoreOffers(ctx context.Context, user *domain.User, stats *domain.RunStats) {
	cvText := p.extractor.FileText(user.CVPath)
	if cvText == "" {
		p.logger.Warn("cv text unavailable, skipping user", "user_id", user.ID, "cv_path", user.CVPath)
		return
	}

	pending, err := p.scores.ListPendingForUser(ctx, user.ID)
	if err != nil {
		p.logger.Error("list pending scores", "user_id", user.ID, "error", err)
		stats.Errors++
		return
	}

	for _, c := range pending {
		verdict, err := p.oracle.Evaluate(ctx, cvText, p.scoringText(c))
		if err != nil {
			p.logger.Error("evaluate offer", "offer_id", c.ID, "user_id", user.ID, "error", err)
			stats.Errors++
			continue
		}

		score := &domain.Score{
			OfferID:     c.ID,
			UserID:      user.ID,
			Score:       verdict.Score,
			IsFit:       verdict.Fit,
			Rationale:   verdict.Rationale,
			EvaluatedAt: p.now(),
		}
		if err := p.scores.Upsert(ctx, score); err != nil {
			p.logger.Error("upsert score", "offer_id", c.ID, "user_id", user.ID, "error", err)
			stats.Errors++
			continue
		}
		stats.Scored++

		if p.publisher != nil && score.IsFit == 1 {
			if err := p.publisher.PublishFit(ctx, score); err != nil {
				p.logger.Error("publish fit score", "offer_id", c.ID, "error", err)
				stats.Errors++
			}
		}
	}
}

// composeLetters writes a cover letter for every fit score of the user
// that lacks one, then renders the document and copies the CV next to
// it. The letter row commits before any file is written; the
// reconciliation pass covers a crash in between.
func (p *Pipeline) composeLetters(ctx context.Context, user *domain.User, stats *domain.RunStats) {
	cvText := p.extractor.FileText(user.CVPath)
	if cvText == "" {
		return
	}

	pending, err := p.letters.ListCandidatesForUser(ctx, user.ID)
	if err != nil {
		p.logger.Error("list letter candidates", "user_id", user.ID, "error", err)
		stats.Errors++
		return
	}

	for _, c := range pending {
		draft, err := p.oracle.ComposeLetter(ctx, cvText, attachmentText(c.RawHTMLText, c.PDFText), user.Name)
		if err != nil {
			p.logger.Error("compose letter", "offer_id", c.OfferID, "user_id", user.ID, "error", err)
			stats.Errors++
			continue
		}

		letter := &domain.Letter{
			OfferID:     c.OfferID,
			UserID:      user.ID,
			LetterText:  draft.LetterText,
			Recipient:   draft.Recipient,
			Subject:     draft.Subject,
			Body:        draft.Body,
			GeneratedAt: p.now(),
			AllowsEmail: draft.AllowsEmail,
		}
		if err := p.letters.Insert(ctx, letter); err != nil {
			p.logger.Error("insert letter", "offer_id", c.OfferID, "user_id", user.ID, "error", err)
			stats.Errors++
			continue
		}
		stats.Lettered++

		if err := p.renderer.Render(c.OfferID, user.Name, draft.LetterText, user.CVPath); err != nil {
			p.logger.Error("render letter", "offer_id", c.OfferID, "user_id", user.ID, "error", err)
			stats.Errors++
			continue
		}
		stats.Rendered++
	}
}

// reconcileLetters re-renders any committed letter whose output files
// are missing on disk. File presence, not a flag, decides.
func (p *Pipeline) reconcileLetters(ctx context.Context, user *domain.User, stats *domain.RunStats) {
	committed, err := p.letters.ListFitForUser(ctx, user.ID)
	if err != nil {
		p.logger.Error("list letters for reconciliation", "user_id", user.ID, "error", err)
		stats.Errors++
		return
	}

	for _, l := range committed {
		if p.renderer.FilesPresent(l.OfferID, user.Name) {
			continue
		}
		p.logger.Info("re-rendering missing letter files", "offer_id", l.OfferID, "user_id", user.ID)
		if err := p.renderer.Render(l.OfferID, user.Name, l.LetterText, user.CVPath); err != nil {
			p.logger.Error("re-render letter", "offer_id", l.OfferID, "user_id", user.ID, "error", err)
			stats.Errors++
			continue
		}
		stats.Rendered++
	}
}

// createDrafts puts a Gmail draft in the operator's mailbox for every
// letter the composer cleared for email. The draft is never sent
// automatically; a human reviews and hits send.
func (p *Pipeline) createDrafts(ctx context.Context, stats *domain.RunStats) {
	if p.mail == nil {
		return
	}

	user, err := p.users.Get(ctx, p.config.DraftUserID)
	if err != nil {
		p.logger.Error("load draft user", "user_id", p.config.DraftUserID, "error", err)
		stats.Errors++
		return
	}
	if user == nil {
		p.logger.Warn("draft user not found", "user_id", p.config.DraftUserID)
		return
	}

	pending, err := p.letters.ListDraftable(ctx, user.ID)
	if err != nil {
		p.logger.Error("list draftable letters", "user_id", user.ID, "error", err)
		stats.Errors++
		return
	}

	for _, l := range pending {
		var attachments []string
		if p.renderer.FilesPresent(l.OfferID, user.Name) {
			attachments = []string{
				p.renderer.LetterPath(l.OfferID, user.Name),
				p.renderer.CVCopyPath(l.OfferID, user.Name),
			}
		}

		draftID, err := p.mail.CreateDraft(ctx, l.Recipient, l.Subject, l.Body, attachments)
		if err != nil {
			p.logger.Error("create draft", "offer_id", l.OfferID, "error", err)
			stats.Errors++
			continue
		}

		if err := p.letters.MarkEmailSent(ctx, l.OfferID, l.UserID); err != nil {
			p.logger.Error("mark letter drafted", "offer_id", l.OfferID, "error", err)
			stats.Errors++
			continue
		}
		stats.Drafted++
		p.logger.Info("draft created", "offer_id", l.OfferID, "draft_id", draftID)
	}
}

// sendNotifications emails every non-primary user their fit offers,
// subject to date eligibility. Expired offers are marked notified
// without sending so they never come back on the next run.
func (p *Pipeline) sendNotifications(ctx context.Context, stats *domain.RunStats) {
	if p.mail == nil {
		return
	}

	pending, err := p.scores.ListNotifiable(ctx, p.config.PrimaryUserID)
	if err != nil {
		p.logger.Error("list notifiable scores", "error", err)
		stats.Errors++
		return
	}

	today := p.now()
	for _, c := range pending {
		decision := ShouldNotify(c.CVDeadlineISO, c.DeadlineISO, c.OfferDateISO, today, p.config.RecencyDays)
		if decision == NotifyDiscard {
			if err := p.scores.MarkNotified(ctx, c.OfferID, c.UserID); err != nil {
				p.logger.Error("mark discarded score", "offer_id", c.OfferID, "user_id", c.UserID, "error", err)
				stats.Errors++
				continue
			}
			stats.Discarded++
			continue
		}
		if decision == NotifyBlind {
			p.logger.Warn("no usable dates, notifying anyway", "offer_id", c.OfferID, "user_id", c.UserID)
		}

		facts := oracle.NotificationFacts{
			Title:        c.Title,
			Role:         c.Role,
			Location:     c.Location,
			Compensation: c.Compensation,
			Link:         c.ExternalLink,
			Rationale:    c.Rationale,
			Description:  attachmentText(c.RawHTMLText, c.PDFText),
		}
		draft, err := p.oracle.ComposeNotification(ctx, c.UserName, facts)
		if err != nil {
			p.logger.Error("compose notification", "offer_id", c.OfferID, "user_id", c.UserID, "error", err)
			stats.Errors++
			continue
		}

		if _, err := p.mail.Send(ctx, c.UserEmail, draft.Subject, draft.Body); err != nil {
			p.logger.Error("send notification", "offer_id", c.OfferID, "user_id", c.UserID, "error", err)
			stats.Errors++
			continue
		}

		if err := p.scores.MarkNotified(ctx, c.OfferID, c.UserID); err != nil {
			p.logger.Error("mark notified score", "offer_id", c.OfferID, "user_id", c.UserID, "error", err)
			stats.Errors++
			continue
		}
		stats.Notified++
	}
}

// scoringText flattens a detail row into the prompt the oracle reads:
// labeled fields first, then the three free-text blocks stripped of
// markup.
func (p *Pipeline) scoringText(c domain.ScoringCandidate) string {
	var sb strings.Builder
	writeField := func(label, value string) {
		if value != "" {
			sb.WriteString(label)
			sb.WriteString(": ")
			sb.WriteString(value)
			sb.WriteString("\n")
		}
	}
	writeField("Oferta", c.Title)
	writeField("Activitat", c.Activity)
	writeField("Sector", c.Sector)
	writeField("Funcions", c.Role)
	writeField("Horari", c.Schedule)
	writeField("Remuneracio", c.Compensation)
	writeField("Lloc", c.Location)
	writeField("Perfil", p.extractor.HTMLText(c.ProfileHTML))
	writeField("Tasques", p.extractor.HTMLText(c.TasksHTML))
	writeField("Observacions", p.extractor.HTMLText(c.ObservationsHTML))
	return sb.String()
}

func attachmentText(rawHTMLText, pdfText *string) string {
	if pdfText != nil && *pdfText != "" {
		return *pdfText
	}
	if rawHTMLText != nil {
		return *rawHTMLText
	}
	return ""
}

func isPDF(contentType, url string) bool {
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return true
	}
	path := url
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return strings.HasSuffix(strings.ToLower(path), ".pdf")
}
