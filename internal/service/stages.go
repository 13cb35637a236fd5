package service

import (
	"context"
	"fmt"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
)

// StageTracker computes how far an offer has progressed for a given
// user by checking row presence stage by stage. It never caches: an
// earlier crashed run, or another process, may have advanced an offer
// between orchestrator passes.
type StageTracker struct {
	listed  ListedOfferStore
	details DetailStore
	files   AttachmentStore
	scores  ScoreStore
	letters LetterStore
}

func NewStageTracker(listed ListedOfferStore, details DetailStore, files AttachmentStore, scores ScoreStore, letters LetterStore) *StageTracker {
	return &StageTracker{
		listed:  listed,
		details: details,
		files:   files,
		scores:  scores,
		letters: letters,
	}
}

// NextStage returns the first stage the pair (offerID, userID) has not
// reached yet, or StageDone when the pair is terminal. A not-fit score
// and an already-notified score are both terminal.
func (t *StageTracker) NextStage(ctx context.Context, offerID string, userID int64) (domain.Stage, error) {
	ok, err := t.listed.Exists(ctx, offerID)
	if err != nil {
		return 0, fmt.Errorf("check listed: %w", err)
	}
	if !ok {
		return domain.StageListed, nil
	}

	ok, err = t.details.Exists(ctx, offerID)
	if err != nil {
		return 0, fmt.Errorf("check detail: %w", err)
	}
	if !ok {
		return domain.StageDetailed, nil
	}

	ok, err = t.files.Exists(ctx, offerID)
	if err != nil {
		return 0, fmt.Errorf("check attachment: %w", err)
	}
	if !ok {
		return domain.StageArchived, nil
	}

	score, err := t.scores.GetPair(ctx, offerID, userID)
	if err != nil {
		return 0, fmt.Errorf("check score: %w", err)
	}
	if score == nil {
		return domain.StageScored, nil
	}
	if score.IsFit == 0 || score.Notified != 0 {
		return domain.StageDone, nil
	}

	ok, err = t.letters.Exists(ctx, offerID, userID)
	if err != nil {
		return 0, fmt.Errorf("check letter: %w", err)
	}
	if !ok {
		return domain.StageLettered, nil
	}

	return domain.StageNotified, nil
}
