package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/olarrevi/Auto-oferta-applier/internal/domain"
	"github.com/olarrevi/Auto-oferta-applier/internal/service/mocks"
)

type StageTrackerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	offers  *mocks.MockListedOfferStore
	details *mocks.MockDetailStore
	files   *mocks.MockAttachmentStore
	scores  *mocks.MockScoreStore
	letters *mocks.MockLetterStore

	tracker *StageTracker
}

func (s *StageTrackerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.offers = mocks.NewMockListedOfferStore(s.ctrl)
	s.details = mocks.NewMockDetailStore(s.ctrl)
	s.files = mocks.NewMockAttachmentStore(s.ctrl)
	s.scores = mocks.NewMockScoreStore(s.ctrl)
	s.letters = mocks.NewMockLetterStore(s.ctrl)

	s.tracker = NewStageTracker(s.offers, s.details, s.files, s.scores, s.letters)
}

func (s *StageTrackerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStageTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(StageTrackerTestSuite))
}

func (s *StageTrackerTestSuite) TestNextStage_UnknownOffer() {
	ctx := context.Background()
	s.offers.EXPECT().Exists(ctx, "123").Return(false, nil)

	stage, err := s.tracker.NextStage(ctx, "123", 1)
	s.NoError(err)
	s.Equal(domain.StageListed, stage)
}

func (s *StageTrackerTestSuite) TestNextStage_MissingDetail() {
	ctx := context.Background()
	s.offers.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.details.EXPECT().Exists(ctx, "123").Return(false, nil)

	stage, err := s.tracker.NextStage(ctx, "123", 1)
	s.NoError(err)
	s.Equal(domain.StageDetailed, stage)
}

func (s *StageTrackerTestSuite) TestNextStage_MissingAttachment() {
	ctx := context.Background()
	s.offers.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.details.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.files.EXPECT().Exists(ctx, "123").Return(false, nil)

	stage, err := s.tracker.NextStage(ctx, "123", 1)
	s.NoError(err)
	s.Equal(domain.StageArchived, stage)
}

func (s *StageTrackerTestSuite) TestNextStage_MissingScore() {
	ctx := context.Background()
	s.offers.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.details.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.files.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.scores.EXPECT().GetPair(ctx, "123", int64(1)).Return(nil, nil)

	stage, err := s.tracker.NextStage(ctx, "123", 1)
	s.NoError(err)
	s.Equal(domain.StageScored, stage)
}

func (s *StageTrackerTestSuite) TestNextStage_NotFitIsTerminal() {
	ctx := context.Background()
	s.offers.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.details.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.files.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.scores.EXPECT().GetPair(ctx, "123", int64(1)).
		Return(&domain.Score{OfferID: "123", UserID: 1, IsFit: 0}, nil)

	stage, err := s.tracker.NextStage(ctx, "123", 1)
	s.NoError(err)
	s.Equal(domain.StageDone, stage)
}

func (s *StageTrackerTestSuite) TestNextStage_FitMissingLetter() {
	ctx := context.Background()
	s.offers.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.details.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.files.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.scores.EXPECT().GetPair(ctx, "123", int64(1)).
		Return(&domain.Score{OfferID: "123", UserID: 1, IsFit: 1}, nil)
	s.letters.EXPECT().Exists(ctx, "123", int64(1)).Return(false, nil)

	stage, err := s.tracker.NextStage(ctx, "123", 1)
	s.NoError(err)
	s.Equal(domain.StageLettered, stage)
}

func (s *StageTrackerTestSuite) TestNextStage_LetteredAwaitsNotification() {
	ctx := context.Background()
	s.offers.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.details.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.files.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.scores.EXPECT().GetPair(ctx, "123", int64(1)).
		Return(&domain.Score{OfferID: "123", UserID: 1, IsFit: 1}, nil)
	s.letters.EXPECT().Exists(ctx, "123", int64(1)).Return(true, nil)

	stage, err := s.tracker.NextStage(ctx, "123", 1)
	s.NoError(err)
	s.Equal(domain.StageNotified, stage)
}

func (s *StageTrackerTestSuite) TestNextStage_NotifiedIsTerminal() {
	ctx := context.Background()
	s.offers.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.details.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.files.EXPECT().Exists(ctx, "123").Return(true, nil)
	s.scores.EXPECT().GetPair(ctx, "123", int64(1)).
		Return(&domain.Score{OfferID: "123", UserID: 1, IsFit: 1, Notified: 1}, nil)

	stage, err := s.tracker.NextStage(ctx, "123", 1)
	s.NoError(err)
	s.Equal(domain.StageDone, stage)
}
