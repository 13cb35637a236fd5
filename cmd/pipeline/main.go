package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/olarrevi/Auto-oferta-applier/internal/config"
	"github.com/olarrevi/Auto-oferta-applier/internal/extract"
	"github.com/olarrevi/Auto-oferta-applier/internal/letters"
	"github.com/olarrevi/Auto-oferta-applier/internal/mail"
	"github.com/olarrevi/Auto-oferta-applier/internal/oracle"
	"github.com/olarrevi/Auto-oferta-applier/internal/portal"
	"github.com/olarrevi/Auto-oferta-applier/internal/publisher"
	"github.com/olarrevi/Auto-oferta-applier/internal/scheduler"
	"github.com/olarrevi/Auto-oferta-applier/internal/service"
	"github.com/olarrevi/Auto-oferta-applier/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single pipeline pass and exit")
	inspect := flag.String("inspect", "", "print the next stage for an offer/user pair (offerID:userID) and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *inspect != "" {
		if err := inspectStage(ctx, db, *inspect); err != nil {
			logger.Error("inspect failed", "error", err)
			os.Exit(1)
		}
		return
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	portalClient, err := portal.New(portal.Config{
		BaseURL:   cfg.Portal.BaseURL,
		MemberID:  cfg.Portal.MemberID,
		Password:  cfg.Portal.Password,
		Timeout:   cfg.Portal.Timeout,
		UserAgent: cfg.Portal.UserAgent,
	}, logger)
	if err != nil {
		logger.Error("failed to build portal client", "error", err)
		os.Exit(1)
	}

	oracleClient := oracle.New(oracle.Config{
		BaseURL:   cfg.Oracle.BaseURL,
		APIKey:    cfg.Oracle.APIKey,
		Model:     cfg.Oracle.Model,
		Timeout:   cfg.Oracle.Timeout,
		MaxTokens: cfg.Oracle.MaxTokens,
	}, logger)

	renderer := letters.NewRenderer(cfg.Letters.OutputDir, cfg.Letters.FontDir, logger)
	extractor := extract.New(logger)

	// Mail is optional: without Gmail credentials the pipeline still
	// collects, scores and renders, it just skips drafts and emails.
	var mailTransport service.MailTransport
	if cfg.Mail.CredentialsFile != "" {
		gmail, err := mail.NewGmail(ctx, mail.Config{
			From:            cfg.Mail.From,
			CredentialsFile: cfg.Mail.CredentialsFile,
			TokenFile:       cfg.Mail.TokenFile,
		}, logger)
		if err != nil {
			logger.Error("failed to build gmail transport", "error", err)
			os.Exit(1)
		}
		mailTransport = gmail
	} else {
		logger.Warn("gmail credentials not configured, drafts and notifications disabled")
	}

	var events service.Publisher
	if cfg.Publisher.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.Publisher.URL,
			Exchange:   cfg.Publisher.Exchange,
			RoutingKey: cfg.Publisher.RoutingKey,
			QueueName:  cfg.Publisher.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	pipeline := service.NewPipeline(
		portalClient,
		extractor,
		oracleClient,
		renderer,
		mailTransport,
		events,
		postgres.NewListedOfferStore(db),
		postgres.NewDetailStore(db),
		postgres.NewAttachmentStore(db),
		postgres.NewScoreStore(db),
		postgres.NewLetterStore(db),
		postgres.NewUserStore(db),
		postgres.NewTransactionManager(db),
		logger,
		service.Config{
			HorizonDays:   cfg.Pipeline.HorizonDays,
			RecencyDays:   cfg.Pipeline.RecencyDays,
			MaxPages:      cfg.Pipeline.MaxPages,
			PageDelay:     cfg.Portal.PageDelay,
			PrimaryUserID: cfg.Pipeline.PrimaryUserID,
			DraftUserID:   cfg.Letters.DraftUserID,
		},
	)

	if *once {
		if _, err := pipeline.Run(ctx); err != nil {
			logger.Error("pipeline run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	sched := scheduler.NewScheduler(pipeline, cfg.Pipeline.Interval, logger)

	logger.Info("starting offer pipeline",
		"interval", cfg.Pipeline.Interval,
		"max_pages", cfg.Pipeline.MaxPages,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

// inspectStage resolves how far an offer has progressed for one user.
// The pair argument is "offerID:userID".
func inspectStage(ctx context.Context, db *sqlx.DB, pair string) error {
	offerID, userPart, ok := strings.Cut(pair, ":")
	if !ok || offerID == "" {
		return fmt.Errorf("expected offerID:userID, got %q", pair)
	}
	userID, err := strconv.ParseInt(userPart, 10, 64)
	if err != nil {
		return fmt.Errorf("parse user id: %w", err)
	}

	tracker := service.NewStageTracker(
		postgres.NewListedOfferStore(db),
		postgres.NewDetailStore(db),
		postgres.NewAttachmentStore(db),
		postgres.NewScoreStore(db),
		postgres.NewLetterStore(db),
	)
	stage, err := tracker.NextStage(ctx, offerID, userID)
	if err != nil {
		return err
	}

	fmt.Printf("offer %s user %d: next stage %s\n", offerID, userID, stage)
	return nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
