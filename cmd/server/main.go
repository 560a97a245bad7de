package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TedMN/mplsjrdevs/config"
	_ "github.com/TedMN/mplsjrdevs/docs"
	"github.com/TedMN/mplsjrdevs/internal/adapters/airtable"
	"github.com/TedMN/mplsjrdevs/internal/adapters/auth"
	"github.com/TedMN/mplsjrdevs/internal/adapters/email"
	deliveryhttp "github.com/TedMN/mplsjrdevs/internal/delivery/http"
	"github.com/TedMN/mplsjrdevs/internal/delivery/http/controllers"
	"github.com/TedMN/mplsjrdevs/internal/domain"
	"github.com/TedMN/mplsjrdevs/internal/repository/postgres"
	"github.com/TedMN/mplsjrdevs/internal/services"

	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

// @title Minneapolis Junior Devs Schedule API
// @version 1.0
// @description Upcoming and past meetups joined with their presenters.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.
func main() {
	// Load first so LOG_LEVEL and GO_ENV from .env reach the logger.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	loc := cfg.Location()

	source, closeSource, err := newRecordSource(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	loader := services.NewScheduleLoader(source, loc, cfg.FetchTimeout, logger)
	store := services.NewScheduleService(loader, services.NewClassifier(cfg.VisiblePastEvents), logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	announcements := services.NewAnnouncementService(store, mailer, email.NewTemplateRenderer(), cfg.Email.Recipients, logger)

	tokens := auth.NewJWT(cfg.Auth.JWTSecret)
	authService := services.NewAuthService(
		auth.NewBcryptHasher(auth.DefaultCost),
		tokens,
		cfg.Auth.AdminPasswordHash,
		cfg.Auth.AdminPasswordSalt,
		cfg.Auth.JWTExpiry,
	)

	router := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:             logger,
		Schedule:           controllers.NewScheduleController(logger, store, loc),
		Auth:               controllers.NewAuthController(logger, authService),
		Announcement:       controllers.NewAnnouncementController(logger, announcements, loc),
		TokenVerifier:      tokens,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go store.Mount(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "data_source", cfg.DataSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		store.Unmount()
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		logger.Info("signal received, shutting down")
	}

	store.Unmount()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newRecordSource returns the configured source and a func releasing its resources.
func newRecordSource(cfg *config.Config) (domain.RecordSource, func(), error) {
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		return postgres.NewRecordSource(db), func() { _ = db.Close() }, nil
	default:
		client := &http.Client{Timeout: 30 * time.Second}
		src := airtable.NewRecordSource(client, airtable.Config{
			BaseURL:         cfg.Airtable.BaseURL,
			APIKey:          cfg.Airtable.APIKey,
			BaseID:          cfg.Airtable.BaseID,
			EventsTable:     cfg.Airtable.EventsTable,
			PresentersTable: cfg.Airtable.PresentersTable,
		})
		return src, func() {}, nil
	}
}
