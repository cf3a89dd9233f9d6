package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feriascalendar/config"
	_ "feriascalendar/docs"
	"feriascalendar/internal/adapters/auth"
	"feriascalendar/internal/adapters/email"
	"feriascalendar/internal/adapters/i18n"
	"feriascalendar/internal/commands"
	deliveryhttp "feriascalendar/internal/delivery/http"
	"feriascalendar/internal/delivery/http/controllers"
	"feriascalendar/internal/delivery/http/middleware"
	"feriascalendar/internal/domain"
	"feriascalendar/internal/repository"
	"feriascalendar/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title Ferias Calendar API
// @version 1.0
// @description Community directory of trade fairs: public listing, suggestions and moderation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the moderator session token.
func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-secret" {
		os.Exit(commands.HashSecret(os.Args[2:], os.Stdout, os.Stderr))
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	store, closeStore, err := repository.NewEventStore(repository.Config{
		StorageType: cfg.Storage,
		CSVPath:     cfg.EventsCSV,
		DatabaseURL: cfg.DatabaseURL,
	}, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("failed to close event store", "err", err)
		}
	}()

	notifier, err := newNotifier(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD is not set, moderation is locked")
	} else if !auth.IsBcryptHash(cfg.AdminPassword) {
		logger.Warn("ADMIN_PASSWORD is stored in plain text, consider `ferias hash-secret`")
	}
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		if jwtSecret, err = auth.RandomSigningKey(); err != nil {
			return err
		}
		logger.Warn("JWT_SECRET is not set, using a random signing key; sessions end on restart")
	}

	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)
	directoryService := services.NewDirectoryService(store, services.NewSuggestionValidator(), notifier, logger, cfg.ContextTimeout)
	moderationService := services.NewModerationService(store, logger, cfg.ContextTimeout)
	gate := services.NewAccessGate(auth.NewSecretChecker(cfg.AdminPassword), auth.NewJWTIssuer(jwtSecret), cfg.ModeratorSessionTTL, logger)

	router := deliveryhttp.NewRouter(
		controllers.NewDirectoryController(logger, directoryService, translator),
		controllers.NewModerationController(logger, gate, moderationService, translator),
		middleware.RequireSession(auth.NewJWTVerifier(jwtSecret), logger),
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newNotifier returns nil when no moderator address is configured.
func newNotifier(cfg *config.Config, logger *slog.Logger) (domain.NotificationService, error) {
	if cfg.ModeratorEmail == "" {
		return nil, nil
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.AWSSESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return nil, err
	}
	return services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.ModeratorEmail, logger), nil
}
