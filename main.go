// Admin order-sync daemon. Logs in, keeps the order snapshot fresh while the
// process is in the foreground, and tears down cleanly on SIGINT/SIGTERM.
package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"food-delivery-admin/apiclient"
	"food-delivery-admin/config"
	"food-delivery-admin/errorlog"
	"food-delivery-admin/models"
	"food-delivery-admin/scheduler"
	"food-delivery-admin/session"
	"food-delivery-admin/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if err := run(log); err != nil {
		log.Fatalw("daemon failed", "error", err)
	}
}

func run(log *zap.SugaredLogger) error {
	cfg, err := config.Load(getEnv("ADMIN_CONFIG", "config.yaml"))
	if err != nil {
		return err
	}

	gate := session.New()
	errCache := errorlog.New(log,
		errorlog.WithThrottle(cfg.ErrorThrottle()),
		errorlog.WithCapacity(cfg.ErrorLog.Capacity),
	)
	client := apiclient.New(cfg.API.BaseURL, cfg.APITimeout(), gate, errCache, log)

	orders := store.NewOrderStore(client, log)
	boys := store.NewDeliveryStore(client, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The session-became-authenticated event drives the initial fetch, so a
	// later re-login refreshes the snapshot the same way the first one does.
	authed, unsubscribe := gate.Authenticated()
	defer unsubscribe()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-authed:
				if err := orders.FetchOrders(ctx, ""); err != nil {
					// The scheduler retries on the next tick; the failure
					// is already in the dedup cache.
					log.Warnw("initial order fetch failed", "error", err)
				}
			}
		}
	}()

	// The OTP handshake belongs to the mobile UI; a headless daemon
	// authenticates with seeded credentials instead.
	if err := login(ctx, cfg.API.BaseURL, gate); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if user := gate.CurrentUser(); user != nil {
		log.Infow("authenticated", "user", user.Email, "role", user.Role)
	}

	if err := boys.FetchDeliveryBoys(ctx); err != nil {
		log.Warnw("initial roster fetch failed", "error", err)
	}

	lifecycle := scheduler.NewLifecycle(scheduler.StateActive)
	sched := scheduler.New(cfg.PollInterval(), orders, gate, lifecycle, log)
	sched.Start(ctx)
	log.Infow("polling started", "interval", cfg.PollInterval())

	<-ctx.Done()
	log.Infow("shutting down")
	sched.Stop()
	return nil
}

// login exchanges seeded admin credentials for a session and installs it on
// the gate.
func login(ctx context.Context, baseURL string, gate *session.Gate) error {
	email := getEnv("ADMIN_EMAIL", "admin@example.com")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set")
	}

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}

	url := strings.TrimRight(baseURL, "/") + "/auth/admin/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			AccessToken  string      `json:"accessToken"`
			RefreshToken string      `json:"refreshToken"`
			User         models.User `json:"user"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !envelope.Success {
		return fmt.Errorf("login rejected: %s", envelope.Message)
	}

	gate.SetSession(envelope.Data.AccessToken, envelope.Data.RefreshToken, envelope.Data.User)
	if !gate.IsAuthenticated() {
		return fmt.Errorf("received token is not usable")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
