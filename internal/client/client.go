// Package client is the public facade over the MEATER cloud: two explicitly
// versioned sub-clients (primary v2 API for cook history, public v1 API for
// live devices) sharing one persisted state store.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/Zahlii/meater-api/internal/config"
	"github.com/Zahlii/meater-api/internal/logger"
	"github.com/Zahlii/meater-api/internal/models"
	"github.com/Zahlii/meater-api/internal/reference"
	"github.com/Zahlii/meater-api/internal/session"
)

// Client version metadata sent with login requests, matching the vendor iOS
// app the API expects.
const (
	appVersion    = "4.4.2"
	appBuild      = "12305"
	clientVersion = "MEATER-iOS-v" + appVersion
)

// Credentials authenticate against both API versions.
type Credentials struct {
	Email    string
	Password string
}

// CookAPI is the primary-API capability: authenticate, then fetch the cook
// history.
type CookAPI interface {
	Login(ctx context.Context) error
	GetCooks(ctx context.Context) ([]models.Cook, error)
}

// DeviceAPI is the public-API capability: authenticate, then fetch the live
// device list.
type DeviceAPI interface {
	Login(ctx context.Context) error
	GetLiveDevices(ctx context.Context) ([]models.Device, error)
}

// Client composes the versioned sub-clients. Construct with New; the fetch
// methods are only safe after New returns without error.
type Client struct {
	Cooks   CookAPI
	Devices DeviceAPI

	store  *session.Store
	tables *reference.Tables
	log    *logger.Logger
}

// New builds a client and runs the fixed startup sequence: load persisted
// state, resolve the device identity, then log in on both API versions.
// Either login failing fails construction; nothing is persisted in that case.
func New(ctx context.Context, cfg config.Settings, tables *reference.Tables, log *logger.Logger) (*Client, error) {
	store := session.NewStore(cfg.StatePath)
	found, err := store.Load()
	if err != nil {
		return nil, err
	}
	if found {
		log.Infow("loaded persisted state", "device_id", store.DeviceID)
	}

	if store.DeviceID == "" && cfg.DeviceID != "" {
		store.DeviceID = cfg.DeviceID
	}
	deviceID := store.EnsureDeviceID()
	log.Infow("using device id", "device_id", deviceID)

	creds := Credentials{Email: cfg.Email, Password: cfg.Password}
	c := &Client{
		Cooks:   NewV2Client(session.New("v2", cfg.APIBase, log), store, creds, log),
		Devices: NewV1Client(session.New("v1", cfg.PublicAPIBase, log), store, creds, log),
		store:   store,
		tables:  tables,
		log:     log,
	}

	if err := c.Cooks.Login(ctx); err != nil {
		return nil, fmt.Errorf("primary api login: %w", err)
	}
	if err := c.Devices.Login(ctx); err != nil {
		return nil, fmt.Errorf("public api login: %w", err)
	}
	return c, nil
}

// GetCooks fetches the user's cook history from the primary API.
func (c *Client) GetCooks(ctx context.Context) ([]models.Cook, error) {
	return c.Cooks.GetCooks(ctx)
}

// GetLiveDevices fetches the current device snapshots from the public API.
func (c *Client) GetLiveDevices(ctx context.Context) ([]models.Device, error) {
	return c.Devices.GetLiveDevices(ctx)
}

// Tables exposes the reference tables the client was built with, for callers
// rendering cook summaries.
func (c *Client) Tables() *reference.Tables {
	return c.tables
}

// adoptCachedToken attaches a persisted token to a session, warning when the
// token's embedded expiry has already passed. Login stays a no-op either way;
// an expired token simply fails the first request.
func adoptCachedToken(sess *session.Session, token string, log *logger.Logger) bool {
	if token == "" {
		return false
	}
	sess.SetToken(token)
	if exp, err := session.TokenExpiry(token); err == nil && exp.Before(time.Now()) {
		log.Warnw("cached token is expired", "expired_at", exp)
	}
	return true
}
