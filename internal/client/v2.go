package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zahlii/meater-api/internal/logger"
	"github.com/Zahlii/meater-api/internal/models"
	"github.com/Zahlii/meater-api/internal/session"
)

// V2Client talks to the primary API (login + cook history).
type V2Client struct {
	sess          *session.Session
	store         *session.Store
	creds         Credentials
	log           *logger.Logger
	authenticated bool
}

// NewV2Client wires a primary-API sub-client. A token already persisted in
// the store is adopted immediately, making Login a no-op.
func NewV2Client(sess *session.Session, store *session.Store, creds Credentials, log *logger.Logger) *V2Client {
	c := &V2Client{sess: sess, store: store, creds: creds, log: log}
	c.authenticated = adoptCachedToken(sess, store.Token, log)
	return c
}

type loginDevice struct {
	Model      string `json:"model"`
	Locale     string `json:"locale"`
	OSVersion  string `json:"os_version"`
	OSName     string `json:"os_name"`
	AppVersion string `json:"app_version"`
	AppBuild   string `json:"app_build"`
	ID         string `json:"id"`
}

type v2LoginRequest struct {
	CheckTerms    int         `json:"check_terms"`
	Password      string      `json:"password"`
	Email         string      `json:"email"`
	ClientVersion string      `json:"clientVersion"`
	Device        loginDevice `json:"device"`
}

type v2LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login exchanges credentials for a bearer token and persists it. Repeated
// calls after a successful login (or with a cached token) do nothing.
func (c *V2Client) Login(ctx context.Context) error {
	if c.authenticated {
		return nil
	}
	c.log.Infow("attempting login", "session", "v2", "device_id", c.store.DeviceID)

	req := v2LoginRequest{
		CheckTerms:    1,
		Password:      c.creds.Password,
		Email:         c.creds.Email,
		ClientVersion: clientVersion,
		Device: loginDevice{
			Model:      "iPhone",
			Locale:     "de_DE",
			OSVersion:  "18.2",
			OSName:     "iOS",
			AppVersion: appVersion,
			AppBuild:   appBuild,
			ID:         c.store.DeviceID,
		},
	}
	var res v2LoginResponse
	if err := c.sess.PostJSON(ctx, "/login", req, &res); err != nil {
		return err
	}
	if res.AccessToken == "" {
		return errors.New("login response is missing accessToken")
	}

	c.sess.SetToken(res.AccessToken)
	c.store.Token = res.AccessToken
	c.authenticated = true
	return c.store.Save()
}

type cooksResponse struct {
	Data []models.Cook `json:"data"`
}

// GetCooks fetches and validates the user's cook history.
func (c *V2Client) GetCooks(ctx context.Context) ([]models.Cook, error) {
	var res cooksResponse
	if err := c.sess.GetJSON(ctx, "/v2/cooks", &res); err != nil {
		return nil, err
	}
	for _, cook := range res.Data {
		if err := cook.Validate(); err != nil {
			return nil, fmt.Errorf("invalid cook in response: %w", err)
		}
	}
	return res.Data, nil
}
