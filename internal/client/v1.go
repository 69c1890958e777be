package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/Zahlii/meater-api/internal/logger"
	"github.com/Zahlii/meater-api/internal/models"
	"github.com/Zahlii/meater-api/internal/session"
)

// V1Client talks to the public API (login + live device list). The public API
// takes bare credentials and nests its payloads under "data".
type V1Client struct {
	sess          *session.Session
	store         *session.Store
	creds         Credentials
	log           *logger.Logger
	authenticated bool
}

// NewV1Client wires a public-API sub-client, adopting a persisted token when
// present.
func NewV1Client(sess *session.Session, store *session.Store, creds Credentials, log *logger.Logger) *V1Client {
	c := &V1Client{sess: sess, store: store, creds: creds, log: log}
	c.authenticated = adoptCachedToken(sess, store.TokenV1, log)
	return c
}

type v1LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type v1LoginResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

// Login exchanges credentials for a bearer token and persists it. No-op once
// authenticated.
func (c *V1Client) Login(ctx context.Context) error {
	if c.authenticated {
		return nil
	}
	c.log.Infow("attempting login", "session", "v1", "device_id", c.store.DeviceID)

	var res v1LoginResponse
	if err := c.sess.PostJSON(ctx, "/v1/login", v1LoginRequest{Email: c.creds.Email, Password: c.creds.Password}, &res); err != nil {
		return err
	}
	if res.Data.Token == "" {
		return errors.New("login response is missing data.token")
	}

	c.sess.SetToken(res.Data.Token)
	c.store.TokenV1 = res.Data.Token
	c.authenticated = true
	return c.store.Save()
}

type devicesResponse struct {
	Data struct {
		Devices []models.Device `json:"devices"`
	} `json:"data"`
}

// GetLiveDevices fetches the current snapshot of all probes.
func (c *V1Client) GetLiveDevices(ctx context.Context) ([]models.Device, error) {
	var res devicesResponse
	if err := c.sess.GetJSON(ctx, "/v1/devices", &res); err != nil {
		return nil, err
	}
	for _, d := range res.Data.Devices {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid device in response: %w", err)
		}
	}
	return res.Data.Devices, nil
}
