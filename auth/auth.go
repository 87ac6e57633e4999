package auth

import (
	"errors"
	"net/http"
	"strings"
)

var ErrNoCredentials = errors.New("no credentials available for request")

// Credentials are handed to the upstream client on every call. They are
// obtained fresh per request and never stored.
type Credentials struct {
	AccessToken string
	ClientID    string
}

func (c Credentials) Empty() bool {
	return c.AccessToken == ""
}

// Source produces credentials for an inbound request.
type Source interface {
	Credentials(req *http.Request) (Credentials, error)
}

// BearerSource reads the token the browser obtained from the authentication
// service out of the Authorization header.
type BearerSource struct {
	ClientID string
}

func (b BearerSource) Credentials(req *http.Request) (Credentials, error) {
	h := req.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return Credentials{}, ErrNoCredentials
	}
	return Credentials{
		AccessToken: strings.TrimSpace(token),
		ClientID:    b.ClientID,
	}, nil
}

// StaticSource always returns the configured token. Used for local development.
type StaticSource struct {
	Token    string
	ClientID string
}

func (s StaticSource) Credentials(_ *http.Request) (Credentials, error) {
	if s.Token == "" {
		return Credentials{}, ErrNoCredentials
	}
	return Credentials{AccessToken: s.Token, ClientID: s.ClientID}, nil
}

// Chain returns the credentials of the first source that has any.
type Chain []Source

func (c Chain) Credentials(req *http.Request) (Credentials, error) {
	for _, s := range c {
		creds, err := s.Credentials(req)
		if err == nil && !creds.Empty() {
			return creds, nil
		}
		if err != nil && !errors.Is(err, ErrNoCredentials) {
			return Credentials{}, err
		}
	}
	return Credentials{}, ErrNoCredentials
}
