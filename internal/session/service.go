package session

import (
	"context"
	"errors"

	"pizzadash/internal/api"
)

var ErrMissingCredentials = errors.New("email and password are required")

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Login forwards the credentials to the backend session endpoint and
// returns the bearer token it mints. No hashing or verification
// happens here.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp struct {
		Token string `json:"token"`
	}
	if apiErr := s.client.PostJSON(ctx, "", "/session", payload, &resp); apiErr != nil {
		return "", apiErr
	}
	if resp.Token == "" {
		return "", errors.New("backend returned no token")
	}
	return resp.Token, nil
}
