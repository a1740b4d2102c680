package backend

import (
	"context"
	"net/http"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/go-playground/validator/v10"
)

var credentialsValidator = validator.New()

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	if err := validateCredentials(creds); err != nil {
		return models.AuthResponse{}, err
	}
	body := map[string]string{"username": creds.Username, "password": creds.Password}

	var resp models.AuthResponse
	if err := c.post(ctx, PathLogin, nil, body, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	c.logger.Info().Str("username", resp.Username).Msg("Logged in")
	return resp, nil
}

// Register creates an account and returns its first token.
func (c *Client) Register(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	if err := validateCredentials(creds); err != nil {
		return models.AuthResponse{}, err
	}

	var resp models.AuthResponse
	if err := c.post(ctx, PathRegister, nil, creds, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	c.logger.Info().Str("username", resp.Username).Msg("Account registered")
	return resp, nil
}

// Health probes the backend. An unhealthy backend answers 503 with a reason,
// which is returned as a status rather than an error.
func (c *Client) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus
	err := c.do(ctx, call{
		method:       http.MethodGet,
		path:         PathHealth,
		out:          &status,
		acceptStatus: []int{http.StatusServiceUnavailable},
	})
	return status, err
}

func validateCredentials(creds models.Credentials) error {
	if err := credentialsValidator.Struct(creds); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			field := verrs[0]
			return common.NewValidationError(field.Field(), "", "missing or invalid "+field.Field())
		}
		return common.WrapError(err, "invalid credentials")
	}
	return nil
}
