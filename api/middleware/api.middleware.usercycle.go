package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const validateTokenMutation = `
	mutation ValidateApiToken($token: String) {
		validateApiToken(token: $token) {
			... on TokenUser {
				id
			}
		}
	}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type validateTokenResponse struct {
	Data struct {
		ValidateAPIToken *struct {
			ID string `json:"id"`
		} `json:"validateApiToken"`
	} `json:"data"`
}

// UserCycleValidator checks tokens against the user-cycle GraphQL service
type UserCycleValidator struct {
	client   *resty.Client
	endpoint string
}

func NewUserCycleValidator(baseURL string, timeout time.Duration) *UserCycleValidator {
	return &UserCycleValidator{
		client:   resty.New().SetTimeout(timeout),
		endpoint: strings.TrimRight(baseURL, "/") + "/graphql",
	}
}

func (v *UserCycleValidator) Validate(ctx context.Context, token string) (string, error) {
	var out validateTokenResponse
	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(graphQLRequest{
			Query:     validateTokenMutation,
			Variables: map[string]any{"token": token},
		}).
		SetResult(&out).
		Post(v.endpoint)
	if err != nil {
		return "", fmt.Errorf("user-cycle request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("user-cycle responded with status %d", resp.StatusCode())
	}

	if out.Data.ValidateAPIToken == nil || out.Data.ValidateAPIToken.ID == "" {
		return "", ErrInvalidToken
	}
	return out.Data.ValidateAPIToken.ID, nil
}
