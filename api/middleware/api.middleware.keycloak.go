package middleware

import (
	"context"

	"github.com/Nerzal/gocloak/v13"
)

type KeycloakConfig struct {
	URL          string
	Realm        string
	ClientID     string
	ClientSecret string
}

// KeycloakValidator checks tokens through keycloak token introspection
type KeycloakValidator struct {
	client *gocloak.GoCloak
	config KeycloakConfig
}

func NewKeycloakValidator(config KeycloakConfig) *KeycloakValidator {
	return &KeycloakValidator{
		client: gocloak.NewClient(config.URL),
		config: config,
	}
}

func (k *KeycloakValidator) Validate(ctx context.Context, token string) (string, error) {
	result, err := k.client.RetrospectToken(ctx, token, k.config.ClientID, k.config.ClientSecret, k.config.Realm)
	if err != nil {
		return "", err
	}
	if result.Active == nil || !*result.Active {
		return "", ErrInvalidToken
	}

	userInfo, err := k.client.GetUserInfo(ctx, token, k.config.Realm)
	if err != nil {
		return "", err
	}
	if userInfo.Sub == nil || *userInfo.Sub == "" {
		return "", ErrInvalidToken
	}
	return *userInfo.Sub, nil
}
