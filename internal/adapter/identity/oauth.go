package identity

import (
	"context"
	"errors"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"todoapi/pkg/tracing"
)

// PasswordGrantProvider acquires tokens from the Microsoft identity
// platform with the resource owner password credentials grant.
type PasswordGrantProvider struct {
	config *oauth2.Config
	client *http.Client
}

type PasswordGrantConfig struct {
	ClientID string
	TenantID string
	Scopes   []string
	// TokenURL overrides the tenant endpoint.
	TokenURL string
}

func NewPasswordGrantProvider(cfg PasswordGrantConfig) *PasswordGrantProvider {
	endpoint := microsoft.AzureADEndpoint(cfg.TenantID)

	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	// Public client: no secret, client id goes in the form body.
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return &PasswordGrantProvider{
		config: &oauth2.Config{
			ClientID: cfg.ClientID,
			Endpoint: endpoint,
			Scopes:   cfg.Scopes,
		},
		client: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
}

func (p *PasswordGrantProvider) AcquireToken(ctx context.Context, email, password string) (string, error) {
	var accessToken string

	attrs := []attribute.KeyValue{
		attribute.String("identity.provider", "password_grant"),
		attribute.String("identity.token_url", p.config.Endpoint.TokenURL),
	}

	err := tracing.SpanWrapper(ctx, "identity.acquire_token", attrs, func(ctx context.Context) error {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)

		token, err := p.config.PasswordCredentialsToken(ctx, email, password)
		if err != nil {
			return err
		}

		if token.AccessToken == "" {
			return errors.New("identity provider returned an empty access token")
		}

		accessToken = token.AccessToken

		return nil
	})

	return accessToken, err
}
