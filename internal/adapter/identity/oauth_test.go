package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "ada@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "s3cret", r.PostForm.Get("password"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "api://todo/.default", r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func newTestProvider(url string) *PasswordGrantProvider {
	return NewPasswordGrantProvider(PasswordGrantConfig{
		ClientID: "client-id",
		TenantID: "tenant",
		Scopes:   []string{"api://todo/.default"},
		TokenURL: url,
	})
}

func TestPasswordGrant_Success(t *testing.T) {
	server := tokenServer(t, http.StatusOK, `{"access_token":"abc","token_type":"Bearer","expires_in":3600}`)

	token, err := newTestProvider(server.URL).AcquireToken(context.Background(), "ada@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestPasswordGrant_Rejected(t *testing.T) {
	server := tokenServer(t, http.StatusBadRequest, `{"error":"invalid_grant","error_description":"bad password"}`)

	token, err := newTestProvider(server.URL).AcquireToken(context.Background(), "ada@example.com", "s3cret")

	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestPasswordGrant_TenantEndpoint(t *testing.T) {
	provider := NewPasswordGrantProvider(PasswordGrantConfig{ClientID: "client-id", TenantID: "contoso"})

	assert.Equal(t, "https://login.microsoftonline.com/contoso/oauth2/v2.0/token", provider.config.Endpoint.TokenURL)
}
