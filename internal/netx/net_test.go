package netx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	require.True(t, IsRemote("https://example.com/vault.pam"))
	require.True(t, IsRemote("http://example.com/vault.pam"))
	require.False(t, IsRemote("vault.pam"))
	require.False(t, IsRemote("/home/user/vault.pam"))
	require.False(t, IsRemote("ftp://example.com/vault.pam"))
}

func TestFetchText_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"records":[]}`))
	}))
	defer srv.Close()

	got, err := FetchText(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, `{"records":[]}`, got)
}

func TestFetchText_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := FetchText(context.Background(), srv.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}
