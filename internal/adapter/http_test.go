// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/sdk"
	"github.com/MKhiriev/gameflow-harness/internal/sdk/loopback"
	"github.com/MKhiriev/gameflow-harness/models"
)

// newTestAdapter creates an httpAdminAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpAdminAdapter {
	t.Helper()
	a, err := NewHTTPAdminAdapter(config.Admin{Address: serverURL, RequestTimeout: 2 * time.Second}, "tests", "test", logger.Nop())
	require.NoError(t, err)
	return a.(*httpAdminAdapter)
}

// ── NewHTTPAdminAdapter ─────────────────────────────────────────────────────

func TestNewHTTPAdminAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPAdminAdapter(config.Admin{Address: "  "}, "tests", "test", nil)
	assert.Error(t, err)

	_, err = NewHTTPAdminAdapter(config.Admin{Address: "http://"}, "tests", "test", nil)
	assert.Error(t, err)
}

func TestNewHTTPAdminAdapter_MissingApplication(t *testing.T) {
	_, err := NewHTTPAdminAdapter(config.Admin{Address: "localhost:81"}, "tests", "", nil)
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "localhost:81", want: "http://localhost:81"},
		{raw: "http://localhost:81/", want: "http://localhost:81"},
		{raw: " https://admin.example.com ", want: "https://admin.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── KickUser ────────────────────────────────────────────────────────────────

func TestKickUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/_app/tests/test/_admin/_users/u-1/_kick", r.URL.Path)
		assert.Equal(t, "u-1", r.URL.Query().Get("id"))

		var body models.KickRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test", body.Reason)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.KickUser(context.Background(), "u-1", "test"))
}

func TestKickUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("user not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.KickUser(context.Background(), "ghost", "test")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "user not found")
}

// ── SendNotification ────────────────────────────────────────────────────────

func TestSendNotification_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/_app/tests/test/_admin/_notifications/send", r.URL.Path)

		var body models.NotificationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.AllUsers, body.UserIDs)
		assert.Equal(t, "customType", body.Type)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"delivered":3}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	n, err := a.SendNotification(context.Background(), models.NotificationRequest{
		UserIDs: models.AllUsers,
		Type:    "customType",
		Message: "A notification message",
		Data:    "custom_data",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSendNotification_ErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusConflict, want: ErrConflict},
		{status: http.StatusBadGateway, want: ErrBadGateway},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.SendNotification(context.Background(), models.NotificationRequest{UserIDs: "*", Type: "x"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSendNotification_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SendNotification(context.Background(), models.NotificationRequest{UserIDs: "*", Type: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

// ── ListUsers ───────────────────────────────────────────────────────────────

func TestListUsers_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userIds":["a","b"]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	users, err := a.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, users)
}

func TestListUsers_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.ListUsers(context.Background())
	assert.Error(t, err)
}

// ── loopback integration ────────────────────────────────────────────────────

func TestAdminAdapter_AgainstLoopback(t *testing.T) {
	backend := loopback.NewServer(loopback.Options{})
	defer backend.Close()
	srv := httptest.NewServer(backend.AdminHandler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := sdk.NewConfiguration("http://localhost", "tests", "test")
	conn, err := backend.Connect(ctx, 1, cfg)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.Users().Login(ctx))
	userID := conn.Users().UserID()

	a := newTestAdapter(t, srv.URL)

	users, err := a.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{userID}, users)

	n, err := a.SendNotification(ctx, models.NotificationRequest{UserIDs: models.AllUsers, Type: "customType"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.ErrorIs(t, a.KickUser(ctx, "ghost", "test"), ErrNotFound)
	require.NoError(t, a.KickUser(ctx, userID, "test"))

	users, err = a.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

// ── responseMessage ──

func TestResponseMessage(t *testing.T) {
	assert.Equal(t, "user not found", responseMessage([]byte(`{"error":"user not found"}`)))
	assert.Equal(t, "plain text", responseMessage([]byte("  plain text\n")))
	assert.Equal(t, `{"other":1}`, responseMessage([]byte(`{"other":1}`)))
	assert.Empty(t, responseMessage(nil))
}
