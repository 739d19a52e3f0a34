package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashikshan/prashikshan-cli/api"
)

func TestListNotifications_404IsEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL, newTestSession(t, "access-1", "refresh-1"))
	require.NoError(t, err)

	notifications, err := client.ListNotifications(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestMarkNotificationRead_404IsAbsorbed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL, newTestSession(t, "access-1", "refresh-1"))
	require.NoError(t, err)

	assert.NoError(t, client.MarkNotificationRead(context.Background(), "n1"))
}

func TestMarkNotificationRead_SendsReadTrue(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		buf := make([]byte, 64)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL, newTestSession(t, "access-1", "refresh-1"))
	require.NoError(t, err)

	require.NoError(t, client.MarkNotificationRead(context.Background(), "n1"))
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/v1/notifications/n1", gotPath)
	assert.JSONEq(t, `{"read": true}`, gotBody)
}

func TestOtherErrors_AreNotAbsorbed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		writeJSON(w, map[string]string{"detail": "Not allowed"})
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL, newTestSession(t, "access-1", "refresh-1"))
	require.NoError(t, err)

	_, err = client.ListNotifications(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, api.StatusOf(err))
}
