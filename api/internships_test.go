package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashikshan/prashikshan-cli/api"
)

func TestListInternships_OmitsUnsetFilters(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeJSON(w, []map[string]any{})
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL, newTestSession(t, "access-1", "refresh-1"))
	require.NoError(t, err)

	remote := true
	minCredits := 4
	_, err = client.ListInternships(context.Background(), &api.InternshipFilters{
		Remote:     &remote,
		MinCredits: &minCredits,
	})
	require.NoError(t, err)

	assert.Equal(t, "true", gotQuery.Get("remote"))
	assert.Equal(t, "4", gotQuery.Get("min_credits"))

	// Unset filters must be absent, not sent as empty values.
	for _, key := range []string{"location", "skills", "status", "search"} {
		_, present := gotQuery[key]
		assert.False(t, present, "unexpected query key %q", key)
	}
}

func TestListInternships_NilFiltersSendNoQuery(t *testing.T) {
	var rawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		writeJSON(w, []map[string]any{})
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL, newTestSession(t, "access-1", "refresh-1"))
	require.NoError(t, err)

	_, err = client.ListInternships(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rawQuery)
}

func TestListInternships_SkillsAsRepeatedParams(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		writeJSON(w, []map[string]any{})
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL, newTestSession(t, "access-1", "refresh-1"))
	require.NoError(t, err)

	_, err = client.ListInternships(context.Background(), &api.InternshipFilters{
		Skills: []string{"go", " sql ", ""},
	})
	require.NoError(t, err)

	// Blank entries dropped, values trimmed.
	assert.Equal(t, []string{"go", "sql"}, gotQuery["skills"])
}

func TestListInternships_ClientSideSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{
			{"id": "1", "title": "Backend Engineering Intern", "remote": true, "status": "OPEN", "posted_by": "c1", "created_at": "2025-06-01T00:00:00Z"},
			{"id": "2", "title": "Design Intern", "remote": false, "status": "OPEN", "posted_by": "c1", "created_at": "2025-06-01T00:00:00Z", "skills": []string{"figma"}},
		})
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL, newTestSession(t, "access-1", "refresh-1"))
	require.NoError(t, err)

	internships, err := client.ListInternships(context.Background(), &api.InternshipFilters{Search: "backend"})
	require.NoError(t, err)
	require.Len(t, internships, 1)
	assert.Equal(t, "1", internships[0].ID)

	// Search matches skills too.
	internships, err = client.ListInternships(context.Background(), &api.InternshipFilters{Search: "FIGMA"})
	require.NoError(t, err)
	require.Len(t, internships, 1)
	assert.Equal(t, "2", internships[0].ID)
}
