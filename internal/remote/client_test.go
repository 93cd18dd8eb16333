package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-1", "user_id": "user-1"})
	})

	mux.HandleFunc("/api/v1/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode([]model.Project{{ID: "p1", Name: "Site"}})
		case http.MethodPost:
			var p model.Project
			_ = json.NewDecoder(r.Body).Decode(&p)
			p.ID = "p-new"
			_ = json.NewEncoder(w).Encode(p)
		}
	})

	mux.HandleFunc("/api/v1/projects/p1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			var p model.Project
			_ = json.NewDecoder(r.Body).Decode(&p)
			_ = json.NewEncoder(w).Encode(p)
		case http.MethodDelete:
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
		}
	})

	mux.HandleFunc("/api/v1/files", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		path := r.FormValue("path")
		_, _, err := r.FormFile("file")
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "http://files.local/files/" + path})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	srv := testServer(t)
	client, err := NewClient(srv.URL)
	require.NoError(t, err)
	return client
}

func TestLoginStoresSession(t *testing.T) {
	client := newTestClient(t)
	assert.False(t, client.IsLoggedIn())

	require.NoError(t, client.Login("alice", "secret"))
	assert.True(t, client.IsLoggedIn())
	assert.Equal(t, "user-1", client.UserID())
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	client := newTestClient(t)
	err := client.Login("alice", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogoutClearsSession(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, client.Login("alice", "secret"))
	require.NoError(t, client.Logout())
	assert.False(t, client.IsLoggedIn())
	assert.Empty(t, client.UserID())
}

func TestProjectCRUD(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, client.Login("alice", "secret"))
	ctx := context.Background()

	projects, err := client.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "p1", projects[0].ID)

	row, err := client.InsertProject(ctx, model.Project{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "p-new", row.ID, "server assigns the id")

	updated, err := client.UpdateProject(ctx, model.Project{ID: "p1", Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	assert.NoError(t, client.DeleteProject(ctx, "p1"))
}

func TestUnauthenticatedRequestFails(t *testing.T) {
	client := newTestClient(t)
	_, err := client.ListProjects(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestUpload(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, client.Login("alice", "secret"))

	url, err := client.Upload(context.Background(), "user-1/p1/1-mockups.pdf", "mockups.pdf", []byte("pdf"))
	require.NoError(t, err)
	assert.Equal(t, "http://files.local/files/user-1/p1/1-mockups.pdf", url)
}

func TestSessionPersistsAcrossClients(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	srv := testServer(t)

	first, err := NewClient(srv.URL)
	require.NoError(t, err)
	require.NoError(t, first.Login("alice", "secret"))

	second, err := NewClient(srv.URL)
	require.NoError(t, err)
	assert.True(t, second.IsLoggedIn())
	assert.Equal(t, "user-1", second.UserID())
}
