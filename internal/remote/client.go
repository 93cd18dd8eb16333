// Package remote is the HTTP client for the persistence service and its
// attachment object storage. Every call is scoped to the logged-in user;
// insert and update return the resulting row, which is the only state the
// store ever applies locally.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
)

// Config holds the client session, persisted to ~/.pm/remote.json
type Config struct {
	ServerURL string `json:"server_url"`
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
}

// Client talks to the remote persistence service
type Client struct {
	config     *Config
	configPath string
	httpClient *http.Client
}

// NewClient creates a client, loading any saved session
func NewClient(serverURL string) (*Client, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	c := &Client{
		configPath: filepath.Join(home, ".pm", "remote.json"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	c.loadConfig(serverURL)
	return c, nil
}

func (c *Client) loadConfig(serverURL string) {
	c.config = &Config{ServerURL: serverURL}
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return
	}
	saved := &Config{}
	if json.Unmarshal(data, saved) == nil && saved.ServerURL != "" {
		c.config = saved
	}
}

func (c *Client) saveConfig() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c.config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.configPath, data, 0600)
}

// SetServer sets the service URL
func (c *Client) SetServer(url string) error {
	c.config.ServerURL = url
	return c.saveConfig()
}

// IsLoggedIn returns true if a session token is present
func (c *Client) IsLoggedIn() bool {
	return c.config.Token != ""
}

// UserID returns the id of the logged-in user, empty when logged out
func (c *Client) UserID() string {
	return c.config.UserID
}

// ServerURL returns the configured service URL
func (c *Client) ServerURL() string {
	return c.config.ServerURL
}

type authResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

func (c *Client) authenticate(path string, body map[string]string) error {
	payload, _ := json.Marshal(body)
	resp, err := c.httpClient.Post(c.config.ServerURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s", readError(resp))
	}

	var result authResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	c.config.Token = result.Token
	c.config.UserID = result.UserID
	return c.saveConfig()
}

// Register creates a new account and starts a session
func (c *Client) Register(username, email, password string) error {
	return c.authenticate("/api/v1/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
}

// Login authenticates with username and password
func (c *Client) Login(username, password string) error {
	return c.authenticate("/api/v1/login", map[string]string{
		"username": username,
		"password": password,
	})
}

// Logout clears the session
func (c *Client) Logout() error {
	c.config.Token = ""
	c.config.UserID = ""
	return c.saveConfig()
}

// do issues an authenticated request and decodes a JSON response into out
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s", readError(resp))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// readError extracts the service's message from an error response
func readError(resp *http.Response) string {
	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		return body.Error
	}
	return fmt.Sprintf("server error: %s", resp.Status)
}

// ListProjects fetches all projects owned by the logged-in user, newest first
func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := c.do(ctx, http.MethodGet, "/api/v1/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// InsertProject creates a project and returns the stored row
func (c *Client) InsertProject(ctx context.Context, p model.Project) (model.Project, error) {
	var row model.Project
	if err := c.do(ctx, http.MethodPost, "/api/v1/projects", p, &row); err != nil {
		return model.Project{}, err
	}
	return row, nil
}

// UpdateProject replaces a project row and returns the stored result
func (c *Client) UpdateProject(ctx context.Context, p model.Project) (model.Project, error) {
	var row model.Project
	if err := c.do(ctx, http.MethodPut, "/api/v1/projects/"+p.ID, p, &row); err != nil {
		return model.Project{}, err
	}
	return row, nil
}

// DeleteProject removes a project owned by the logged-in user
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/projects/"+id, nil, nil)
}

// Upload stores a blob under the given path in the attachment storage and
// returns its durable public URL
func (c *Client) Upload(ctx context.Context, path, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("path", path); err != nil {
		return "", err
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.ServerURL+"/api/v1/files", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.config.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s", readError(resp))
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.URL, nil
}
