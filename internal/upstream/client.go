package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// githubAPIVersion pins the REST API version header.
const githubAPIVersion = "2022-11-28"

const defaultBaseURL = "https://api.github.com"

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the root URL for API requests. Defaults to
	// "https://api.github.com". Must use HTTPS.
	BaseURL string

	// Token is an optional personal access token. Anonymous access works
	// but is rate limited to 60 requests per hour.
	Token string

	// HTTPClient is used for all requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Client lists and downloads files through the GitHub contents API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// ContentEntry is one item of a contents API directory listing.
type ContentEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"` // "file" or "dir"
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}

// ModelFile is one downloaded model source file.
type ModelFile struct {
	Name   string
	Source string
}

// NewClient creates a client from the given configuration.
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("github: API client requires HTTPS (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// ListModelFiles lists the backup model directory of the given variant, descending one
// level into subdirectories, and downloads every file. Order follows the API listing.
func (client *Client) ListModelFiles(ctx context.Context, variant Variant) ([]ModelFile, error) {
	entries, err := client.ListContents(ctx, variant.Repository, ModelsPath)
	if err != nil {
		return nil, err
	}

	var files []ContentEntry
	for _, entry := range entries {
		switch entry.Type {
		case "file":
			files = append(files, entry)
		case "dir":
			client.logger.Debug("listing model subdirectory", "path", entry.Path)
			subEntries, err := client.listURL(ctx, entry.URL)
			if err != nil {
				return nil, err
			}
			for _, sub := range subEntries {
				if sub.Type == "file" {
					files = append(files, sub)
				}
			}
		}
	}

	models := make([]ModelFile, 0, len(files))
	for _, file := range files {
		client.logger.Debug("downloading model file", "name", file.Name)
		source, err := client.Download(ctx, file.DownloadURL)
		if err != nil {
			return nil, fmt.Errorf("download %s: %w", file.Name, err)
		}
		models = append(models, ModelFile{Name: file.Name, Source: source})
	}
	return models, nil
}

// ListContents returns the directory listing of path in repository (owner/name).
func (client *Client) ListContents(ctx context.Context, repository, path string) ([]ContentEntry, error) {
	url := fmt.Sprintf("%s/repos/%s/contents/%s", client.baseURL, repository, strings.Trim(path, "/"))
	return client.listURL(ctx, url)
}

func (client *Client) listURL(ctx context.Context, url string) ([]ContentEntry, error) {
	body, err := client.get(ctx, url)
	if err != nil {
		return nil, err
	}
	var entries []ContentEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("github: decoding listing of %s: %w", url, err)
	}
	return entries, nil
}

// Download fetches the raw text behind a download_url.
func (client *Client) Download(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("github: entry has no download URL")
	}
	body, err := client.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// get performs a GET request and returns the body of a 2xx response.
// The token is only sent to URLs under the API base URL.
func (client *Client) get(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("github: creating request: %w", err)
	}
	request.Header.Set("Accept", "application/vnd.github+json")
	request.Header.Set("X-GitHub-Api-Version", githubAPIVersion)
	if client.token != "" && strings.HasPrefix(url, client.baseURL+"/") {
		request.Header.Set("Authorization", "Bearer "+client.token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("github: GET %s: %w", url, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("github: reading response body: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIError(response.StatusCode, url, body)
	}
	return body, nil
}
