package azuredevops

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rivoric/vstsdiff/pkg/domain/interfaces"
	"github.com/rivoric/vstsdiff/pkg/domain/model"
)

// apiVersion is the Release Management REST API version sent on every request
const apiVersion = "4.1-preview.3"

type client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithBaseURL overrides the service base URL. Intended for tests against a
// local HTTP server.
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Release Management API client authenticated with a
// Basic header built from username and personal access token
func NewClient(account, project, username, pat string, opts ...Option) interfaces.ReleaseClient {
	c := &client{
		baseURL:    fmt.Sprintf("https://%s.vsrm.visualstudio.com/%s", account, url.PathEscape(project)),
		authHeader: "Basic " + BasicToken(username, pat),
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BasicToken encodes "username:pat" as UTF-8 and Base64 for a Basic
// Authorization header
func BasicToken(username, pat string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + pat))
}

// ListDefinitions fetches the release definition summaries of the project
func (c *client) ListDefinitions(ctx context.Context) ([]model.ReleaseDefinition, error) {
	var body struct {
		Count int                       `json:"count"`
		Value []model.ReleaseDefinition `json:"value"`
	}

	if err := c.get(ctx, c.baseURL+"/_apis/release/definitions", &body); err != nil {
		return nil, err
	}

	return body.Value, nil
}

// GetDefinition fetches the full release definition by ID
func (c *client) GetDefinition(ctx context.Context, id int) (*model.ReleaseDefinitionDetail, error) {
	var body model.ReleaseDefinitionDetail

	uri := fmt.Sprintf("%s/_apis/release/definitions/%d", c.baseURL, id)
	if err := c.get(ctx, uri, &body); err != nil {
		return nil, err
	}

	return &body, nil
}

// get issues one authenticated GET request and decodes the JSON response.
// A non-2xx response is fatal: the HTTP status code becomes the process
// exit code.
func (c *client) get(ctx context.Context, uri string, out any) error {
	logger := ctxlog.From(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create API request", goerr.V("url", uri))
	}

	q := req.URL.Query()
	q.Set("api-version", apiVersion)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authHeader)

	logger.Debug("calling release API", "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to call release API", goerr.V("url", uri))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return model.NewHTTPStatusError(resp.StatusCode,
			fmt.Sprintf("release API request failed with status %d for %s", resp.StatusCode, uri))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode release API response", goerr.V("url", uri))
	}

	return nil
}
