// Package apiclient is the data-access layer of the command line client. It
// talks to the estimator REST API and, when the API cannot be reached,
// switches to a local mock database so the client keeps working offline.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"estimator/internal/config"
	"estimator/pkg/domain"
	"estimator/pkg/logger"
	"estimator/pkg/serrors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	apiPrefix = "/api/v1"

	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 60 * time.Second
)

// Options configure a Client.
type Options struct {
	// BaseURL is the API root without the /api/v1 prefix.
	BaseURL string
	Timeout time.Duration
	// Token is sent as a bearer token when set.
	Token string
}

// NewOptions reads the client section of cfg.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BaseURL: cfg.Client.BaseURL,
		Timeout: cfg.Client.Timeout,
		Token:   cfg.Client.Token,
	}
}

// Client calls the API and falls back to the mock database on connectivity
// errors. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	mock    *MockDB

	// forceMock mirrors the persisted mock mode flag for this process.
	forceMock atomic.Bool
}

// New returns a client for opts. Calls fall back to mock when the API is unreachable.
func New(opts Options, mock *MockDB) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	c := &Client{
		http:    &http.Client{Timeout: opts.Timeout},
		baseURL: strings.TrimRight(opts.BaseURL, "/") + apiPrefix,
		token:   opts.Token,
		mock:    mock,
	}
	if active, err := mock.MockMode(context.Background()); err == nil {
		c.forceMock.Store(active)
	}

	return c
}

// ModelURL returns the preview model URL of a part. version, usually the
// part's updated_at, busts caches when the model is regenerated.
func (c *Client) ModelURL(partID domain.PartID, version string) string {
	u := c.baseURL + "/parts/" + url.PathEscape(string(partID)) + "/model"
	if version != "" {
		u += "?v=" + url.QueryEscape(version)
	}

	return u
}

// MockModeActive reports whether the last call was served from local data.
func (c *Client) MockModeActive(ctx context.Context) bool {
	if c.forceMock.Load() {
		return true
	}
	active, err := c.mock.MockMode(ctx)
	if err != nil {
		logger.Warn(ctx, "could not read mock mode", zap.Error(err))
	}

	return active
}

// ClearMockData drops every local mock record and leaves mock mode.
func (c *Client) ClearMockData(ctx context.Context) error {
	c.forceMock.Store(false)

	return c.mock.Clear(ctx)
}

func (c *Client) setMockMode(ctx context.Context, active bool) {
	if was := c.forceMock.Swap(active); !was && !active {
		return
	}
	if err := c.mock.SetMockMode(ctx, active); err != nil {
		logger.Warn(ctx, "could not persist mock mode", zap.Error(err))
	}
}

// withFallback runs online and, when the API gave no response, offline. A
// successful online call leaves mock mode.
func withFallback[T any](ctx context.Context, c *Client, online, offline func() (T, error)) (T, error) {
	v, err := online()
	if err == nil {
		c.setMockMode(ctx, false)

		return v, nil
	}
	if !IsConnectivityError(ctx, err) {
		return v, err
	}

	logger.Debug(ctx, "api unreachable, using local mock data", zap.Error(err))
	c.setMockMode(ctx, true)

	return offline()
}

// Materials lists the material catalog.
func (c *Client) Materials(ctx context.Context) ([]domain.Material, error) {
	return withFallback(ctx, c,
		func() ([]domain.Material, error) {
			var materials []domain.Material

			return materials, c.getJSON(ctx, "/materials", &materials)
		},
		func() ([]domain.Material, error) { return c.mock.Materials(ctx) })
}

// MachineProfiles also serves local profiles when the API predates the
// machine profile endpoint and answers 404.
func (c *Client) MachineProfiles(ctx context.Context) ([]domain.MachineProfile, error) {
	profiles, err := withFallback(ctx, c,
		func() ([]domain.MachineProfile, error) {
			var profiles []domain.MachineProfile

			return profiles, c.getJSON(ctx, "/machine-profiles", &profiles)
		},
		func() ([]domain.MachineProfile, error) { return c.mock.MachineProfiles(ctx) })

	var apiErr *APIError
	if err != nil && errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return c.mock.MachineProfiles(ctx)
	}

	return profiles, err
}

// Parts lists uploaded parts, newest first.
func (c *Client) Parts(ctx context.Context) ([]domain.PartSummary, error) {
	return withFallback(ctx, c,
		func() ([]domain.PartSummary, error) {
			var parts []domain.PartSummary

			return parts, c.getJSON(ctx, "/parts", &parts)
		},
		func() ([]domain.PartSummary, error) { return c.mock.Parts(ctx) })
}

// Part returns a part with its analysis results.
func (c *Client) Part(ctx context.Context, id domain.PartID) (*domain.Part, error) {
	return withFallback(ctx, c,
		func() (*domain.Part, error) {
			var part domain.Part
			if err := c.getJSON(ctx, "/parts/"+url.PathEscape(string(id)), &part); err != nil {
				return nil, err
			}

			return &part, nil
		},
		func() (*domain.Part, error) { return c.mock.Part(ctx, id) })
}

// Job returns the analysis job id.
func (c *Client) Job(ctx context.Context, id domain.JobID) (*domain.AnalysisJob, error) {
	return withFallback(ctx, c,
		func() (*domain.AnalysisJob, error) {
			var job domain.AnalysisJob
			if err := c.getJSON(ctx, "/jobs/"+url.PathEscape(string(id)), &job); err != nil {
				return nil, err
			}

			return &job, nil
		},
		func() (*domain.AnalysisJob, error) { return c.mock.Job(ctx, id) })
}

// UploadInput is a STEP file to submit.
type UploadInput struct {
	Filename         string
	Data             []byte
	MaterialID       domain.MaterialID
	MachineProfileID string
}

// Upload submits a STEP file for analysis. Offline, the part is analysed
// locally and completes immediately.
func (c *Client) Upload(ctx context.Context, input UploadInput) (*domain.UploadResult, error) {
	return withFallback(ctx, c,
		func() (*domain.UploadResult, error) { return c.upload(ctx, input) },
		func() (*domain.UploadResult, error) { return c.mock.Upload(ctx, input) })
}

func (c *Client) upload(ctx context.Context, input UploadInput) (*domain.UploadResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", input.Filename)
	if err != nil {
		return nil, fmt.Errorf("could not create upload form: %w", err)
	}
	if _, err := fw.Write(input.Data); err != nil {
		return nil, fmt.Errorf("could not create upload form: %w", err)
	}
	if err := mw.WriteField("material_id", strconv.FormatInt(int64(input.MaterialID), 10)); err != nil {
		return nil, fmt.Errorf("could not create upload form: %w", err)
	}
	if err := mw.WriteField("machine_profile", input.MachineProfileID); err != nil {
		return nil, fmt.Errorf("could not create upload form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("could not create upload form: %w", err)
	}

	var result domain.UploadResult
	if err := c.do(ctx, http.MethodPost, "/parts/upload", mw.FormDataContentType(), &body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateMaterial has no offline counterpart.
func (c *Client) CreateMaterial(ctx context.Context, input domain.MaterialInput) (*domain.Material, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("could not encode material: %w", err)
	}

	var material domain.Material
	if err := c.do(ctx, http.MethodPost, "/materials", "application/json", bytes.NewReader(body), &material); err != nil {
		return nil, err
	}

	return &material, nil
}

// Model downloads the preview model of a part.
func (c *Client) Model(ctx context.Context, id domain.PartID) ([]byte, string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/parts/"+url.PathEscape(string(id))+"/model", "", nil)
	if err != nil {
		return nil, "", err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrUnavailable, err, "could not reach api")
	}
	defer func() { _ = res.Body.Close() }()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrUnavailable, err, "could not read model")
	}
	if res.StatusCode != http.StatusOK {
		return nil, "", parseAPIError(res.StatusCode, data)
	}

	return data, res.Header.Get("Content-Type"), nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) newRequest(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

// do sends a request and decodes a 2xx JSON body into out. Transport
// failures are reported as serrors.ErrUnavailable, error statuses as
// *APIError.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := c.newRequest(ctx, method, path, contentType, body)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not reach api")
	}
	defer func() { _ = res.Body.Close() }()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not read api response")
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return parseAPIError(res.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("could not decode %s %s response: %w", method, path, err)
	}

	return nil
}
