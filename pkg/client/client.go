// Package client talks to the summary endpoints of the endor backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/vmindtech/endor/internal/dto/request"
	"github.com/vmindtech/endor/internal/dto/resource"
	"github.com/vmindtech/endor/pkg/constants"
)

const (
	summaryPath = "api/v1/summary"
	reportPath  = "api/v1/summary/report"
	healthPath  = "api/v1/health"
)

// Error carries the error contract of the summary endpoints.
type Error struct {
	StatusCode int
	ErrorType  string
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorType, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) GetProjectSummary(ctx context.Context, projectUUID, repoURL, namespace string) (*resource.ProjectSummary, error) {
	var summary resource.ProjectSummary
	if err := c.postSummary(ctx, summaryPath, projectUUID, repoURL, namespace, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *Client) GetReport(ctx context.Context, projectUUID, repoURL, namespace string) (*resource.SummaryReport, error) {
	var report resource.SummaryReport
	if err := c.postSummary(ctx, reportPath, projectUUID, repoURL, namespace, &report); err != nil {
		return nil, err
	}

	return &report, nil
}

func (c *Client) Health(ctx context.Context) (*resource.HealthResource, error) {
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, healthPath), nil)
	if err != nil {
		return nil, err
	}

	var health resource.HealthResource
	if err := c.do(r, &health); err != nil {
		return nil, err
	}

	return &health, nil
}

// postSummary fails locally when neither identifier is set, mirroring the
// backend's MISSING_ANNOTATION answer without a round trip.
func (c *Client) postSummary(ctx context.Context, path, projectUUID, repoURL, namespace string, out interface{}) error {
	if projectUUID == "" && repoURL == "" {
		return &Error{
			StatusCode: http.StatusBadRequest,
			ErrorType:  constants.ErrTypeMissingAnnotation,
			Message:    "Missing required annotations",
		}
	}

	data, err := json.Marshal(&request.SummaryRequest{
		ProjectUUID: projectUUID,
		RepoURL:     repoURL,
		Namespace:   namespace,
	})
	if err != nil {
		return err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", c.baseURL, path), bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	r.Header.Add("Content-Type", "application/json")

	return c.do(r, out)
}

func (c *Client) do(r *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(r)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		ErrorType string `json:"errorType"`
		Message   string `json:"message"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.ErrorType == "" {
		return &Error{
			StatusCode: resp.StatusCode,
			ErrorType:  constants.ErrTypeAPIError,
			Message:    resp.Status,
		}
	}

	return &Error{
		StatusCode: resp.StatusCode,
		ErrorType:  body.ErrorType,
		Message:    body.Message,
	}
}
