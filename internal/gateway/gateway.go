package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/roadwatch-io/trackview/internal/model"
)

// apiPath is the single endpoint both fetch operations post to.
const apiPath = "api/data"

// allRecordsID is the sentinel id meaning "no id filter, return everything
// visible to this credential".
const allRecordsID int64 = 0

// queryRequest is the POST body for api/data.
type queryRequest struct {
	MessageID int64 `json:"IDMENSAGEM"`
}

// Client issues the two supported remote operations against the tracking
// endpoint. It performs no retries; callers own retry policy.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New returns a Client for the given base URL. timeout bounds each request
// end to end.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// FetchAll returns every record visible to the credential.
func (c *Client) FetchAll(ctx context.Context, credential string) ([]model.Record, error) {
	return c.query(ctx, credential, allRecordsID)
}

// FetchByID returns the records the server matches against the given id.
// The server owns the matching semantics; the client does not validate them.
func (c *Client) FetchByID(ctx context.Context, credential string, id int64) ([]model.Record, error) {
	return c.query(ctx, credential, id)
}

func (c *Client) query(ctx context.Context, credential string, id int64) ([]model.Record, error) {
	body, err := json.Marshal(queryRequest{MessageID: id})
	if err != nil {
		return nil, &RemoteFailure{Stage: StageTransport, Err: err}
	}

	requestID := uuid.NewString()
	url := c.baseURL + "/" + apiPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &RemoteFailure{Stage: StageTransport, Err: err}
	}
	req.Header.Set("Authorization", credential)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RemoteFailure{Stage: StageTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteFailure{
			Stage:  StageStatus,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var records []model.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &RemoteFailure{Stage: StageDecode, Status: resp.StatusCode, Err: err}
	}

	c.log.Debug().
		Str("request_id", requestID).
		Int64("id", id).
		Int("records", len(records)).
		Dur("elapsed", time.Since(start)).
		Msg("fetch completed")

	return records, nil
}
