// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"homework_notification_bot/internal/domain/homework"
)

// DefaultEndpoint is the homework statuses endpoint of the Practicum user API.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// Client fetches homework statuses on behalf of a single user.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

func NewClient(httpClient *http.Client, endpoint, token string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		token:      token,
	}
}

// Fetch requests statuses changed since cursor and returns the decoded body as is.
// Failures are *homework.Error of kind transport or endpoint.
func (c *Client) Fetch(ctx context.Context, cursor homework.Cursor) (homework.RawPayload, error) {
	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, homework.TransportError("invalid endpoint", err)
	}
	q := reqURL.Query()
	q.Set("from_date", strconv.FormatInt(int64(cursor), 10))
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, homework.TransportError("failed to build request", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, homework.TransportError("request to endpoint failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, homework.EndpointError(resp.StatusCode)
	}

	payload, err := decodePayload(resp.Body)
	if err != nil {
		return nil, homework.TransportError("failed to decode response", err)
	}
	return payload, nil
}

func decodePayload(r io.Reader) (homework.RawPayload, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload homework.RawPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, fmt.Errorf("response body is not a JSON object")
	}
	return payload, nil
}
