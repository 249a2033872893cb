package backend

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// Client wraps the remote donation service. One base URL, JSON bodies, no
// auth headers. No retries, no timeouts beyond the transport's own and no
// caching: every caller sees exactly one attempt and the freshest data the
// backend returns.
type Client struct {
	BaseURL  string
	ShardKey string

	HTTPClient *http.Client
}

func New(baseURL, shardKey string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		ShardKey:   shardKey,
		HTTPClient: http.DefaultClient,
	}
}

// sharded appends the opaque shard routing parameter the backend requires on
// institution, campaign and transaction calls.
func (c *Client) sharded(path string) string {
	if c.ShardKey == "" {
		return c.BaseURL + path
	}
	return c.BaseURL + path + "?shardKey=" + url.QueryEscape(c.ShardKey)
}

func (c *Client) do(method, endpoint string, reqData interface{}) (*http.Response, error) {
	var body io.Reader
	if reqData != nil {
		b, err := json.Marshal(reqData)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	r, err := http.NewRequest(method, endpoint, body)
	if err != nil {
		return nil, err
	}
	r.Header.Add("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(r)
	if err != nil {
		log.Println("Error when hitting:", endpoint, err)
		return nil, &NetworkError{Endpoint: endpoint, Err: err}
	}
	return resp, nil
}

// getJSON performs a read. Non-success statuses become FetchError; the body is
// decoded straight into out.
func (c *Client) getJSON(endpoint string, out interface{}) error {
	resp, err := c.do("GET", endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Println("Error when unmarshalling from:", endpoint, err)
		return err
	}
	return nil
}

// send performs a write. On a non-success status the backend's message, when
// present, is surfaced through MutationError.
func (c *Client) send(method, endpoint string, reqData interface{}) error {
	resp, err := c.do(method, endpoint, reqData)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	var body struct {
		Message string `json:"message"`
	}
	json.NewDecoder(resp.Body).Decode(&body) // best effort
	return &MutationError{Status: resp.StatusCode, Message: body.Message}
}
