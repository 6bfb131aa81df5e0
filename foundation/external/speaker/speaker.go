// Package speaker is a client for the text-to-speech service used to
// announce the final result. Announcements are best effort.
package speaker

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const apiTimeout = 15

type Client struct {
	endpoint string
	http     http.Client
}

func New(apiEndpoint string) *Client {
	return &Client{
		endpoint: apiEndpoint,
		http:     http.Client{Timeout: apiTimeout * time.Second},
	}
}

// Say asks the service to speak the given text.
func (c *Client) Say(ctx context.Context, text string) error {
	params := url.Values{}
	params.Add("text", text)

	payload := strings.NewReader(params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, payload)
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bytes, _ := io.ReadAll(resp.Body)
		return errors.New(string(bytes))
	}

	return nil
}
