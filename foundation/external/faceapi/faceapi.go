// Package faceapi is a client for the facial-expression detector
// service. The service owns the camera; every Detect call returns the
// per-emotion probabilities of the latest frame.
package faceapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiTimeout = 15

// ErrDeviceUnavailable reports that the camera could not be claimed,
// either because it is missing or because permission was denied.
var ErrDeviceUnavailable = errors.New("camera unavailable")

// Expressions holds one frame's probability per emotion label,
// including neutral. Values are in [0,1] and sum to roughly 1.
type Expressions map[string]float64

type Client struct {
	endpoint string
	apiKey   string
	http     http.Client
}

func New(apiEndpoint string, apiKey string) *Client {
	return &Client{
		endpoint: apiEndpoint,
		apiKey:   apiKey,
		http:     http.Client{Timeout: apiTimeout * time.Second},
	}
}

// Connect claims the camera for this session.
func (c *Client) Connect(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/camera/claim")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrDeviceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s", ErrDeviceUnavailable, string(bytes))
	}

	return nil
}

// Detect pulls the expression probabilities of the current frame.
func (c *Client) Detect(ctx context.Context) (Expressions, error) {
	resp, err := c.do(ctx, http.MethodGet, "/camera/expressions")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(string(bytes))
	}

	var e Expressions
	if err := json.Unmarshal(bytes, &e); err != nil {
		return nil, err
	}

	return e, nil
}

// Close releases the camera.
func (c *Client) Close(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/camera/release")
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

func (c *Client) do(ctx context.Context, method string, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("api-key", c.apiKey)

	return c.http.Do(req)
}
