package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for talking to the remote sync server.
// It embeds *resty.Client to expose all of its methods directly, so the
// collection adapter can configure base URL, auth token, and timeouts on
// it without re-exporting each knob.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a new HTTPClient with a default-configured
// underlying resty.Client. Each call returns an independent instance
// with its own connection pool and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetHeader("Accept", "application/json").
//	    Get("https://sync.example.org/info/collections")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
