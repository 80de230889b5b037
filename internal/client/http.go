package client

import (
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 15 * time.Second

// userAgent identifies the tool to the listings API, as its etiquette
// guidelines ask.
const userAgent = "hhscope/1.0 (+https://github.com/hhscope/hhscope)"

// New creates an HTTP client for the listings API. An empty proxyURL
// yields a direct client; an unparseable one falls back to direct.
func New(proxyURL string) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   true,
	}

	if proxyURL != "" {
		if proxy, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(proxy)
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   defaultTimeout,
	}
}

// SetHeaders applies the standard request headers for API calls.
func SetHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
}
