package graph

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/config"
	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/logger"
)

var httpClient *resty.Client

// Init initializes the Graph API HTTP client
func Init() {
	httpClient = resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", "Juan365-CLI/0.1.0")

	// Add request/response logging
	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())
		return nil
	})
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetBaseURL points the client at a different Graph endpoint. Used by tests.
func SetBaseURL(url string) {
	GetClient().SetBaseURL(url)
}
