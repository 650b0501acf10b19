package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/bundesliga-context-cli/internal/adapters/ratelimit"
	"github.com/bnema/bundesliga-context-cli/internal/domain"
	"github.com/bnema/bundesliga-context-cli/internal/logger"
	"github.com/bnema/bundesliga-context-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultAPIURL    = "https://en.wikipedia.org/w/api.php"
	maxResponseBytes = 4 << 20
)

// Client fetches the plain-text lead section of a page through the
// MediaWiki action API.
type Client struct {
	APIURL     string
	UserAgent  string
	HTTPClient *http.Client
	Limiter    *ratelimit.Limiter
	Logger     *zap.Logger
}

var _ ports.Encyclopedia = (*Client)(nil)

type queryResponse struct {
	Query *struct {
		Pages []pageResponse `json:"pages"`
	} `json:"query"`
	Error *apiError `json:"error,omitempty"`
}

type pageResponse struct {
	PageID  int64  `json:"pageid"`
	Title   string `json:"title"`
	Extract string `json:"extract"`
	Missing bool   `json:"missing"`
	Invalid bool   `json:"invalid"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (c *Client) Page(ctx context.Context, title string) (domain.Page, error) {
	if strings.TrimSpace(title) == "" {
		return domain.Page{Title: title}, nil
	}

	payload, err := c.fetch(ctx, title)
	if err != nil {
		return domain.Page{}, domain.NewLookupError("fetch wikipedia page", err)
	}

	if payload.Error != nil {
		return domain.Page{}, domain.NewLookupError("fetch wikipedia page", fmt.Errorf("api error (%s): %s", payload.Error.Code, payload.Error.Info))
	}
	if payload.Query == nil || len(payload.Query.Pages) == 0 {
		return domain.Page{Title: title}, nil
	}

	page := payload.Query.Pages[0]
	if page.Missing || page.Invalid {
		c.logger().Debug("wikipedia page not found", zap.String("title", title))
		return domain.Page{Title: title}, nil
	}

	resolved := page.Title
	if resolved == "" {
		resolved = title
	}

	return domain.Page{
		Title:   resolved,
		Exists:  true,
		Summary: strings.TrimSpace(page.Extract),
	}, nil
}

func (c *Client) fetch(ctx context.Context, title string) (queryResponse, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return queryResponse{}, fmt.Errorf("wait for rate limiter: %w", err)
	}

	endpoint, err := url.Parse(c.apiURL())
	if err != nil {
		return queryResponse{}, fmt.Errorf("parse api url: %w", err)
	}
	params := endpoint.Query()
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("titles", title)
	endpoint.RawQuery = params.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return queryResponse{}, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		request.Header.Set("User-Agent", c.UserAgent)
	}

	response, err := c.httpClient().Do(request)
	if err != nil {
		return queryResponse{}, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return queryResponse{}, fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return queryResponse{}, fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload queryResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return queryResponse{}, fmt.Errorf("decode payload: %w", err)
	}

	return payload, nil
}

func (c *Client) apiURL() string {
	if c.APIURL == "" {
		return DefaultAPIURL
	}
	return c.APIURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

func (c *Client) logger() *zap.Logger {
	return logger.OrNop(c.Logger)
}
