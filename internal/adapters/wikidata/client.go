package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/bnema/bundesliga-context-cli/internal/adapters/ratelimit"
	"github.com/bnema/bundesliga-context-cli/internal/domain"
	"github.com/bnema/bundesliga-context-cli/internal/logger"
	"github.com/bnema/bundesliga-context-cli/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultEndpoint   = "https://query.wikidata.org/sparql"
	sparqlResultsJSON = "application/sparql-results+json"
	maxResponseBytes  = 8 << 20
)

var clubIDPattern = regexp.MustCompile(`^Q[1-9][0-9]*$`)

// Client runs the fixed club and coach queries against a Wikidata SPARQL
// endpoint.
type Client struct {
	Endpoint   string
	Language   string
	UserAgent  string
	HTTPClient *http.Client
	Limiter    *ratelimit.Limiter
	Logger     *zap.Logger
}

var _ ports.KnowledgeSource = (*Client)(nil)

type sparqlResponse struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []map[string]sparqlValue `json:"bindings"`
	} `json:"results"`
}

type sparqlValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (c *Client) Clubs(ctx context.Context) ([]domain.RawClub, error) {
	bindings, err := c.query(ctx, clubsQuery(c.language()), clubsQueryVars)
	if err != nil {
		return nil, domain.NewLookupError("query bundesliga clubs", err)
	}

	clubs := make([]domain.RawClub, 0, len(bindings))
	for _, binding := range bindings {
		clubs = append(clubs, domain.RawClub{
			URI:       binding["club"].Value,
			Label:     binding["clubLabel"].Value,
			CityLabel: binding["cityLabel"].Value,
		})
	}

	return clubs, nil
}

func (c *Client) Coaches(ctx context.Context, club domain.ClubID) ([]string, error) {
	if !clubIDPattern.MatchString(string(club)) {
		return nil, domain.NewLookupError("query club coaches", fmt.Errorf("invalid club id %q", club))
	}

	bindings, err := c.query(ctx, coachesQuery(string(club), c.language()), coachesQueryVars)
	if err != nil {
		return nil, domain.NewLookupError("query club coaches", err)
	}

	coaches := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		coaches = append(coaches, binding["coachLabel"].Value)
	}

	return coaches, nil
}

func (c *Client) query(ctx context.Context, sparql string, vars []string) ([]map[string]sparqlValue, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}

	endpoint, err := url.Parse(c.endpoint())
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	params := endpoint.Query()
	params.Set("query", sparql)
	params.Set("format", "json")
	endpoint.RawQuery = params.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", sparqlResultsJSON)
	if c.UserAgent != "" {
		request.Header.Set("User-Agent", c.UserAgent)
	}

	started := time.Now()
	response, err := c.httpClient().Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("status %d: %s", response.StatusCode, snippet(body))
	}

	if err := validateResult(body, vars); err != nil {
		return nil, err
	}

	var payload sparqlResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	c.logger().Debug("sparql query completed",
		zap.String("endpoint", c.endpoint()),
		zap.Int("rows", len(payload.Results.Bindings)),
		zap.Duration("duration", time.Since(started)),
	)

	return payload.Results.Bindings, nil
}

func (c *Client) endpoint() string {
	if c.Endpoint == "" {
		return DefaultEndpoint
	}
	return c.Endpoint
}

func (c *Client) language() string {
	if c.Language == "" {
		return "en"
	}
	return c.Language
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

func snippet(body []byte) string {
	const limit = 200
	text := strings.TrimSpace(string(body))
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}
