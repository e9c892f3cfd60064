package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cinedex/internal/limiter"
	"cinedex/models"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// Client is a thin TMDB v3 client. It owns no state beyond its
// configuration; every call goes through the shared slot limiter and the
// transient-failure retry policy.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	lim     *limiter.Limiter

	retryAttempts  int
	retryBaseDelay time.Duration
}

// ClientConfig configures a TMDB client. Zero values fall back to the
// production defaults.
type ClientConfig struct {
	APIKey         string
	BaseURL        string
	HTTPClient     *http.Client
	Limiter        *limiter.Limiter
	RetryAttempts  int
	RetryBaseDelay time.Duration
}

// NewClient creates a TMDB client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if cfg.Limiter == nil {
		cfg.Limiter = limiter.New(limiter.DefaultSlots)
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = DefaultRetryAttempts
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = DefaultRetryBaseDelay
	}
	return &Client{
		apiKey:         cfg.APIKey,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		httpc:          cfg.HTTPClient,
		lim:            cfg.Limiter,
		retryAttempts:  cfg.RetryAttempts,
		retryBaseDelay: cfg.RetryBaseDelay,
	}
}

// Detail fetches a single movie or series and annotates it with the
// requested media type, which TMDB omits on single-item endpoints.
func (c *Client) Detail(ctx context.Context, mediaType, id string) (*models.MediaDetail, error) {
	if !models.IsValidMediaType(mediaType) {
		return nil, fmt.Errorf("invalid media type %q", mediaType)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("media id is required")
	}

	var detail models.MediaDetail
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, mediaType, url.PathEscape(id))
	if err := c.doGET(ctx, endpoint, nil, &detail); err != nil {
		return nil, err
	}
	detail.MediaType = mediaType
	return &detail, nil
}

// Browse returns one page of results: the trending/all/day feed when query
// is empty, otherwise a multi-type search. Results are filtered to the two
// supported media types and a missing type tag is inferred from the
// presence of a first air date.
func (c *Client) Browse(ctx context.Context, query string, page int) (*models.BrowsePage, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var endpoint string
	if q := strings.TrimSpace(query); q != "" {
		endpoint = c.baseURL + "/search/multi"
		params.Set("query", q)
	} else {
		endpoint = c.baseURL + "/trending/all/day"
	}

	var resp struct {
		Results []struct {
			models.MediaDetail
			RawMediaType string `json:"media_type"`
		} `json:"results"`
		TotalPages int `json:"total_pages"`
		Page       int `json:"page"`
	}
	if err := c.doGET(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}

	results := make([]models.MediaDetail, 0, len(resp.Results))
	for _, item := range resp.Results {
		mediaType := item.RawMediaType
		if mediaType == "" {
			if item.FirstAirDate != "" {
				mediaType = models.MediaTypeTV
			} else {
				mediaType = models.MediaTypeMovie
			}
		}
		// search/multi mixes in people; drop everything but movie/tv.
		if !models.IsValidMediaType(mediaType) {
			continue
		}
		detail := item.MediaDetail
		detail.MediaType = mediaType
		results = append(results, detail)
	}

	out := &models.BrowsePage{
		Results:    results,
		TotalPages: resp.TotalPages,
		Page:       resp.Page,
	}
	if out.TotalPages < 1 {
		out.TotalPages = 1
	}
	if out.Page < 1 {
		out.Page = page
	}
	return out, nil
}

// doGET performs one limited, retried GET and decodes the JSON body into v.
func (c *Client) doGET(ctx context.Context, endpoint string, params url.Values, v any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	u := endpoint + "?" + params.Encode()

	return c.lim.Do(ctx, func() error {
		return c.withRetry(ctx, endpoint, func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
			if err != nil {
				return fmt.Errorf("build tmdb request: %w", err)
			}
			log.Printf("[tmdb] GET %s", endpoint)
			resp, err := c.httpc.Do(req)
			if err != nil {
				return &UpstreamError{Err: err}
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 300 {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
				return &UpstreamError{
					StatusCode: resp.StatusCode,
					Body:       strings.TrimSpace(string(body)),
				}
			}
			if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
				return fmt.Errorf("decode tmdb response: %w", err)
			}
			return nil
		})
	})
}
