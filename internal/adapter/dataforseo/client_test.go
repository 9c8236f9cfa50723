package dataforseo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyword-planner/internal/config/configs"
	"keyword-planner/internal/core/domain"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
	}
}

func newTestClient(t *testing.T, rt roundTripperFunc) *Client {
	t.Helper()
	cfg := configs.DataForSEO{
		BaseURL:  "http://upstream/",
		SeedAuth: "c2VlZA==",
		SiteAuth: "c2l0ZQ==",
		Timeout:  2 * time.Second,
	}
	c, err := NewWithHTTPClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), &http.Client{Transport: rt})
	require.NoError(t, err)
	return c
}

const sitePayload = `{
  "status_code": 20000,
  "tasks": [{
    "status_code": 20000,
    "result": [
      {"keyword": " running shoes ", "search_volume": 5400, "competition": "HIGH",
       "low_top_of_page_bid": 0.8, "high_top_of_page_bid": 2.4, "cpc": 1.6,
       "keyword_annotations": {"concepts": [
         {"concept_group": {"name": "Product"}},
         {"concept_group": {"name": ""}},
         {"concept_group": null}
       ]}},
      {"keyword": "acme trail", "search_volume": 900, "competition": "low"},
      {"keyword": "rare term", "search_volume": 20, "competition": "LOW", "cpc": 0.1},
      {"keyword": "", "search_volume": 9000},
      {"search_volume": 9000},
      {"keyword": 42, "search_volume": 9000},
      {"keyword": "broken volume", "search_volume": "lots"},
      {"keyword": "weird comp", "search_volume": 700, "competition": "extreme", "cpc": null},
      {"keyword": "negative cpc", "search_volume": 700, "cpc": -1}
    ]
  }]
}`

func TestKeywordsForSite(t *testing.T) {
	c := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, keywordsForSitePath, req.URL.Path)
		assert.Equal(t, "Basic c2l0ZQ==", req.Header.Get("Authorization"))

		var tasks []map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&tasks))
		require.Len(t, tasks, 1)
		assert.Equal(t, "https://acme.example", tasks[0]["target"])
		assert.Equal(t, "United States", tasks[0]["location_name"])
		assert.Equal(t, "English", tasks[0]["language_name"])
		assert.NotContains(t, tasks[0], "keywords")

		return jsonResponse(http.StatusOK, sitePayload), nil
	})

	got, err := c.KeywordsForSite(context.Background(), "https://acme.example", "United States", 100)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, domain.Keyword{
		Keyword:       "running shoes",
		SearchVolume:  5400,
		Competition:   domain.CompetitionHigh,
		BidLow:        0.8,
		BidHigh:       2.4,
		CPC:           1.6,
		ConceptGroups: []string{"Product"},
	}, got[0])

	assert.Equal(t, "acme trail", got[1].Keyword)
	assert.Equal(t, domain.CompetitionLow, got[1].Competition)
	assert.Zero(t, got[1].CPC)
	assert.NotNil(t, got[1].ConceptGroups)
	assert.Empty(t, got[1].ConceptGroups)

	assert.Equal(t, "weird comp", got[2].Keyword)
	assert.Equal(t, domain.CompetitionMedium, got[2].Competition)

	for _, kw := range got {
		assert.GreaterOrEqual(t, kw.SearchVolume, 100)
	}
}

func TestKeywordsForKeywordsSendsSeeds(t *testing.T) {
	c := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, keywordsForKeywordsPath, req.URL.Path)
		assert.Equal(t, "Basic c2VlZA==", req.Header.Get("Authorization"))

		var tasks []liveTask
		require.NoError(t, json.NewDecoder(req.Body).Decode(&tasks))
		require.Len(t, tasks, 1)
		assert.Equal(t, []string{"shoes", "sneakers"}, tasks[0].Keywords)
		assert.Empty(t, tasks[0].Target)

		return jsonResponse(http.StatusOK, `{"tasks":[{"result":[{"keyword":"shoes sale","search_volume":1000}]}]}`), nil
	})

	got, err := c.KeywordsForKeywords(context.Background(), []string{"shoes", "sneakers"}, "United States", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "shoes sale", got[0].Keyword)
	assert.Equal(t, domain.CompetitionMedium, got[0].Competition)
}

func TestFetchFailures(t *testing.T) {
	cases := []struct {
		name string
		rt   roundTripperFunc
	}{
		{
			name: "transport error",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
		},
		{
			name: "non success status",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusUnauthorized, `{"status_message":"auth"}`), nil
			},
		},
		{
			name: "malformed payload",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `<html>`), nil
			},
		},
		{
			name: "task level error",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"tasks":[{"status_code":40501,"status_message":"Invalid Field"}]}`), nil
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, tc.rt)
			got, err := c.KeywordsForSite(context.Background(), "https://acme.example", "United States", 0)
			require.Error(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestNonSuccessStatusIsHTTPError(t *testing.T) {
	c := newTestClient(t, func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "upstream down"), nil
	})

	_, err := c.KeywordsForKeywords(context.Background(), []string{"shoes"}, "United States", 0)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "upstream down", httpErr.Body)
}

func TestTimeoutBecomesError(t *testing.T) {
	cfg := configs.DataForSEO{BaseURL: "http://upstream", Timeout: 20 * time.Millisecond}
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	})
	c, err := NewWithHTTPClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), &http.Client{Transport: rt})
	require.NoError(t, err)

	got, err := c.KeywordsForSite(context.Background(), "https://acme.example", "United States", 0)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, got)
}

func TestEmptyTasksYieldNoKeywords(t *testing.T) {
	c := newTestClient(t, func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"tasks":[]}`), nil
	})

	got, err := c.KeywordsForSite(context.Background(), "https://acme.example", "United States", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(configs.DataForSEO{BaseURL: "  "}, slog.Default())
	require.Error(t, err)
}
