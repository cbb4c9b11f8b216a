package catalog

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const proxyURL = "http://catalog.test/api/rakuten"

func newMockedClient(t *testing.T, maxRetries int) (*Client, *httpmock.MockTransport) {
	t.Helper()
	c := NewClient(ClientConfig{BaseURL: proxyURL, MaxRetries: maxRetries})
	c.backoff = time.Millisecond
	transport := httpmock.NewMockTransport()
	c.httpClient.Transport = transport
	return c, transport
}

func TestClient_Fetch_QueryAndDecode(t *testing.T) {
	c, transport := newMockedClient(t, 0)

	transport.RegisterResponderWithQuery(http.MethodGet, proxyURL,
		map[string]string{"genreId": DefaultGenreID, "keyword": "エリック・カール", "page": "2"},
		httpmock.NewStringResponder(http.StatusOK, `{
			"items": [
				{"Item": {"title": "はらぺこあおむし", "author": "エリック・カール", "isbn": "9784033280103", "reviewAverage": "4.62", "reviewCount": 310}},
				{"title": "ぐりとぐら", "mediumImageUrl": "http://img/m.jpg", "reviewAverage": 4.5}
			],
			"page": 2, "pageCount": 3, "count": 25
		}`))

	res, err := c.Fetch(context.Background(), Params{GenreID: DefaultGenreID, Keyword: "エリック・カール", Page: 2})
	require.NoError(t, err)

	assert.Equal(t, 25, res.Count)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 3, res.PageCount)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "はらぺこあおむし", res.Items[0].Title)
	assert.True(t, res.Items[0].ReviewAverage.Valid)
	assert.InDelta(t, 4.62, res.Items[0].ReviewAverage.Value, 1e-9)
	assert.Equal(t, flexInt(310), res.Items[0].ReviewCount)
	assert.Equal(t, "http://img/m.jpg", res.Items[1].MediumImageURL)
	assert.InDelta(t, 4.5, res.Items[1].ReviewAverage.Value, 1e-9)
}

func TestClient_Fetch_DefaultsPageToOne(t *testing.T) {
	c, transport := newMockedClient(t, 0)
	transport.RegisterResponderWithQuery(http.MethodGet, proxyURL,
		map[string]string{"genreId": "001003003", "title": "ずかん", "page": "1"},
		httpmock.NewStringResponder(http.StatusOK, `{"items": [], "page": 1, "pageCount": 0, "count": 0}`))

	res, err := c.Fetch(context.Background(), Params{GenreID: "001003003", Title: "ずかん"})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestClient_Fetch_NoRetryByDefault(t *testing.T) {
	c, transport := newMockedClient(t, 0)
	transport.RegisterResponder(http.MethodGet, proxyURL,
		httpmock.NewStringResponder(http.StatusServiceUnavailable, `{"error":"down"}`))

	_, err := c.Fetch(context.Background(), Params{GenreID: DefaultGenreID, Keyword: "x"})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestClient_Fetch_RetriesTransientFailures(t *testing.T) {
	c, transport := newMockedClient(t, 2)
	transport.RegisterResponder(http.MethodGet, proxyURL,
		httpmock.ResponderFromMultipleResponses([]*http.Response{
			httpmock.NewStringResponse(http.StatusTooManyRequests, ""),
			httpmock.NewStringResponse(http.StatusBadGateway, ""),
			httpmock.NewStringResponse(http.StatusOK, `{"items": [], "page": 1, "pageCount": 0, "count": 0}`),
		}))

	_, err := c.Fetch(context.Background(), Params{GenreID: DefaultGenreID, Keyword: "x"})
	require.NoError(t, err)
	assert.Equal(t, 3, transport.GetTotalCallCount())
}

func TestClient_Fetch_ClientErrorIsNotRetried(t *testing.T) {
	c, transport := newMockedClient(t, 3)
	transport.RegisterResponder(http.MethodGet, proxyURL,
		httpmock.NewStringResponder(http.StatusBadRequest, `{"error":"bad"}`))

	_, err := c.Fetch(context.Background(), Params{GenreID: DefaultGenreID, Keyword: "x"})
	require.Error(t, err)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestClient_Fetch_MalformedBody(t *testing.T) {
	c, transport := newMockedClient(t, 0)
	transport.RegisterResponder(http.MethodGet, proxyURL,
		httpmock.NewStringResponder(http.StatusOK, `<html>`))

	_, err := c.Fetch(context.Background(), Params{GenreID: DefaultGenreID, Keyword: "x"})
	assert.ErrorContains(t, err, "decode catalog response")
}
