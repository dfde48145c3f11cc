package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bell-lookup/internal/catalog"
	"bell-lookup/internal/channel"
	"bell-lookup/internal/supabase"
)

func init() { gin.SetMode(gin.TestMode) }

func sample() []channel.Channel {
	return []channel.Channel{
		{ID: 1, Name: "TSN", Number: "502", Category: "Sports", Bundles: "Bundle 1,Bundle 3", IsAlaCarte: true, AlaCartePrice: 5},
		{ID: 2, Name: "CNN", Number: "1500", Category: "News", Bundles: "Bundle 2"},
		{ID: 3, Name: "CTV News Channel", Number: "501", Category: "News", Bundles: "Bundle 1,Bundle 2,Bundle 3"},
		{ID: 4, Name: "HBO", Number: "1950", Category: "Movies", AddOn: &channel.AddOn{Name: "Crave", Price: 19.99}},
	}
}

func newTestRouter(t *testing.T, loaded bool) *gin.Engine {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	if loaded {
		require.NoError(t, cat.Replace(sample()))
	}
	return NewRouter(NewHandler(cat, supabase.NewMetrics()))
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	w := get(t, newTestRouter(t, true), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
}

func TestRequestIDReused(t *testing.T) {
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", id)
	w := httptest.NewRecorder()
	newTestRouter(t, true).ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get("X-Request-ID"))
}

func TestChannelsFilters(t *testing.T) {
	r := newTestRouter(t, true)
	tests := []struct {
		name  string
		query url.Values
		ids   []int
		sum   string
	}{
		{"all", nil, []int{1, 2, 3, 4}, "Showing 4 channels"},
		{"query", url.Values{"q": {"tsn"}}, []int{1}, "Showing 1 channel"},
		{"number", url.Values{"q": {"50"}}, []int{1, 2, 3, 4}, "Showing 4 channels"},
		{"bundle", url.Values{"bundle": {"Bundle 2"}}, []int{2, 3}, "Showing 2 channels"},
		{"category", url.Values{"category": {"News"}}, []int{2, 3}, "Showing 2 channels"},
		{"combined", url.Values{"q": {"tsn"}, "bundle": {"Bundle 2"}}, []int{}, "Showing 0 channels"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, r, "/api/channels?"+tt.query.Encode())
			require.Equal(t, http.StatusOK, w.Code)
			resp := decode[channelsResponse](t, w)
			got := make([]int, 0, len(resp.Channels))
			for _, c := range resp.Channels {
				got = append(got, c.ID)
			}
			assert.Equal(t, tt.ids, got)
			assert.Equal(t, len(tt.ids), resp.Count)
			assert.Equal(t, tt.sum, resp.Summary)
			assert.Equal(t, []string{"All", "Movies", "News", "Sports"}, resp.Categories)
			assert.False(t, resp.Loading)
		})
	}
}

func TestChannelsBadBundle(t *testing.T) {
	w := get(t, newTestRouter(t, true), "/api/channels?bundle=bundle+1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]string](t, w)
	assert.Contains(t, body["error"], "unknown bundle")
}

func TestChannelsWhileLoading(t *testing.T) {
	w := get(t, newTestRouter(t, false), "/api/channels")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[channelsResponse](t, w)
	assert.True(t, resp.Loading)
	assert.Equal(t, "Connecting to Database...", resp.Summary)
	assert.Equal(t, []string{"All"}, resp.Categories)
}

func TestChannelByID(t *testing.T) {
	r := newTestRouter(t, true)

	w := get(t, r, "/api/channels/4")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		Channel channel.Channel `json:"channel"`
		Card    channel.Card    `json:"card"`
	}](t, w)
	assert.Equal(t, "HBO", body.Channel.Name)
	assert.True(t, body.Card.AddOnOnly)
	require.NotNil(t, body.Card.AddOn)
	assert.Equal(t, "$19.99/mo", body.Card.AddOn.Price)

	assert.Equal(t, http.StatusNotFound, get(t, r, "/api/channels/99").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, r, "/api/channels/abc").Code)
}

func TestCategoriesAndBundles(t *testing.T) {
	r := newTestRouter(t, true)
	cats := decode[map[string][]string](t, get(t, r, "/api/categories"))
	assert.Equal(t, []string{"All", "Movies", "News", "Sports"}, cats["categories"])

	bundles := decode[map[string][]bundleOption](t, get(t, r, "/api/bundles"))
	require.Len(t, bundles["bundles"], 4)
	assert.Equal(t, bundleOption{Value: "All", Label: "All Bundles"}, bundles["bundles"][0])
	assert.Equal(t, "Bundle 1 (Strtr)", bundles["bundles"][1].Label)
}

func TestMetricsWithoutTransport(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)
	require.NoError(t, cat.Replace(sample()))
	r := NewRouter(NewHandler(cat, nil))
	w := get(t, r, "/api/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, float64(4), body["channels"])
}

func TestNoRoute(t *testing.T) {
	w := get(t, newTestRouter(t, true), "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

type brokenStore struct{}

func (brokenStore) Snapshot() (catalog.Snapshot, error) { return catalog.Snapshot{}, errors.New("boom") }
func (brokenStore) Get(int) (channel.Channel, bool, error) {
	return channel.Channel{}, false, errors.New("boom")
}

func TestStoreErrors(t *testing.T) {
	r := NewRouter(NewHandler(brokenStore{}, nil))
	for _, path := range []string{"/api/channels", "/api/categories", "/api/channels/1", "/api/metrics"} {
		w := get(t, r, path)
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.JSONEq(t, `{"error":"catalog error"}`, w.Body.String(), path)
	}
}
