package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// fakeDataAPI serves search.list and videos.list from canned data.
type fakeDataAPI struct {
	mu          sync.Mutex
	searchItems []map[string]any
	stats       map[string]map[string]string // video id -> statistics; missing id means no items
	failSearch  bool
	failVideos  bool
	searchQuery map[string]string
	statsCalls  []string
}

func (f *fakeDataAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query()

	switch {
	case strings.HasSuffix(r.URL.Path, "/search"):
		if f.failSearch {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
			return
		}
		f.searchQuery = map[string]string{
			"q":          q.Get("q"),
			"type":       q.Get("type"),
			"part":       q.Get("part"),
			"maxResults": q.Get("maxResults"),
		}
		json.NewEncoder(w).Encode(map[string]any{"items": f.searchItems})
	case strings.HasSuffix(r.URL.Path, "/videos"):
		if f.failVideos {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"code":500,"message":"backend error"}}`))
			return
		}
		id := q.Get("id")
		f.statsCalls = append(f.statsCalls, id)
		items := []map[string]any{}
		if s, ok := f.stats[id]; ok {
			items = append(items, map[string]any{"id": id, "statistics": s})
		}
		json.NewEncoder(w).Encode(map[string]any{"items": items})
	default:
		http.NotFound(w, r)
	}
}

func searchItem(id, title string) map[string]any {
	return map[string]any{
		"id":      map[string]string{"kind": "youtube#video", "videoId": id},
		"snippet": map[string]string{"title": title},
	}
}

func newTestClient(t *testing.T, api *fakeDataAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	svc, err := yt.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return &Client{service: svc, logger: zap.NewNop()}
}

func TestClient_Search(t *testing.T) {
	api := &fakeDataAPI{
		searchItems: []map[string]any{
			searchItem("vid1", "Cats compilation"),
			searchItem("vid2", "Cat care basics"),
			searchItem("vid3", "Private cat"),
		},
		stats: map[string]map[string]string{
			"vid1": {"viewCount": "1500", "likeCount": "42"},
			"vid2": {"viewCount": "30"},
		},
	}
	client := newTestClient(t, api)

	videos, err := client.Search(context.Background(), "cats", 0)
	require.NoError(t, err)
	require.Len(t, videos, 3)

	assert.Equal(t, map[string]string{"q": "cats", "type": "video", "part": "snippet", "maxResults": "50"}, api.searchQuery)
	assert.Equal(t, []string{"vid1", "vid2", "vid3"}, api.statsCalls)

	assert.Equal(t, "Cats compilation", videos[0].Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=vid1", videos[0].URL)
	assert.Equal(t, "1500", videos[0].Views)
	assert.Equal(t, "42", videos[0].Likes)

	// statistics present without likeCount is not an empty lookup
	assert.Equal(t, "30", videos[1].Views)
	assert.Equal(t, "0", videos[1].Likes)

	assert.Equal(t, "https://www.youtube.com/watch?v=vid3", videos[2].URL)
	assert.Equal(t, "N/A", videos[2].Views)
	assert.Equal(t, "N/A", videos[2].Likes)
}

func TestClient_Search_URLFromVideoID(t *testing.T) {
	ids := []string{"a1B2c3D4e5F", "zz_--yy99Qx", "0"}
	api := &fakeDataAPI{stats: map[string]map[string]string{}}
	for _, id := range ids {
		api.searchItems = append(api.searchItems, searchItem(id, "t"))
	}
	client := newTestClient(t, api)

	videos, err := client.Search(context.Background(), "anything", 3)
	require.NoError(t, err)
	require.Len(t, videos, len(ids))
	for i, id := range ids {
		assert.Equal(t, "https://www.youtube.com/watch?v="+id, videos[i].URL)
	}
	assert.Equal(t, "3", api.searchQuery["maxResults"])
}

func TestClient_Search_NoResults(t *testing.T) {
	api := &fakeDataAPI{}
	client := newTestClient(t, api)

	videos, err := client.Search(context.Background(), "nothing matches", 10)
	require.NoError(t, err)
	assert.Empty(t, videos)
	assert.Empty(t, api.statsCalls)
}

func TestClient_Search_Errors(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeDataAPI
	}{
		{
			name: "search request fails",
			api:  &fakeDataAPI{failSearch: true},
		},
		{
			name: "statistics request fails",
			api: &fakeDataAPI{
				searchItems: []map[string]any{searchItem("vid1", "t")},
				failVideos:  true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.api)

			videos, err := client.Search(context.Background(), "cats", 5)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSearchFailed))
			assert.Nil(t, videos)
		})
	}
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", zap.NewNop())
	assert.Error(t, err)
}
