package pulse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pulsesocial/pulse-go/routes"
)

func TestHashtagsTrending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routes.HashtagsTrending {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "3" {
			t.Errorf("limit = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"tag":"go","count":12},{"tag":"coffee","count":7}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "")
	tags, err := client.Hashtags.Trending(context.Background(), 3)
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if len(tags.Items) != 2 || tags.Items[0].Tag != "go" {
		t.Fatalf("unexpected tags %+v", tags)
	}
}

func TestHashtagsPostsStripsHashPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hashtags/golang/posts" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok")
	if _, err := client.Hashtags.Posts(context.Background(), "#golang", PageOptions{}); err != nil {
		t.Fatalf("posts: %v", err)
	}
	if _, err := client.Hashtags.Posts(context.Background(), "#", PageOptions{}); err == nil {
		t.Fatal("empty tag accepted")
	}
}
