package pulse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pulsesocial/pulse-go/routes"
)

func TestPostsCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routes.Posts || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req PostCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Content != "hello world" {
			t.Errorf("content = %q", req.Content)
		}
		if req.Source != PostSourceUser {
			t.Errorf("source = %q, want default user", req.Source)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":11}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok")
	resp, err := client.Posts.Create(context.Background(), PostCreateRequest{Content: "hello world"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.ID != 11 {
		t.Fatalf("id = %d, want 11", resp.ID)
	}
}

func TestPostsCreateRequiresContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be issued")
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok")
	if _, err := client.Posts.Create(context.Background(), PostCreateRequest{Content: "   "}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestPostsFeedPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routes.PostsFeed {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("limit") != "5" || q.Get("offset") != "10" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":1,"content":"a","owner":{"id":2,"username":"bob"},"hashtags":["#go"]}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "")
	feed, err := client.Posts.Feed(context.Background(), PageOptions{Limit: 5, Offset: 10})
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(feed.Items) != 1 || feed.Items[0].Owner.Username != "bob" {
		t.Fatalf("unexpected feed %+v", feed)
	}
}

func TestPostsCommentsRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/posts/3/comments":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"content":"nice","owner":{"id":2,"username":"bob"}}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/posts/3/comments":
			var req struct {
				Content string `json:"content"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.Content != "thanks" {
				t.Errorf("content = %q", req.Content)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":2,"content":"thanks","owner":{"id":9,"username":"alice"}}`))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok")
	comments, err := client.Posts.Comments(context.Background(), 3, PageOptions{})
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	if len(comments) != 1 || comments[0].Content != "nice" {
		t.Fatalf("unexpected comments %+v", comments)
	}

	added, err := client.Posts.AddComment(context.Background(), 3, "  thanks  ")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if added.Owner.Username != "alice" {
		t.Fatalf("unexpected comment %+v", added)
	}
}

func TestPostsToggleLike(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/posts/5/like" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"liked":true,"like_count":4}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok")
	result, err := client.Posts.ToggleLike(context.Background(), 5)
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if !result.Liked || result.LikeCount != 4 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestPostsRejectInvalidID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be issued")
	}))
	defer srv.Close()

	client := newTestClient(t, srv, "tok")
	ctx := context.Background()
	if _, err := client.Posts.Get(ctx, 0); err == nil {
		t.Error("Get(0) succeeded")
	}
	if err := client.Posts.Delete(ctx, -1); err == nil {
		t.Error("Delete(-1) succeeded")
	}
	if _, err := client.Posts.ToggleLike(ctx, 0); err == nil {
		t.Error("ToggleLike(0) succeeded")
	}
}
