package feed

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"carelink/models"
)

type fakePostRepo struct {
	posts map[string]*models.Post
	seq   int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*models.Post)}
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	f.seq++
	post.ID = fmt.Sprintf("post-%d", f.seq)
	post.CreatedAt = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Minute)
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id, authorID string) error {
	p, ok := f.posts[id]
	if !ok || p.AuthorID != authorID {
		return mongo.ErrNoDocuments
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) ListFeed(ctx context.Context, before time.Time, limit int64) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.posts {
		if before.IsZero() || p.CreatedAt.Before(before) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePostRepo) ListByAuthor(ctx context.Context, authorID string, limit int64) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) Like(ctx context.Context, id, userID string) error {
	p, ok := f.posts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for _, u := range p.LikedBy {
		if u == userID {
			return nil
		}
	}
	p.LikedBy = append(p.LikedBy, userID)
	p.LikeCount++
	return nil
}

func (f *fakePostRepo) Unlike(ctx context.Context, id, userID string) error {
	p, ok := f.posts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for i, u := range p.LikedBy {
		if u == userID {
			p.LikedBy = append(p.LikedBy[:i], p.LikedBy[i+1:]...)
			p.LikeCount--
			return nil
		}
	}
	return nil
}

func (f *fakePostRepo) EnsureIndexes() error { return nil }

func TestPublishAndPage(t *testing.T) {
	repo := newFakePostRepo()
	svc := &DefaultFeedService{Repo: repo}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.Publish(ctx, "prof-1", "professional", PostData{Body: fmt.Sprintf("update %d", i)}); err != nil {
			t.Fatalf("Publish: %v", err)
		}
	}

	page, err := svc.Page(ctx, "", 3)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if len(page.Posts) != 3 {
		t.Fatalf("page size = %d, want 3", len(page.Posts))
	}
	if page.NextCursor == "" {
		t.Fatal("expected a next cursor on a full page")
	}
	for i := 1; i < len(page.Posts); i++ {
		if page.Posts[i].CreatedAt.After(page.Posts[i-1].CreatedAt) {
			t.Fatal("posts are not newest first")
		}
	}

	next, err := svc.Page(ctx, page.NextCursor, 3)
	if err != nil {
		t.Fatalf("Page with cursor: %v", err)
	}
	if len(next.Posts) != 2 {
		t.Fatalf("second page size = %d, want 2", len(next.Posts))
	}
	if next.NextCursor != "" {
		t.Errorf("short page should not carry a cursor, got %q", next.NextCursor)
	}
	if next.Posts[0].CreatedAt.After(page.Posts[len(page.Posts)-1].CreatedAt) {
		t.Error("second page overlaps the first")
	}
}

func TestPublishRejectsEmptyBody(t *testing.T) {
	svc := &DefaultFeedService{Repo: newFakePostRepo()}
	if _, err := svc.Publish(context.Background(), "user-1", "patient", PostData{Body: "   "}); err == nil {
		t.Fatal("expected error for blank body")
	}
}

func TestPageRejectsBadCursor(t *testing.T) {
	svc := &DefaultFeedService{Repo: newFakePostRepo()}
	if _, err := svc.Page(context.Background(), "yesterday", 10); err == nil {
		t.Fatal("expected error for malformed cursor")
	}
}

func TestLikeUnlike(t *testing.T) {
	repo := newFakePostRepo()
	svc := &DefaultFeedService{Repo: repo}
	ctx := context.Background()

	post, err := svc.Publish(ctx, "prof-1", "professional", PostData{Body: "clinic open saturdays"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if err := svc.Like(ctx, post.ID, "user-1"); err != nil {
		t.Fatalf("Like: %v", err)
	}
	// Liking twice is a no-op, not an error.
	if err := svc.Like(ctx, post.ID, "user-1"); err != nil {
		t.Fatalf("second Like: %v", err)
	}
	if got := repo.posts[post.ID].LikeCount; got != 1 {
		t.Errorf("likeCount = %d, want 1", got)
	}

	if err := svc.Unlike(ctx, post.ID, "user-1"); err != nil {
		t.Fatalf("Unlike: %v", err)
	}
	if got := repo.posts[post.ID].LikeCount; got != 0 {
		t.Errorf("likeCount after unlike = %d, want 0", got)
	}

	if err := svc.Like(ctx, "missing", "user-1"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("like missing post err = %v, want ErrPostNotFound", err)
	}
}

func TestDeleteRequiresAuthor(t *testing.T) {
	repo := newFakePostRepo()
	svc := &DefaultFeedService{Repo: repo}
	ctx := context.Background()

	post, err := svc.Publish(ctx, "prof-1", "professional", PostData{Body: "hello"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if err := svc.Delete(ctx, post.ID, "someone-else"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("delete by stranger err = %v, want ErrPostNotFound", err)
	}
	if err := svc.Delete(ctx, post.ID, "prof-1"); err != nil {
		t.Errorf("delete by author: %v", err)
	}
}
