package repo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tbourn/go-news-backend/internal/domain"
)

func TestListArticleComments_MostRecentFirst(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	got, err := ListArticleComments(context.Background(), db, 1)
	if err != nil {
		t.Fatalf("ListArticleComments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(got))
	}
	if got[0].Body != "thanks" || got[1].Body != "nice" {
		t.Fatalf("comments not in created_at DESC order: %q, %q", got[0].Body, got[1].Body)
	}
}

func TestListArticleComments_NoComments_EmptySlice(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	got, err := ListArticleComments(context.Background(), db, 2)
	if err != nil {
		t.Fatalf("ListArticleComments: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestCreateComment_SetsGeneratedFields(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	start := time.Now().UTC().Add(-time.Minute)
	c, err := CreateComment(context.Background(), db, 2, "butter_bridge", "first!")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if c.CommentID == 0 {
		t.Fatal("comment_id was not generated")
	}
	if c.ArticleID != 2 || c.Author != "butter_bridge" || c.Body != "first!" {
		t.Fatalf("unexpected comment fields: %+v", c)
	}
	if c.Votes != 0 {
		t.Fatalf("new comment votes = %d, want 0", c.Votes)
	}
	if c.CreatedAt.Before(start) {
		t.Fatalf("created_at %v is not recent", c.CreatedAt)
	}
}

func TestCreateComment_UnknownUser_ForeignKeyViolation(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	c, err := CreateComment(context.Background(), db, 1, "nobody", "hi")
	if err == nil || c != nil {
		t.Fatalf("expected FK violation, got comment=%v err=%v", c, err)
	}
	if !strings.Contains(strings.ToLower(err.Error()), "foreign key") {
		t.Fatalf("expected foreign key error, got %v", err)
	}
}

func TestDeleteComment(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	if err := DeleteComment(context.Background(), db, 1); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}

	// Row is gone, and the article's comment count reflects it.
	var n int64
	if err := db.Model(&domain.Comment{}).Where("comment_id = ?", 1).Count(&n).Error; err != nil || n != 0 {
		t.Fatalf("comment still present after delete: n=%d err=%v", n, err)
	}
	a, err := GetArticle(context.Background(), db, 1)
	if err != nil {
		t.Fatalf("GetArticle: %v", err)
	}
	if a.CommentCount != 1 {
		t.Fatalf("comment_count = %d after delete, want 1", a.CommentCount)
	}
}

func TestDeleteComment_NotFound(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	if err := DeleteComment(context.Background(), db, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteComment(999) = %v, want ErrNotFound", err)
	}
}
