package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-news-backend/internal/domain"
)

func newNewsDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("news_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// seedContent inserts two topics, two users, three articles (ids 1..3 in
// insert order) and two comments on article 1.
func seedContent(t *testing.T, db *gorm.DB) {
	t.Helper()

	rows := []any{
		&domain.Topic{Slug: "coding", Description: "All things code"},
		&domain.Topic{Slug: "cooking", Description: "All things food"},
		&domain.User{Username: "butter_bridge", Name: "Jonny"},
		&domain.User{Username: "icellusedkars", Name: "Sam"},
	}
	for _, r := range rows {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed %T: %v", r, err)
		}
	}

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	articles := []domain.Article{
		{Title: "Go generics", Topic: "coding", Author: "butter_bridge", Body: "a", CreatedAt: base, Votes: 10},
		{Title: "SQL tricks", Topic: "coding", Author: "icellusedkars", Body: "b", CreatedAt: base.Add(time.Hour), Votes: 5},
		{Title: "Sourdough", Topic: "cooking", Author: "butter_bridge", Body: "c", CreatedAt: base.Add(2 * time.Hour), Votes: 0},
	}
	for i := range articles {
		if err := db.Create(&articles[i]).Error; err != nil {
			t.Fatalf("seed article %q: %v", articles[i].Title, err)
		}
	}

	comments := []domain.Comment{
		{ArticleID: 1, Author: "icellusedkars", Body: "nice", CreatedAt: base.Add(10 * time.Minute)},
		{ArticleID: 1, Author: "butter_bridge", Body: "thanks", CreatedAt: base.Add(20 * time.Minute)},
	}
	for i := range comments {
		if err := db.Create(&comments[i]).Error; err != nil {
			t.Fatalf("seed comment: %v", err)
		}
	}
}

func TestListArticles_DefaultOrder_NewestFirst(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	got, err := ListArticles(context.Background(), db, "", "", "")
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("articles not in created_at DESC order: %v before %v",
				got[i-1].CreatedAt, got[i].CreatedAt)
		}
	}
}

func TestListArticles_IncludesCommentCount(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	got, err := ListArticles(context.Background(), db, "", "", "")
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	counts := map[int64]int64{}
	for _, a := range got {
		counts[a.ArticleID] = a.CommentCount
	}
	if counts[1] != 2 {
		t.Fatalf("article 1 comment_count = %d, want 2", counts[1])
	}
	if counts[2] != 0 || counts[3] != 0 {
		t.Fatalf("articles 2/3 comment_count = %d/%d, want 0/0", counts[2], counts[3])
	}
}

func TestListArticles_TopicFilter(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	got, err := ListArticles(context.Background(), db, "coding", "", "")
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 coding articles, got %d", len(got))
	}
	for _, a := range got {
		if a.Topic != "coding" {
			t.Fatalf("unexpected topic %q in filtered result", a.Topic)
		}
	}
}

func TestListArticles_TopicFilter_NoRows_EmptySlice(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	// Repo does not care whether the topic exists; that check belongs to
	// the caller.
	got, err := ListArticles(context.Background(), db, "gardening", "", "")
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestListArticles_SortByVotesAsc(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	got, err := ListArticles(context.Background(), db, "", "votes", "asc")
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Votes < got[i-1].Votes {
			t.Fatalf("articles not in votes ASC order: %d before %d",
				got[i-1].Votes, got[i].Votes)
		}
	}
}

func TestGetArticle_Found(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	a, err := GetArticle(context.Background(), db, 1)
	if err != nil {
		t.Fatalf("GetArticle: %v", err)
	}
	if a.ArticleID != 1 || a.Title != "Go generics" {
		t.Fatalf("unexpected article: %+v", a)
	}
	if a.CommentCount != 2 {
		t.Fatalf("comment_count = %d, want 2", a.CommentCount)
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	a, err := GetArticle(context.Background(), db, 999)
	if a != nil || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got article=%v err=%v", a, err)
	}
}

func TestArticleExists(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	if err := ArticleExists(context.Background(), db, 2); err != nil {
		t.Fatalf("ArticleExists(2): %v", err)
	}
	if err := ArticleExists(context.Background(), db, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ArticleExists(999) = %v, want ErrNotFound", err)
	}
}

func TestIncrementVotes_Accumulates(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	a, err := IncrementVotes(context.Background(), db, 1, 5)
	if err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	if a.Votes != 15 {
		t.Fatalf("votes = %d, want 15", a.Votes)
	}

	// Repeating the update keeps accumulating.
	a, err = IncrementVotes(context.Background(), db, 1, -20)
	if err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	if a.Votes != -5 {
		t.Fatalf("votes = %d, want -5", a.Votes)
	}
	if a.CommentCount != 2 {
		t.Fatalf("refreshed row comment_count = %d, want 2", a.CommentCount)
	}
}

func TestIncrementVotes_NotFound(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	a, err := IncrementVotes(context.Background(), db, 999, 1)
	if a != nil || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got article=%v err=%v", a, err)
	}
}

func TestOrderClause_AllowListAndFallback(t *testing.T) {
	cases := []struct {
		sortBy, order, want string
	}{
		{"", "", "articles.created_at DESC"},
		{"votes", "asc", "articles.votes ASC"},
		{"TITLE", "DESC", "articles.title DESC"},
		{"evil; DROP TABLE articles", "asc", "articles.created_at ASC"},
		{"votes", "sideways", "articles.votes DESC"},
	}
	for _, tc := range cases {
		if got := orderClause(tc.sortBy, tc.order); got != tc.want {
			t.Errorf("orderClause(%q, %q) = %q, want %q", tc.sortBy, tc.order, got, tc.want)
		}
	}
}

func TestValidSortColumnAndOrder(t *testing.T) {
	for _, col := range []string{"article_id", "title", "topic", "author", "created_at", "votes", "VOTES"} {
		if !ValidSortColumn(col) {
			t.Errorf("ValidSortColumn(%q) = false, want true", col)
		}
	}
	if ValidSortColumn("body") || ValidSortColumn("comment_count; --") {
		t.Error("unexpected sort columns accepted")
	}
	if !ValidOrder("asc") || !ValidOrder("DESC") {
		t.Error("asc/DESC should be accepted")
	}
	if ValidOrder("random") {
		t.Error("ValidOrder(random) = true, want false")
	}
}
