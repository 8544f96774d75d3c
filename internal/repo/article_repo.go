// Package repo implements the data persistence layer for the news content
// model, backed by GORM. This file provides repository functions for the
// Article model, including the dynamic listing query.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When an article is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Listing query shape:
//
// Sort column and direction can never be bound as ordinary SQL parameters,
// so the ORDER BY clause is assembled exclusively from the sortColumns and
// orderDirections allow-lists below. Values that are not in the allow-lists
// must be rejected by the caller before they reach this package (see
// services.ArticleService); as defense in depth, unknown values fall back
// to the default ordering rather than being interpolated.
//
// Every article read path selects comment_count through the same correlated
// subquery, so filtered and unfiltered listings, single-article fetches, and
// post-update reads all return the same row shape.
package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// commentCountExpr computes the derived comment_count attribute. It is a
// correlated subquery rather than a stored column, so it can never drift
// out of sync with the comments table.
const commentCountExpr = "(SELECT COUNT(*) FROM comments WHERE comments.article_id = articles.article_id)"

// articleColumns is the projection shared by every article read path.
const articleColumns = "articles.*, " + commentCountExpr + " AS comment_count"

// sortColumns is the allow-list of client-selectable sort keys, mapped to
// the SQL identifiers they order by.
var sortColumns = map[string]string{
	"article_id": "articles.article_id",
	"title":      "articles.title",
	"topic":      "articles.topic",
	"author":     "articles.author",
	"created_at": "articles.created_at",
	"votes":      "articles.votes",
}

// orderDirections is the allow-list of accepted order tokens.
var orderDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// DefaultSort and DefaultOrder are applied when the client supplies no
// sort_by / order parameters: newest articles first.
const (
	DefaultSort  = "created_at"
	DefaultOrder = "desc"
)

// ValidSortColumn reports whether col is in the sort allow-list.
func ValidSortColumn(col string) bool {
	_, ok := sortColumns[strings.ToLower(col)]
	return ok
}

// ValidOrder reports whether dir is an accepted order token.
func ValidOrder(dir string) bool {
	_, ok := orderDirections[strings.ToLower(dir)]
	return ok
}

// orderClause builds the ORDER BY expression from allow-listed values only.
// Unknown inputs fall back to the default ordering; they are never
// interpolated into the query text.
func orderClause(sortBy, order string) string {
	col, ok := sortColumns[strings.ToLower(sortBy)]
	if !ok {
		col = sortColumns[DefaultSort]
	}
	dir, ok := orderDirections[strings.ToLower(order)]
	if !ok {
		dir = orderDirections[DefaultOrder]
	}
	return col + " " + dir
}

// ListArticles returns articles with their comment counts, optionally
// filtered by exact topic slug and ordered by an allow-listed column and
// direction. It returns an empty slice when no rows match. The caller is
// responsible for deciding whether an empty result for a topic filter means
// "no articles yet" or "no such topic" (see TopicExists).
func ListArticles(ctx context.Context, db *gorm.DB, topic, sortBy, order string) ([]domain.Article, error) {
	out := []domain.Article{}
	q := db.WithContext(ctx).
		Model(&domain.Article{}).
		Select(articleColumns)
	if topic != "" {
		q = q.Where("articles.topic = ?", topic)
	}
	err := q.Order(orderClause(sortBy, order)).Find(&out).Error
	return out, err
}

// GetArticle fetches a single article by id, including its comment count.
// If the record does not exist, it returns ErrNotFound.
func GetArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error) {
	var a domain.Article
	err := db.WithContext(ctx).
		Model(&domain.Article{}).
		Select(articleColumns).
		Where("articles.article_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ArticleExists reports whether an article row exists for id. It returns
// ErrNotFound when absent, so callers can use it as a 404 guard before
// dependent reads and writes.
func ArticleExists(ctx context.Context, db *gorm.DB, id int64) error {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementVotes applies votes = votes + delta as a single store-side update
// so concurrent increments on the same article cannot lose updates, then
// returns the refreshed row. Delta may be negative. If the article does not
// exist, it returns ErrNotFound.
func IncrementVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Article, error) {
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetArticle(ctx, db, id)
}
