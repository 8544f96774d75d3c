package repo

import (
	"context"
	"errors"
	"testing"
)

func TestListTopics_OrderedBySlug(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	got, err := ListTopics(context.Background(), db)
	if err != nil {
		t.Fatalf("ListTopics: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(got))
	}
	if got[0].Slug != "coding" || got[1].Slug != "cooking" {
		t.Fatalf("topics not ordered by slug: %q, %q", got[0].Slug, got[1].Slug)
	}
}

func TestListTopics_EmptyTable(t *testing.T) {
	db := newNewsDB(t)

	got, err := ListTopics(context.Background(), db)
	if err != nil {
		t.Fatalf("ListTopics: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestTopicExists(t *testing.T) {
	db := newNewsDB(t)
	seedContent(t, db)

	if err := TopicExists(context.Background(), db, "coding"); err != nil {
		t.Fatalf("TopicExists(coding): %v", err)
	}
	if err := TopicExists(context.Background(), db, "gardening"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("TopicExists(gardening) = %v, want ErrNotFound", err)
	}
}
