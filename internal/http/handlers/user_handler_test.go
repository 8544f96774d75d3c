package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/tbourn/go-news-backend/internal/domain"
)

func TestGetUsers_OK(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{}, stubUserSvc{
		list: func(context.Context) ([]domain.User, error) {
			return []domain.User{
				{Username: "butter_bridge", Name: "Jonny", AvatarURL: "https://example.com/a.png"},
			}, nil
		},
	})

	w := doJSON(t, newTestRouter(h), http.MethodGet, "/users", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp UsersResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(resp.Users) != 1 || resp.Users[0].Username != "butter_bridge" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestGetUsers_ServiceError(t *testing.T) {
	h := New(stubTopicSvc{}, stubArticleSvc{}, stubCommentSvc{}, stubUserSvc{
		list: func(context.Context) ([]domain.User, error) {
			return nil, errors.New("db gone")
		},
	})

	w := doJSON(t, newTestRouter(h), http.MethodGet, "/users", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
