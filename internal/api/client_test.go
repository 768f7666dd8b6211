package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tatianab/turnlog/internal/models"
)

func TestListPlayers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("resource"); got != "players" {
			t.Errorf("resource param = %q, want players", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"p1","name":"Rogue","hp":10,"strength":5,"dexterity":8,"intelligence":4,"gold":20}]`))
	}))
	defer srv.Close()

	players, err := NewClient(srv.URL).ListPlayers(context.Background())
	if err != nil {
		t.Fatalf("ListPlayers: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("got %d players, want 1", len(players))
	}
	want := models.Player{ID: "p1", Name: "Rogue", HP: 10, Strength: 5, Dexterity: 8, Intelligence: 4, Gold: 20}
	if players[0] != want {
		t.Errorf("player = %+v, want %+v", players[0], want)
	}
}

func TestListActionsScopedToPlayer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("resource"); got != "actions" {
			t.Errorf("resource param = %q, want actions", got)
		}
		if got := r.URL.Query().Get("player_id"); got != "p1" {
			t.Errorf("player_id param = %q, want p1", got)
		}
		w.Write([]byte(`[{"id":"a1","player_id":"p1","action_text":"Pick the lock","turn_number":1,"created_at":"2026-08-26T10:00:00Z"}]`))
	}))
	defer srv.Close()

	actions, err := NewClient(srv.URL).ListActions(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ListActions: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(actions))
	}
	if actions[0].ActionText != "Pick the lock" || actions[0].TurnNumber != 1 {
		t.Errorf("action = %+v", actions[0])
	}
	if actions[0].CreatedAt == "" {
		t.Error("created_at not carried through")
	}
}

func TestNonArrayResponseCoercedToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"not what you expected"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	players, err := c.ListPlayers(context.Background())
	if err != nil {
		t.Fatalf("ListPlayers on malformed body: %v", err)
	}
	if players == nil || len(players) != 0 {
		t.Errorf("players = %v, want empty non-nil slice", players)
	}

	actions, err := c.ListActions(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ListActions on malformed body: %v", err)
	}
	if actions == nil || len(actions) != 0 {
		t.Errorf("actions = %v, want empty non-nil slice", actions)
	}
}

func TestNonSuccessStatusIsRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListPlayers(context.Background())
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if reqErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", reqErr.Status)
	}
	if reqErr.Error() == "" {
		t.Error("RequestError has no message")
	}
}

func TestTransportFailureIsRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := NewClient(srv.URL).ListActions(context.Background(), "p1")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if reqErr.Unwrap() == nil {
		t.Error("transport failure should carry the underlying error")
	}
}

func TestCreateActionPostsJSONBody(t *testing.T) {
	var gotBody map[string]any
	var gotMethod, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		if got := r.URL.Query().Get("resource"); got != "actions" {
			t.Errorf("resource param = %q, want actions", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"id":"a9","player_id":"p1","action_text":"Pick the lock","turn_number":1}`))
	}))
	defer srv.Close()

	created, err := NewClient(srv.URL).CreateAction(context.Background(), "p1", "Pick the lock", 1)
	if err != nil {
		t.Fatalf("CreateAction: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("content-type = %q", gotContentType)
	}
	if gotBody["player_id"] != "p1" || gotBody["action_text"] != "Pick the lock" || gotBody["turn_number"] != float64(1) {
		t.Errorf("body = %v", gotBody)
	}
	if _, present := gotBody["id"]; present {
		t.Error("client must not send an id; the server assigns it")
	}
	if created.ID != "a9" {
		t.Errorf("created.ID = %q, want the server-assigned a9", created.ID)
	}
}

func TestCreateActionFailureKeepsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).CreateAction(context.Background(), "p1", "Pick the lock", 1)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if reqErr.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", reqErr.Status)
	}
}
