// Package api talks to the remote resource hosting players and their turn
// logs. Every call is a single best-effort round trip: no retries, no
// timeout, no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tatianab/turnlog/internal/models"
)

// RequestError is a failed round trip: a transport error, or a response with
// a non-success HTTP status.
type RequestError struct {
	Op     string
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: server returned status %d", e.Op, e.Status)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client issues requests against a single base URL. The resource kind is
// carried in a query parameter rather than the path.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{}}
}

// ListPlayers fetches all known players. A response body that is not a JSON
// array comes back as an empty list rather than an error, so an unexpected
// payload shape never takes the UI down.
func (c *Client) ListPlayers(ctx context.Context) ([]models.Player, error) {
	body, err := c.get(ctx, "list players", url.Values{"resource": {"players"}})
	if err != nil {
		return nil, err
	}

	var players []models.Player
	if err := json.Unmarshal(body, &players); err != nil || players == nil {
		return []models.Player{}, nil
	}
	return players, nil
}

// ListActions fetches the turn log for one player, in server order.
func (c *Client) ListActions(ctx context.Context, playerID string) ([]models.PlayerAction, error) {
	query := url.Values{"resource": {"actions"}, "player_id": {playerID}}
	body, err := c.get(ctx, "list actions", query)
	if err != nil {
		return nil, err
	}

	var actions []models.PlayerAction
	if err := json.Unmarshal(body, &actions); err != nil || actions == nil {
		return []models.PlayerAction{}, nil
	}
	return actions, nil
}

// CreateAction appends a new action to a player's log. The returned entry
// carries whatever identity the server assigned; callers re-fetch the log
// afterwards, so a malformed response body is not treated as a failure.
func (c *Client) CreateAction(ctx context.Context, playerID, text string, turnNumber int) (models.PlayerAction, error) {
	action := models.PlayerAction{
		PlayerID:   playerID,
		ActionText: text,
		TurnNumber: turnNumber,
	}

	payload, err := json.Marshal(action)
	if err != nil {
		return models.PlayerAction{}, &RequestError{Op: "create action", Err: err}
	}

	u := c.baseURL + "?" + url.Values{"resource": {"actions"}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return models.PlayerAction{}, &RequestError{Op: "create action", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.PlayerAction{}, &RequestError{Op: "create action", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.PlayerAction{}, &RequestError{Op: "create action", Status: resp.StatusCode}
	}

	var created models.PlayerAction
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return action, nil
	}
	return created, nil
}

func (c *Client) get(ctx context.Context, op string, query url.Values) ([]byte, error) {
	u := c.baseURL + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &RequestError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Op: op, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Op: op, Err: err}
	}
	return body, nil
}
