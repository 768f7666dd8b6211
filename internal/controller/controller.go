// Package controller owns the synchronization rules: when data is fetched,
// how selection drives dependent fetches, and how results are folded back
// into the store after a write. Methods run on the Bubble Tea update
// goroutine; the commands they return run off it and report back as typed
// messages, so nothing here needs a lock.
package controller

import (
	"context"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/turnlog/internal/api"
	"github.com/tatianab/turnlog/internal/models"
	"github.com/tatianab/turnlog/internal/state"
)

// PlayersFetchedMsg carries the result of a player list fetch.
type PlayersFetchedMsg struct {
	Players []models.Player
	Err     error
}

// ActionsFetchedMsg carries the result of an action log fetch. Token records
// which fetch this was so results from a superseded selection can be
// dropped instead of overwriting newer state.
type ActionsFetchedMsg struct {
	PlayerID string
	Token    int
	Actions  []models.PlayerAction
	Err      error
}

// ActionCreatedMsg carries the result of submitting a new action.
type ActionCreatedMsg struct {
	PlayerID string
	Created  models.PlayerAction
	Err      error
}

type Controller struct {
	store  *state.Store
	client *api.Client
	diag   *log.Logger

	// actionsToken is bumped each time a log fetch is issued and each time
	// the log is cleared. In-flight fetches carry the token they were issued
	// with; only the latest one is allowed to touch the store.
	actionsToken int
}

// New builds a controller around the shared store and the remote resource
// client. diag receives background failures that must not surface in the UI;
// nil discards them.
func New(store *state.Store, client *api.Client, diag *log.Logger) *Controller {
	if diag == nil {
		diag = log.New(io.Discard, "", 0)
	}
	return &Controller{store: store, client: client, diag: diag}
}

// LoadPlayers starts a player list fetch. It runs once unconditionally at
// startup and again whenever the user asks for a refresh; it never retries
// on its own.
func (c *Controller) LoadPlayers() tea.Cmd {
	c.store.SetLoadingPlayers(true)
	return func() tea.Msg {
		players, err := c.client.ListPlayers(context.Background())
		return PlayersFetchedMsg{Players: players, Err: err}
	}
}

// HandlePlayersFetched folds a player list result into the store. The
// loading flag drops regardless of outcome. A failure leaves the list empty
// and records the persistent error message. On success, if a selection is
// active, the selection trigger re-runs so the snapshot and log track the
// refreshed list without the user reselecting.
func (c *Controller) HandlePlayersFetched(msg PlayersFetchedMsg) tea.Cmd {
	c.store.SetLoadingPlayers(false)
	if msg.Err != nil {
		c.store.SetErr("could not load players: " + msg.Err.Error())
		c.store.SetPlayers(nil)
		return nil
	}

	c.store.SetErr("")
	c.store.SetPlayers(msg.Players)
	if id := c.store.SelectedID(); id != "" {
		return c.Select(id)
	}
	return nil
}

// Select applies a selection change. An empty id clears the snapshot and the
// log immediately and issues no fetch. A non-empty id derives the snapshot
// from the current list and fetches that player's log; the previous log
// stays on screen until the fetch resolves, at which point it is replaced
// wholesale.
func (c *Controller) Select(id string) tea.Cmd {
	c.store.Select(id)
	if id == "" {
		// Invalidate any fetch still in flight for the old selection.
		c.actionsToken++
		c.store.ClearActions()
		return nil
	}
	return c.fetchActions(id)
}

func (c *Controller) fetchActions(playerID string) tea.Cmd {
	c.actionsToken++
	token := c.actionsToken
	return func() tea.Msg {
		actions, err := c.client.ListActions(context.Background(), playerID)
		return ActionsFetchedMsg{PlayerID: playerID, Token: token, Actions: actions, Err: err}
	}
}

// HandleActionsFetched replaces the log with a fetched result. A stale
// result (the user moved on before it resolved) is dropped, and a failed
// refresh keeps the current log on screen; both go to the diagnostic log
// only, never to the user.
func (c *Controller) HandleActionsFetched(msg ActionsFetchedMsg) {
	if msg.Token != c.actionsToken {
		c.diag.Printf("dropping stale action log for player %s (token %d, latest %d)",
			msg.PlayerID, msg.Token, c.actionsToken)
		return
	}
	if msg.Err != nil {
		c.diag.Printf("action log fetch for player %s failed: %v", msg.PlayerID, msg.Err)
		return
	}
	c.store.SetActions(msg.Actions)
}

// ExportTranscript writes the selected player and the visible log to the
// export directory and returns the path written. With no selection it does
// nothing; a write failure goes to the diagnostic log.
func (c *Controller) ExportTranscript() string {
	p := c.store.Selected()
	if p == nil {
		return ""
	}

	t := models.Transcript{
		SavedAt: time.Now(),
		Player:  *p,
		Actions: c.store.Actions(),
	}
	path, err := t.Save()
	if err != nil {
		c.diag.Printf("transcript export for player %s failed: %v", p.ID, err)
		return ""
	}
	return path
}
