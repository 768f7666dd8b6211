package controller

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Submit validates and sends a new action for the player. An empty player id
// or blank text is a silent no-op: no network call, no state change. The
// turn number is one past the count of actions currently on screen; it is a
// local heuristic, not a server-assigned sequence, so concurrent sessions
// writing to the same player can produce duplicate turn numbers.
func (c *Controller) Submit(playerID, text string) tea.Cmd {
	if playerID == "" || strings.TrimSpace(text) == "" {
		return nil
	}

	turn := len(c.store.Actions()) + 1
	return func() tea.Msg {
		created, err := c.client.CreateAction(context.Background(), playerID, text, turn)
		return ActionCreatedMsg{PlayerID: playerID, Created: created, Err: err}
	}
}

// HandleActionCreated finishes a submission. Success clears the draft and
// re-fetches the log so the screen shows the server's order and the identity
// it assigned; there is no optimistic insert. Failure keeps the draft so the
// user can resubmit, and the caller surfaces msg.Err as a blocking notice.
func (c *Controller) HandleActionCreated(msg ActionCreatedMsg) tea.Cmd {
	if msg.Err != nil {
		c.diag.Printf("create action for player %s failed: %v", msg.PlayerID, msg.Err)
		return nil
	}
	c.store.ClearDraft()
	return c.fetchActions(msg.PlayerID)
}
