// Package state holds the in-memory application state shared between the
// controller and the presentation layer.
package state

import "github.com/tatianab/turnlog/internal/models"

// Store is the single application state instance. It performs no I/O, and
// every mutation happens on the update goroutine, so no locking is needed.
// It is an explicit object rather than package-level state so tests can run
// independent instances side by side.
type Store struct {
	players        []models.Player
	selectedID     string
	selected       *models.Player
	actions        []models.PlayerAction
	draft          string
	loadingPlayers bool
	lastError      string
}

func NewStore() *Store {
	return &Store{
		players: []models.Player{},
		actions: []models.PlayerAction{},
	}
}

// Players returns the last fetched player list, in server order.
func (s *Store) Players() []models.Player { return s.players }

// SetPlayers replaces the player list wholesale and re-derives the selected
// snapshot against the new list. Nil is coerced to an empty list so a
// malformed fetch result never reaches the UI.
func (s *Store) SetPlayers(players []models.Player) {
	if players == nil {
		players = []models.Player{}
	}
	s.players = players
	s.deriveSelected()
}

// SelectedID returns the current selection; empty means no selection.
func (s *Store) SelectedID() string { return s.selectedID }

// Select records a new selection and re-derives the snapshot. Clearing or
// refetching the action log is the controller's job, not the store's.
func (s *Store) Select(id string) {
	s.selectedID = id
	s.deriveSelected()
}

// Selected returns the snapshot of the selected player, or nil when there is
// no selection or the id is not in the list. The snapshot is always derived
// from the list, never fetched on its own, so it lags the remote resource
// until the list is refreshed.
func (s *Store) Selected() *models.Player { return s.selected }

func (s *Store) deriveSelected() {
	s.selected = nil
	if s.selectedID == "" {
		return
	}
	for i := range s.players {
		if s.players[i].ID == s.selectedID {
			p := s.players[i]
			s.selected = &p
			return
		}
	}
}

// Actions returns the turn log for the selected player, in server order.
func (s *Store) Actions() []models.PlayerAction { return s.actions }

// SetActions replaces the action log wholesale, coercing nil to empty.
func (s *Store) SetActions(actions []models.PlayerAction) {
	if actions == nil {
		actions = []models.PlayerAction{}
	}
	s.actions = actions
}

func (s *Store) ClearActions() { s.actions = []models.PlayerAction{} }

// Draft is the pending, not yet submitted action text.
func (s *Store) Draft() string        { return s.draft }
func (s *Store) SetDraft(text string) { s.draft = text }
func (s *Store) ClearDraft()          { s.draft = "" }

// LoadingPlayers reports whether a player list fetch is in flight.
func (s *Store) LoadingPlayers() bool     { return s.loadingPlayers }
func (s *Store) SetLoadingPlayers(v bool) { s.loadingPlayers = v }

// Err is the persistent user-visible error message, set when the player list
// fetch fails. Background refresh failures never land here.
func (s *Store) Err() string       { return s.lastError }
func (s *Store) SetErr(msg string) { s.lastError = msg }
