// Command simulate_client drives the synchronization controller through a
// scripted session against an in-process fake of the remote resource,
// printing each step. It exercises the same load/select/submit/refetch path
// the TUI uses, without needing a terminal.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/turnlog/internal/api"
	"github.com/tatianab/turnlog/internal/controller"
	"github.com/tatianab/turnlog/internal/models"
	"github.com/tatianab/turnlog/internal/state"
)

type fakeResource struct {
	mu      sync.Mutex
	players []models.Player
	actions map[string][]models.PlayerAction
	nextID  int
}

func (f *fakeResource) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Query().Get("resource") {
	case "players":
		json.NewEncoder(w).Encode(f.players)

	case "actions":
		if r.Method == http.MethodPost {
			var a models.PlayerAction
			if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			f.nextID++
			a.ID = fmt.Sprintf("a%d", f.nextID)
			f.actions[a.PlayerID] = append(f.actions[a.PlayerID], a)
			json.NewEncoder(w).Encode(a)
			return
		}
		id := r.URL.Query().Get("player_id")
		list := f.actions[id]
		if list == nil {
			list = []models.PlayerAction{}
		}
		json.NewEncoder(w).Encode(list)

	default:
		http.Error(w, "unknown resource", http.StatusNotFound)
	}
}

// run executes a command synchronously and hands the message back, the way
// the Bubble Tea runtime would.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func main() {
	resource := &fakeResource{
		players: []models.Player{
			{ID: "p1", Name: "Rogue", HP: 10, Strength: 5, Dexterity: 8, Intelligence: 4, Gold: 20},
			{ID: "p2", Name: "Cleric", HP: 14, Strength: 6, Dexterity: 3, Intelligence: 7, Gold: 12},
		},
		actions: map[string][]models.PlayerAction{},
	}
	srv := httptest.NewServer(resource)
	defer srv.Close()

	store := state.NewStore()
	ctl := controller.New(store, api.NewClient(srv.URL), log.New(os.Stderr, "diag: ", 0))

	fmt.Println("--- Step 1: startup fetch ---")
	msg, ok := run(ctl.LoadPlayers()).(controller.PlayersFetchedMsg)
	if !ok || msg.Err != nil {
		log.Fatalf("player list fetch failed: %v", msg.Err)
	}
	ctl.HandlePlayersFetched(msg)
	fmt.Printf("loaded %d players\n\n", len(store.Players()))

	fmt.Println("--- Step 2: select the first player ---")
	p := store.Players()[0]
	amsg, ok := run(ctl.Select(p.ID)).(controller.ActionsFetchedMsg)
	if !ok {
		log.Fatal("selection did not trigger a log fetch")
	}
	ctl.HandleActionsFetched(amsg)
	fmt.Printf("selected %s, %d actions on record\n\n", p.Name, len(store.Actions()))

	fmt.Println("--- Step 3: log two turns ---")
	for _, text := range []string{"Pick the lock", "Slip into the vault"} {
		cmsg, ok := run(ctl.Submit(p.ID, text)).(controller.ActionCreatedMsg)
		if !ok || cmsg.Err != nil {
			log.Fatalf("submit %q failed: %v", text, cmsg.Err)
		}
		refetch, ok := run(ctl.HandleActionCreated(cmsg)).(controller.ActionsFetchedMsg)
		if !ok {
			log.Fatal("submission did not trigger a log refetch")
		}
		ctl.HandleActionsFetched(refetch)
	}

	fmt.Printf("log for %s:\n", p.Name)
	for _, a := range store.Actions() {
		fmt.Printf("  [%d] %s\n", a.TurnNumber, a.ActionText)
	}

	fmt.Println("\n--- Step 4: clear the selection ---")
	run(ctl.Select(""))
	fmt.Printf("selection cleared, snapshot=%v, %d actions shown\n", store.Selected(), len(store.Actions()))
}
