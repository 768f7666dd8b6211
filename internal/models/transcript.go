package models

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

var ExportDir = ".transcripts"

// Transcript is an on-demand snapshot of one player's visible turn log,
// written when the user asks for an export. It is not a cache: the client
// never reads one back to serve the UI.
type Transcript struct {
	SavedAt time.Time      `yaml:"saved_at"`
	Player  Player         `yaml:"player"`
	Actions []PlayerAction `yaml:"actions"`
}

// Save writes the transcript under ExportDir, one file per player, and
// returns the path it wrote.
func (t *Transcript) Save() (string, error) {
	if err := os.MkdirAll(ExportDir, 0755); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(t)
	if err != nil {
		return "", err
	}

	name := t.Player.ID
	if name == "" {
		name = "unknown"
	}
	path := filepath.Join(ExportDir, name+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// LoadTranscript reads a previously exported transcript.
func LoadTranscript(playerID string) (*Transcript, error) {
	data, err := os.ReadFile(filepath.Join(ExportDir, playerID+".yaml"))
	if err != nil {
		return nil, err
	}

	var t Transcript
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTranscripts returns the player ids that have an exported transcript.
func ListTranscripts() ([]string, error) {
	if _, err := os.Stat(ExportDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(ExportDir)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".yaml" {
			ids = append(ids, name[:len(name)-len(".yaml")])
		}
	}
	return ids, nil
}
