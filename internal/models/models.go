package models

// Player is a character with identity, name, and combat/economy attributes.
// Players come from the remote resource and are display-only: the client
// never mutates one, only shows it.
type Player struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	HP           int    `json:"hp" yaml:"hp"`
	Strength     int    `json:"strength" yaml:"strength"`
	Dexterity    int    `json:"dexterity" yaml:"dexterity"`
	Intelligence int    `json:"intelligence" yaml:"intelligence"`
	Gold         int    `json:"gold" yaml:"gold"`
}

// PlayerAction is one logged turn tied to a player. ID and CreatedAt are
// assigned by the remote resource and are absent until the action has been
// persisted; CreatedAt is an opaque display-only string.
type PlayerAction struct {
	ID         string `json:"id,omitempty" yaml:"id,omitempty"`
	PlayerID   string `json:"player_id" yaml:"player_id"`
	ActionText string `json:"action_text" yaml:"action_text"`
	TurnNumber int    `json:"turn_number" yaml:"turn_number"`
	CreatedAt  string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}
