package service

// GameState is a snapshot of the session after the latest round.
// Play fields are empty before the first round.
type GameState struct {
	Session   string `json:"session"`
	Round     int    `json:"round"`
	YourPlay  string `json:"yourPlay,omitempty"`
	TheirPlay string `json:"theirPlay,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Summary   string `json:"roundSummary,omitempty"`
	Games     int    `json:"games"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
}
