package entity

const (
	OutcomeOngoing  = "ongoing"
	OutcomeBoxedIn  = "boxed_in"
	OutcomeFinished = "finished"
)

// TurnRecord is one decision taken during a match.
type TurnRecord struct {
	Turn      int    `json:"turn"`
	Direction string `json:"direction"`
}

// Match is the recorded trace of one game session.
type Match struct {
	ID           string       `json:"id"`
	PlayerName   string       `json:"player_name"`
	OpponentName string       `json:"opponent_name,omitempty"`
	Turns        []TurnRecord `json:"turns,omitempty"`
	Outcome      string       `json:"outcome"`
}
