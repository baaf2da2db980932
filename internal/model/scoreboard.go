package model

// ScoreboardState is the snapshot pushed to every scoreboard connection.
// Totals are server-authoritative; clients only ever send deltas.
type ScoreboardState struct {
	Home     int    `json:"home"`
	Away     int    `json:"away"`
	HomeName string `json:"home_name"`
	AwayName string `json:"away_name"`
}
