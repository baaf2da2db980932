package packets

type ScoreUpdateRequest struct {
	Team   string `json:"team" binding:"required"`
	Points int    `json:"points"`
}

type TeamNamesRequest struct {
	HomeName string `json:"home_name" binding:"required"`
	AwayName string `json:"away_name" binding:"required"`
}
