package packets

// BroadcastRequest carries the operator's wall-clock triple for both create
// and update. The year is implicit (current UTC year); the time is a 24-hour
// HH:MM string.
type BroadcastRequest struct {
	Title       string `json:"title" binding:"required"`
	Month       int    `json:"month" binding:"required"`
	Day         int    `json:"day" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Description string `json:"description"`
}
