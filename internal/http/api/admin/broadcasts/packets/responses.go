package packets

// BroadcastResponse mirrors the platform record but splits the scheduled
// start into calendar date and clock time for display.
type BroadcastResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Status      string `json:"status,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}
