package models

// ProgressNote is a single entry in a student's append-only progress log
type ProgressNote struct {
	ID           int    `json:"id"`
	StudentEmail string `json:"studentEmail"`
	Date         string `json:"date"`
	Note         string `json:"note"`
}

// AddProgressNoteRequest is the payload for appending a progress note
type AddProgressNoteRequest struct {
	Note string `json:"note" binding:"required,max=2000"`
}

// ProgressResponse is the response for listing progress notes
type ProgressResponse struct {
	Entries []ProgressNote `json:"entries"`
	Total   int            `json:"total"`
}
