package models

// Note is a persisted free-form note. Desc may be empty.
type Note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}
