// Package entity defines the domain models for the calendar feature.
package entity

// Event is one user-created calendar entry on a given date.
type Event struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Time  string `json:"time"` // "HH:MM", may be empty
	Note  string `json:"note"`
}
