package models

import "time"

// FeedbackEntry is one consumer feedback record. ProductKey is a weak
// reference: entries may point at keys that never existed in the store.
type FeedbackEntry struct {
	ID         string    `json:"id"`
	ProductKey string    `json:"product_key"`
	Name       string    `json:"name"`
	Comment    string    `json:"comment"`
	Timestamp  time.Time `json:"timestamp"`
}
