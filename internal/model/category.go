package model

// Category labels a transaction. Only the title is part of the feed.
type Category struct {
	Title string `json:"title"`
}
