package model

import "time"

// Link is a stored short link. The prompt is immutable once created; only
// Clicks changes, and only through the increment operation.
type Link struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateLinkRequest struct {
	Prompt string `json:"prompt"`
}

type CreateLinkResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	Mode     string `json:"mode"`
	ShareURL string `json:"share_url,omitempty"`
}

type GetLinkResponse struct {
	Success   bool      `json:"success"`
	Prompt    string    `json:"prompt"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
}

type ListLinksResponse struct {
	Success bool   `json:"success"`
	Links   []Link `json:"links"`
}

type IncrementRequest struct {
	ID string `json:"id"`
}

type DeleteRequest struct {
	ID string `json:"id"`
}
