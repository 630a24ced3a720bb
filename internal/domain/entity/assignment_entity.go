package entity

import "time"

// Assignment is a free-form journal entry. AssignmentID is a client-chosen
// grouping key and is not checked against any principal.
type Assignment struct {
	ID           string    `json:"_id"`
	Situation    string    `json:"situation"`
	Tanke        string    `json:"tanke"`
	Kansla       string    `json:"kansla"`
	Kropp        string    `json:"kropp"`
	Lukt         string    `json:"lukt"`
	AssignmentID string    `json:"assignmentId"`
	Complete     bool      `json:"complete"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
