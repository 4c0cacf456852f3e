package model

import "time"

// Case is a named set of DATC orders in standard notation, stored together
// with its converted EDN orders map.
type Case struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Notation   string    `json:"notation"`
	EDN        string    `json:"edn"`
	OrderCount int       `json:"order_count"`
	CreatedAt  time.Time `json:"created_at"`
}
