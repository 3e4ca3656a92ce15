package models

import "time"

// Document is a whole-file snapshot stored in the database, used when
// budgets are persisted to the database instead of the data directory.
type Document struct {
	Name      string    `gorm:"type:varchar(128);primaryKey" json:"name"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}
