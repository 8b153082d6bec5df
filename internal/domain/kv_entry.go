package domain

import "time"

// KVEntry is one key/value row of the SQL-backed record store.
type KVEntry struct {
	Key       string    `gorm:"column:record_key;type:text;primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for KVEntry.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (KVEntry) TableName() string {
	return "kv_entries"
}
