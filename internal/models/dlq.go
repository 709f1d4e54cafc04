package models

import (
	"time"

	"gorm.io/datatypes"
)

// DLQ parks outbox events the search-sync pipeline could not apply, so
// scholarship and profile writes are never silently dropped from the
// index. The retry worker replays unresolved rows.
type DLQ struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	OutboxID   int64  `gorm:"index"`
	EntityType string // scholarship | student
	EntityID   string
	Op         string
	ErrorMsg   string
	Payload    datatypes.JSON
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	RetriedAt  *time.Time
	Resolved   bool `gorm:"default:false"`
}
