package models

import "time"

// HitCounterEvent is one visit to the hit counter. Rows are append-only.
type HitCounterEvent struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Datetime   time.Time `gorm:"column:datetime;not null" json:"datetime"`
	ClientInfo string    `gorm:"column:client_info;type:text" json:"client_info"`
}

func (HitCounterEvent) TableName() string {
	return "table_counter"
}
