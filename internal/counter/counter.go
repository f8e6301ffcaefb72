package counter

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"glossary/internal/models"
)

// TimeLayout is how visit timestamps are rendered.
const TimeLayout = "2006-01-02 15:04:05"

type Counter struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *Counter {
	return &Counter{db: db, now: time.Now}
}

// Visit records one event and returns the number of events recorded so far,
// counted inside the same transaction as the insert.
func (c *Counter) Visit(ctx context.Context, clientInfo string) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event := models.HitCounterEvent{Datetime: c.now(), ClientInfo: clientInfo}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		return tx.Model(&models.HitCounterEvent{}).Count(&count).Error
	})
	if err != nil {
		return 0, fmt.Errorf("record visit: %w", err)
	}
	return count, nil
}

func (c *Counter) List(ctx context.Context) ([]models.HitCounterEvent, error) {
	events := []models.HitCounterEvent{}
	if err := c.db.WithContext(ctx).Order("id asc").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	return events, nil
}
