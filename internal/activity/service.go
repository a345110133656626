package activity

import (
	"encoding/json"
	"math"
	"time"

	"gorm.io/gorm"
)

type LogService struct {
	DB *gorm.DB
}

// Log records an admin action. Metadata (map/struct) is stored as a JSON
// string when provided.
func (ls *LogService) Log(entry ActivityLog, metadata interface{}) error {
	var metaStr *string

	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			str := string(b)
			metaStr = &str
		}
	}

	newLog := ActivityLog{
		Level:     entry.Level,
		Service:   entry.Service,
		Action:    entry.Action,
		Message:   entry.Message,
		Metadata:  metaStr,
		CreatedAt: time.Now(),
	}

	return ls.DB.Create(&newLog).Error
}

func (ls *LogService) GetLogs(page, pageSize int) ([]ActivityLog, int64, int, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := ls.DB.Model(&ActivityLog{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	var rows []ActivityLog
	err := ls.DB.
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return rows, total, totalPages, nil
}
