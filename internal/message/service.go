package message

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type MessageService struct {
	DB *gorm.DB
}

func (s *MessageService) GetAllMessages() ([]Message, error) {
	messages := []Message{}
	result := s.DB.Order("created_at DESC").Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}
	return messages, nil
}

// CreateMessage stores a contact-form submission from the public site.
func (s *MessageService) CreateMessage(input CreateMessageInput) (*Message, error) {
	msg := Message{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := s.DB.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// UpdateFlags flips read/archived; a nil pointer leaves the flag untouched.
func (s *MessageService) UpdateFlags(id uint, input UpdateFlagsInput) (*Message, error) {
	var msg Message
	if err := s.DB.First(&msg, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Read != nil {
		updates["read"] = *input.Read
	}
	if input.Archived != nil {
		updates["archived"] = *input.Archived
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&msg).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &msg, nil
}

func (s *MessageService) DeleteMessage(id uint) error {
	var msg Message
	if err := s.DB.First(&msg, id).Error; err != nil {
		return err
	}
	return s.DB.Delete(&msg).Error
}

// ExportXLSX renders the whole inbox as a spreadsheet, newest first.
func (s *MessageService) ExportXLSX() (string, []byte, error) {
	messages, err := s.GetAllMessages()
	if err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})

	sheet := f.GetSheetName(0)

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return "", nil, err
	}

	header := []interface{}{
		excelize.Cell{Value: "name", StyleID: headerStyle},
		excelize.Cell{Value: "email", StyleID: headerStyle},
		excelize.Cell{Value: "phone", StyleID: headerStyle},
		excelize.Cell{Value: "subject", StyleID: headerStyle},
		excelize.Cell{Value: "message", StyleID: headerStyle},
		excelize.Cell{Value: "read", StyleID: headerStyle},
		excelize.Cell{Value: "archived", StyleID: headerStyle},
		excelize.Cell{Value: "received_at", StyleID: headerStyle},
	}
	_ = sw.SetRow("A1", header)

	rowNum := 2
	for _, m := range messages {
		values := []interface{}{
			m.Name,
			m.Email,
			m.Phone,
			m.Subject,
			m.Message,
			m.Read,
			m.Archived,
			m.CreatedAt.Format(time.RFC3339),
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		_ = sw.SetRow(cell, values)
		rowNum++
	}

	if err := sw.Flush(); err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("pesan_%s.xlsx", time.Now().Format("20060102_150405"))
	return filename, buf.Bytes(), nil
}
