package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking-web/internal/models"
	"github.com/BruksfildServices01/barber-booking-web/internal/timezone"
)

// Ações registradas no log local.
const (
	ActionLogin            = "login"
	ActionLogout           = "logout"
	ActionRegister         = "register"
	ActionProfileUpdated   = "profile_updated"
	ActionRatingSubmitted  = "rating_submitted"
	ActionAppointmentBook  = "appointment_created"
	ActionAppointmentState = "appointment_status_changed"
	ActionServiceCreated   = "service_created"
	ActionServiceUpdated   = "service_updated"
	ActionServiceDeleted   = "service_deleted"
	ActionWorkDayCreated   = "work_day_created"
	ActionWorkDayUpdated   = "work_day_updated"
	ActionWorkDayDeleted   = "work_day_deleted"
	ActionSlotsGenerated   = "slots_generated"
	ActionSlotsDeleted     = "slots_deleted"
	ActionSlotDeleted      = "slot_deleted"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:      ev.UserID,
		ProfileType: ev.ProfileType,
		Action:      ev.Action,
		Entity:      ev.Entity,
		EntityID:    ev.EntityID,
		Metadata:    metaJSON,
		RequestID:   ev.RequestID,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

// Query são os filtros da tela "Atividade" (datas no formato 2006-01-02).
type Query struct {
	Action string
	Entity string
	From   string
	To     string
	Page   int
	Limit  int
}

type Page struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (q *Query) normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
}

// List devolve o histórico do próprio usuário, mais recente primeiro.
func (l *Logger) List(ctx context.Context, userID uint, q Query) (*Page, error) {
	q.normalize()

	tx := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("user_id = ?", userID)

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if q.From != "" {
		if from, _, err := timezone.DayRange(q.From); err == nil {
			tx = tx.Where("created_at >= ?", from)
		}
	}
	if q.To != "" {
		if _, end, err := timezone.DayRange(q.To); err == nil {
			tx = tx.Where("created_at < ?", end)
		}
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	logs := []models.AuditLog{}
	if err := tx.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	return &Page{Page: q.Page, Limit: q.Limit, Total: total, Logs: logs}, nil
}
