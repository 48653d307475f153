package models

import "time"

// AuditLog é o registro local das ações feitas pelo front (não substitui o histórico da API).
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID      uint   `gorm:"index" json:"user_id"`
	ProfileType string `gorm:"size:20" json:"profile_type"`
	Action      string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	RequestID string `gorm:"size:36" json:"request_id"`

	CreatedAt time.Time `json:"created_at"`
}
