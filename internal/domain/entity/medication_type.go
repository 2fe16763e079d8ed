package entity

import "time"

type MedicationType struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Category     string    `gorm:"type:varchar(50)" json:"category,omitempty"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	CommonDosage string    `gorm:"type:varchar(100)" json:"common_dosage,omitempty"`
	SideEffects  string    `gorm:"type:text" json:"side_effects,omitempty"`
	Precautions  string    `gorm:"type:text" json:"precautions,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MedicationType) TableName() string {
	return "medication_types"
}
