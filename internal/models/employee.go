package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID        string    `gorm:"type:varchar(36);primarykey" bson:"_id,omitempty" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" bson:"name" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" bson:"email" json:"email"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

// BeforeCreate assigns a store identifier for SQL backends. The Mongo backend
// assigns ObjectID hex strings itself.
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
