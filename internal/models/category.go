package models

type Category struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Questions []Question `gorm:"foreignKey:CategoryID" json:"questions,omitempty"`
}
