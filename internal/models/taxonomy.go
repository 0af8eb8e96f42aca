package models

// Category is a required classification tag on items.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:60;uniqueIndex;not null" json:"name" validate:"required"`
}

// Brand is an optional classification tag on items. Deleting a brand nulls
// item references rather than deleting the items.
type Brand struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:80;uniqueIndex;not null" json:"name" validate:"required"`
}
