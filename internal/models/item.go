package models

import (
	"time"

	"github.com/google/uuid"
)

// Item lifecycle values. The lifecycle is a validated enumerated string with
// no enforced transition graph: any value may replace any other via update.
const (
	LifecycleActive    = "Active"
	LifecycleListed    = "Listed"
	LifecycleSold      = "Sold"
	LifecycleDonated   = "Donated"
	LifecycleDiscarded = "Discarded"
)

// Item is a physical good owned by exactly one profile. Deleting the profile
// cascades; deleting the category cascades; deleting the brand nulls BrandID.
type Item struct {
	ID         uint      `gorm:"primaryKey" json:"item_id"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	CategoryID uint      `gorm:"index;not null" json:"category_id" validate:"required"`
	Category   Category  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	BrandID    *uint     `gorm:"index" json:"brand_id,omitempty"`
	Brand      *Brand    `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Name       string    `gorm:"size:120;not null" json:"item_name" validate:"required"`
	Lifecycle  string    `gorm:"size:20;not null;default:Active" json:"lifecycle" validate:"omitempty,oneof=Active Listed Sold Donated Discarded"`
	SizeLabel  string    `gorm:"size:20" json:"size_label"`
	Material   string    `gorm:"size:60" json:"material"`
	Color      string    `gorm:"size:40" json:"color"`
	SeasonHint string    `gorm:"size:20" json:"season_hint" validate:"omitempty,oneof=Spring Summer Fall Winter All"`
	Condition  string    `gorm:"size:20" json:"condition" validate:"omitempty,oneof=New LikeNew Good Fair Worn"`
	ImageURL   string    `gorm:"type:text" json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// Purchase is the acquisition record for an item, one-to-one. Deleting the
// item cascades.
type Purchase struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ItemID       uint      `gorm:"uniqueIndex;not null" json:"item_id"`
	Item         Item      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SellerType   string    `gorm:"size:20;not null" json:"seller_type" validate:"required,oneof=Retail LocalMarket SecondHand Gift"`
	PriceCents   int       `gorm:"not null" json:"price_cents" validate:"required,gt=0"`
	PurchaseDate time.Time `json:"purchase_date"`
	Location     string    `gorm:"size:80" json:"location"`
}
