package models

import (
	"time"

	"github.com/google/uuid"
)

// Listing status values.
const (
	ListingActive    = "Active"
	ListingSold      = "Sold"
	ListingWithdrawn = "Withdrawn"
)

// Listing is an offer to sell an item. It references the item and the seller
// profile without owning them; deleting a listing never deletes the item.
type Listing struct {
	ID             uint       `gorm:"primaryKey" json:"listing_id"`
	ItemID         uint       `gorm:"index;not null" json:"item_id"`
	Item           Item       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SellerID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"seller_id"`
	Seller         Profile    `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"-"`
	Title          string     `gorm:"size:120" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	ListedOn       time.Time  `json:"listed_on"`
	ListPriceCents int        `gorm:"not null" json:"list_price_cents" validate:"required,gt=0"`
	Status         string     `gorm:"size:20;not null;default:Active" json:"status"`
	BuyerID        *uuid.UUID `gorm:"type:uuid;index" json:"buyer_id,omitempty"`
	Buyer          *Profile   `gorm:"foreignKey:BuyerID;constraint:OnDelete:SET NULL" json:"-"`
	ViewCount      int        `gorm:"not null;default:0" json:"view_count"`
}

// Sale is a completed transaction closing a listing. Creation happens inside
// the checkout transaction, which also marks the listing and item sold.
type Sale struct {
	ID             uint      `gorm:"primaryKey" json:"sale_id"`
	ListingID      uint      `gorm:"index;not null" json:"listing_id"`
	Listing        Listing   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	BuyerID        uuid.UUID `gorm:"type:uuid;index;not null" json:"buyer_id"`
	Buyer          Profile   `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"-"`
	SoldOn         time.Time `json:"sold_on"`
	SalePriceCents int       `gorm:"not null" json:"sale_price_cents"`
}
