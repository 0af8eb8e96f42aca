package types

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Password2 string `json:"password2" validate:"required"`
	FullName  string `json:"full_name"`
	City      string `json:"city"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdateProfileRequest struct {
	FullName    *string                `json:"full_name"`
	City        *string                `json:"city"`
	Preferences map[string]interface{} `json:"preferences"`
}

type CreateItemRequest struct {
	ItemName   string `json:"item_name" validate:"required"`
	CategoryID uint   `json:"category_id" validate:"required"`
	BrandID    *uint  `json:"brand_id"`
	Lifecycle  string `json:"lifecycle" validate:"omitempty,oneof=Active Listed Sold Donated Discarded"`
	SizeLabel  string `json:"size_label"`
	Material   string `json:"material"`
	Color      string `json:"color"`
	SeasonHint string `json:"season_hint" validate:"omitempty,oneof=Spring Summer Fall Winter All"`
	Condition  string `json:"condition" validate:"omitempty,oneof=New LikeNew Good Fair Worn"`
	ImageURL   string `json:"image_url"`
}

type UpdateItemRequest struct {
	ItemName   *string `json:"item_name"`
	CategoryID *uint   `json:"category_id"`
	BrandID    *uint   `json:"brand_id"`
	Lifecycle  *string `json:"lifecycle" validate:"omitempty,oneof=Active Listed Sold Donated Discarded"`
	SizeLabel  *string `json:"size_label"`
	Material   *string `json:"material"`
	Color      *string `json:"color"`
	SeasonHint *string `json:"season_hint" validate:"omitempty,oneof=Spring Summer Fall Winter All"`
	Condition  *string `json:"condition" validate:"omitempty,oneof=New LikeNew Good Fair Worn"`
	ImageURL   *string `json:"image_url"`
}

type AttachPurchaseRequest struct {
	SellerType string `json:"seller_type" validate:"required,oneof=Retail LocalMarket SecondHand Gift"`
	PriceCents int    `json:"price_cents" validate:"required,gt=0"`
	Location   string `json:"location"`
}

type CreateListingRequest struct {
	ItemID         uint   `json:"item_id" validate:"required"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ListPriceCents int    `json:"list_price_cents" validate:"required,gt=0"`
}

type CreateTaxonomyRequest struct {
	Name string `json:"name" validate:"required"`
}
