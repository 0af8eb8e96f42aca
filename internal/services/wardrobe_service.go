package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rewear-app/backend/internal/models"
	"github.com/rewear-app/backend/internal/repository"
	appErr "github.com/rewear-app/backend/pkg/errors"
	"github.com/rewear-app/backend/pkg/logger"
	"go.uber.org/zap"
)

type CreateItemInput struct {
	Name       string
	CategoryID uint
	BrandID    *uint
	Lifecycle  string
	SizeLabel  string
	Material   string
	Color      string
	SeasonHint string
	Condition  string
	ImageURL   string
}

// UpdateItemInput is a partial update; nil fields are left untouched. The
// owning profile is never updatable.
type UpdateItemInput struct {
	Name       *string
	CategoryID *uint
	BrandID    *uint
	Lifecycle  *string
	SizeLabel  *string
	Material   *string
	Color      *string
	SeasonHint *string
	Condition  *string
	ImageURL   *string
}

type AttachPurchaseInput struct {
	SellerType string
	PriceCents int
	Location   string
}

// WardrobeService manages the caller's item catalog. Every operation is
// scoped to the owning profile; other profiles' items are invisible.
type WardrobeService interface {
	CreateItem(ctx context.Context, userID uuid.UUID, input *CreateItemInput) (*models.Item, error)
	GetItem(ctx context.Context, itemID uint, userID uuid.UUID) (*models.Item, error)
	ListItems(ctx context.Context, userID uuid.UUID, filters *repository.ItemFilters) ([]models.Item, error)
	UpdateItem(ctx context.Context, itemID uint, userID uuid.UUID, updates *UpdateItemInput) (*models.Item, error)
	DeleteItem(ctx context.Context, itemID uint, userID uuid.UUID) error
	AttachPurchase(ctx context.Context, itemID uint, userID uuid.UUID, input *AttachPurchaseInput) (*models.Purchase, error)
	GetPurchase(ctx context.Context, itemID uint, userID uuid.UUID) (*models.Purchase, error)
}

type wardrobeService struct {
	itemRepo repository.ItemRepository
}

func NewWardrobeService(itemRepo repository.ItemRepository) WardrobeService {
	return &wardrobeService{itemRepo: itemRepo}
}

var _ WardrobeService = (*wardrobeService)(nil)

func (s *wardrobeService) CreateItem(ctx context.Context, userID uuid.UUID, input *CreateItemInput) (*models.Item, error) {
	lifecycle := input.Lifecycle
	if lifecycle == "" {
		lifecycle = models.LifecycleActive
	}
	item := &models.Item{
		UserID:     userID,
		CategoryID: input.CategoryID,
		BrandID:    input.BrandID,
		Name:       input.Name,
		Lifecycle:  lifecycle,
		SizeLabel:  input.SizeLabel,
		Material:   input.Material,
		Color:      input.Color,
		SeasonHint: input.SeasonHint,
		Condition:  input.Condition,
		ImageURL:   input.ImageURL,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	logger.L().Info("item created", zap.Uint("item_id", item.ID), zap.String("user_id", userID.String()))
	return item, nil
}

func (s *wardrobeService) GetItem(ctx context.Context, itemID uint, userID uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := s.itemRepo.GetOwned(ctx, itemID, userID, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *wardrobeService) ListItems(ctx context.Context, userID uuid.UUID, filters *repository.ItemFilters) ([]models.Item, error) {
	return s.itemRepo.ListByUser(ctx, userID, filters)
}

func (s *wardrobeService) UpdateItem(ctx context.Context, itemID uint, userID uuid.UUID, updates *UpdateItemInput) (*models.Item, error) {
	var item models.Item
	if err := s.itemRepo.GetOwned(ctx, itemID, userID, &item); err != nil {
		return nil, err
	}

	if updates.Name != nil {
		item.Name = *updates.Name
	}
	if updates.CategoryID != nil {
		item.CategoryID = *updates.CategoryID
	}
	if updates.BrandID != nil {
		item.BrandID = updates.BrandID
	}
	if updates.Lifecycle != nil {
		item.Lifecycle = *updates.Lifecycle
	}
	if updates.SizeLabel != nil {
		item.SizeLabel = *updates.SizeLabel
	}
	if updates.Material != nil {
		item.Material = *updates.Material
	}
	if updates.Color != nil {
		item.Color = *updates.Color
	}
	if updates.SeasonHint != nil {
		item.SeasonHint = *updates.SeasonHint
	}
	if updates.Condition != nil {
		item.Condition = *updates.Condition
	}
	if updates.ImageURL != nil {
		item.ImageURL = *updates.ImageURL
	}

	if err := s.itemRepo.Update(ctx, &item); err != nil {
		return nil, err
	}
	logger.L().Info("item updated", zap.Uint("item_id", itemID), zap.String("user_id", userID.String()))
	return &item, nil
}

func (s *wardrobeService) DeleteItem(ctx context.Context, itemID uint, userID uuid.UUID) error {
	var item models.Item
	if err := s.itemRepo.GetOwned(ctx, itemID, userID, &item); err != nil {
		return err
	}
	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return err
	}
	logger.L().Info("item deleted", zap.Uint("item_id", itemID), zap.String("user_id", userID.String()))
	return nil
}

// AttachPurchase records the acquisition of an item. Each item has at most
// one purchase record; a second attach fails with a conflict.
func (s *wardrobeService) AttachPurchase(ctx context.Context, itemID uint, userID uuid.UUID, input *AttachPurchaseInput) (*models.Purchase, error) {
	var item models.Item
	if err := s.itemRepo.GetOwned(ctx, itemID, userID, &item); err != nil {
		return nil, err
	}
	if input.PriceCents <= 0 {
		return nil, appErr.Validation("price_cents", "Price must be a positive number of cents.")
	}
	p := &models.Purchase{
		ItemID:       itemID,
		SellerType:   input.SellerType,
		PriceCents:   input.PriceCents,
		PurchaseDate: time.Now(),
		Location:     input.Location,
	}
	if err := s.itemRepo.CreatePurchase(ctx, p); err != nil {
		return nil, err
	}
	logger.L().Info("purchase attached", zap.Uint("item_id", itemID), zap.Int("price_cents", input.PriceCents))
	return p, nil
}

// GetPurchase returns the acquisition record of an owned item.
func (s *wardrobeService) GetPurchase(ctx context.Context, itemID uint, userID uuid.UUID) (*models.Purchase, error) {
	var item models.Item
	if err := s.itemRepo.GetOwned(ctx, itemID, userID, &item); err != nil {
		return nil, err
	}
	var p models.Purchase
	if err := s.itemRepo.GetPurchaseByItem(ctx, itemID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
