package shopping

import (
	"buddyfridge/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		Insert(ctx context.Context, entry *entities.ShoppingEntry) error
		GetByID(ctx context.Context, id string) (*entities.ShoppingEntry, error)
		Update(ctx context.Context, entry *entities.ShoppingEntry) error
		Delete(ctx context.Context, entry *entities.ShoppingEntry) error
		ListByUser(ctx context.Context, userID string) ([]*entities.ShoppingEntry, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) Insert(ctx context.Context, entry *entities.ShoppingEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *shoppingRepository) GetByID(ctx context.Context, id string) (*entities.ShoppingEntry, error) {
	var entry entities.ShoppingEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *shoppingRepository) Update(ctx context.Context, entry *entities.ShoppingEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *shoppingRepository) Delete(ctx context.Context, entry *entities.ShoppingEntry) error {
	return r.db.WithContext(ctx).Delete(entry).Error
}

func (r *shoppingRepository) ListByUser(ctx context.Context, userID string) ([]*entities.ShoppingEntry, error) {
	var entries []*entities.ShoppingEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_date asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
