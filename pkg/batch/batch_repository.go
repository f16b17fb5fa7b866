package batch

import (
	"buddyfridge/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BatchRepository interface {
		Insert(ctx context.Context, batch *entities.FoodBatch) error
		GetByID(ctx context.Context, id string) (*entities.FoodBatch, error)
		Update(ctx context.Context, batch *entities.FoodBatch) error
		// Terminate records the terminal status and removes the batch from
		// the live inventory. Zero-quantity batches are never retained.
		Terminate(ctx context.Context, batch *entities.FoodBatch, status entities.BatchStatus) error
		Delete(ctx context.Context, batch *entities.FoodBatch) error
		ListByUser(ctx context.Context, userID string, location string) ([]*entities.FoodBatch, error)
		CountSiblings(ctx context.Context, userID string, nameKey string, excludeID uuid.UUID) (int64, error)
	}

	batchRepository struct {
		db *gorm.DB
	}
)

func NewBatchRepository(db *gorm.DB) BatchRepository {
	return &batchRepository{db: db}
}

func (r *batchRepository) Insert(ctx context.Context, batch *entities.FoodBatch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

func (r *batchRepository) GetByID(ctx context.Context, id string) (*entities.FoodBatch, error) {
	var batch entities.FoodBatch
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepository) Update(ctx context.Context, batch *entities.FoodBatch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

func (r *batchRepository) Terminate(ctx context.Context, batch *entities.FoodBatch, status entities.BatchStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(batch).Update("status", status).Error; err != nil {
			return err
		}
		return tx.Delete(batch).Error
	})
}

func (r *batchRepository) Delete(ctx context.Context, batch *entities.FoodBatch) error {
	return r.db.WithContext(ctx).Delete(batch).Error
}

func (r *batchRepository) ListByUser(ctx context.Context, userID string, location string) ([]*entities.FoodBatch, error) {
	var batches []*entities.FoodBatch

	query := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, entities.StatusAvailable)

	if location != "" && location != "all" {
		query = query.Where("location = ?", location)
	}

	if err := query.Order("expiry_date asc").Find(&batches).Error; err != nil {
		return nil, err
	}

	return batches, nil
}

// CountSiblings counts other available batches sharing the normalized
// product name, excluding the batch being operated on.
func (r *batchRepository) CountSiblings(ctx context.Context, userID string, nameKey string, excludeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FoodBatch{}).
		Where("user_id = ? AND name_key = ? AND status = ? AND id <> ?",
			userID, nameKey, entities.StatusAvailable, excludeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
