package memory

import (
	"buddyfridge/entities"
	"context"
	"strings"

	"gorm.io/gorm"
)

// % and _ are LIKE wildcards; a partial name must match them literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type (
	FrequentRepository interface {
		Insert(ctx context.Context, item *entities.FrequentItem) error
		Save(ctx context.Context, item *entities.FrequentItem) error
		GetByNameKey(ctx context.Context, userID string, nameKey string) (*entities.FrequentItem, error)
		Delete(ctx context.Context, userID string, nameKey string) error
		ListByUser(ctx context.Context, userID string) ([]*entities.FrequentItem, error)
		SearchByName(ctx context.Context, userID string, partialKey string) ([]*entities.FrequentItem, error)
		CountByUser(ctx context.Context, userID string) (int64, error)
	}

	frequentRepository struct {
		db *gorm.DB
	}
)

func NewFrequentRepository(db *gorm.DB) FrequentRepository {
	return &frequentRepository{db: db}
}

func (r *frequentRepository) Insert(ctx context.Context, item *entities.FrequentItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *frequentRepository) Save(ctx context.Context, item *entities.FrequentItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *frequentRepository) GetByNameKey(ctx context.Context, userID string, nameKey string) (*entities.FrequentItem, error) {
	var item entities.FrequentItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND name_key = ?", userID, nameKey).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *frequentRepository) Delete(ctx context.Context, userID string, nameKey string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND name_key = ?", userID, nameKey).
		Delete(&entities.FrequentItem{}).Error
}

func (r *frequentRepository) ListByUser(ctx context.Context, userID string) ([]*entities.FrequentItem, error) {
	var items []*entities.FrequentItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_used desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *frequentRepository) SearchByName(ctx context.Context, userID string, partialKey string) ([]*entities.FrequentItem, error) {
	var items []*entities.FrequentItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND name_key LIKE ?", userID, "%"+likeEscaper.Replace(partialKey)+"%").
		Order("last_used desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *frequentRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.FrequentItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
