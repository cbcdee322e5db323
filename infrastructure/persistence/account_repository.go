package persistence

import (
	"context"
	"fmt"
	"time"

	"content-pipeline/domain/model"
	"content-pipeline/domain/repository"
	"content-pipeline/infrastructure/logger"

	"gorm.io/gorm"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) repository.IAccount { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":    err,
			"username": account.Username,
		}).Error("create account failed")
		return classify(err)
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	var a model.Account
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, classify(err)
	}
	return &a, nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	var a model.Account
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, classify(err)
	}
	return &a, nil
}

func (r *AccountRepository) List(ctx context.Context, platform string, limit, offset int) ([]model.Account, error) {
	limit, offset = normalizePage(limit, offset)
	q := r.db.WithContext(ctx).Order("id ASC").Limit(limit).Offset(offset)
	if platform != "" {
		q = q.Where("platform = ?", platform)
	}
	out := make([]model.Account, 0, limit)
	if err := q.Find(&out).Error; err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *AccountRepository) UpdateStatus(ctx context.Context, id int64, status model.AccountStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: account %d", ErrNotFound, id)
	}
	return nil
}
