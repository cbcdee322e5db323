package repository

import (
	"context"

	"content-pipeline/domain/model"
)

type IAccount interface {
	Create(ctx context.Context, account *model.Account) error
	GetByID(ctx context.Context, id int64) (*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	// List returns accounts ordered by id; an empty platform matches every platform.
	List(ctx context.Context, platform string, limit, offset int) ([]model.Account, error)
	UpdateStatus(ctx context.Context, id int64, status model.AccountStatus) error
}
