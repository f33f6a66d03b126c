package repository

import (
	"context"

	"app/internal/domain/model"
)

type ClientRepository interface {
	FindAll(ctx context.Context) ([]model.Client, error)
	FindByID(ctx context.Context, clientID int64) (model.Client, error)
	FindByEmail(ctx context.Context, email string) (model.Client, error)
	Create(ctx context.Context, c *model.Client) error
	Update(ctx context.Context, c model.Client) error
	Delete(ctx context.Context, clientID int64) error
}
