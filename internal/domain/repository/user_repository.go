package repository

import (
	"context"

	"github.com/jhoicas/avicola-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de usuarios (holders).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// List lista usuarios; role vacío = todos.
	List(ctx context.Context, role string) ([]*entity.User, error)
}
