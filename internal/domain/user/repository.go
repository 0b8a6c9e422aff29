package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail returns (nil, nil) when no user has the address.
	GetByEmail(ctx context.Context, email string) (*User, error)

	List(ctx context.Context, filter UserFilter) ([]User, int64, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
}
