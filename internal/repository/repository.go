package repository

import (
	"context"
	"errors"

	"github.com/mutualfundportal/portal/internal/domain"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a user's email or username is taken.
	ErrDuplicate = errors.New("duplicate record")
)

// UserRepository persists portal accounts.
type UserRepository interface {
	// CreateUser stores u, assigning an ID and CreatedAt when empty.
	CreateUser(ctx context.Context, u *domain.User) error
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UserExists reports whether any account uses the email or the username.
	UserExists(ctx context.Context, email, username string) (bool, error)
	CountUsers(ctx context.Context) (int, error)
}

// ProposalRepository persists saved proposals.
type ProposalRepository interface {
	CreateProposal(ctx context.Context, p *domain.Proposal) error
	CountProposals(ctx context.Context) (int, error)
}

// Store is the full persistence surface used by the server.
type Store interface {
	UserRepository
	ProposalRepository
	Ping(ctx context.Context) error
	Close() error
}
