package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(name string) *domain.User {
	return &domain.User{
		Name:         name,
		Mobile:       "9876543210",
		Email:        name + "@example.com",
		Username:     name,
		PasswordHash: "hash",
	}
}

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u := newUser("asha")
	require.NoError(t, s.CreateUser(ctx, u))
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	found, err := s.FindUserByUsername(ctx, "asha")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "asha@example.com", found.Email)

	_, err = s.FindUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	tests := []struct {
		name     string
		email    string
		username string
		want     bool
	}{
		{"same email", "asha@example.com", "other", true},
		{"same username", "other@example.com", "asha", true},
		{"neither", "other@example.com", "other", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.UserExists(ctx, tt.email, tt.username)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	dup := newUser("asha")
	dup.Email = "second@example.com"
	assert.ErrorIs(t, s.CreateUser(ctx, dup), ErrDuplicate)

	n, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	u := newUser("ravi")
	require.NoError(t, s.CreateUser(ctx, u))

	u.Name = "changed"
	found, err := s.FindUserByUsername(ctx, "ravi")
	require.NoError(t, err)
	assert.Equal(t, "ravi", found.Name)
}

func TestMemoryStore_Proposals(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	p := &domain.Proposal{Title: "Retirement plan"}
	require.NoError(t, s.CreateProposal(ctx, p))
	require.NoError(t, s.CreateProposal(ctx, &domain.Proposal{Title: "Education", CreatedAt: time.Unix(0, 0)}))
	assert.NotEmpty(t, p.ID)

	n, err := s.CountProposals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.CreateUser(ctx, newUser(fmt.Sprintf("user%d", i)))
		}(i)
	}
	wg.Wait()

	n, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
}
