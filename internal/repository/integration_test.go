//go:build integration

package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/mutualfundportal/portal/internal/migrations"
	"github.com/mutualfundportal/portal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/lib/pq"
)

// setupTestDB starts PostgreSQL, applies the migrations and returns a store.
func setupTestDB(t *testing.T) *repository.PostgresStore {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "password",
			"POSTGRES_DB":       "portal_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	url := fmt.Sprintf("postgres://postgres:password@%s:%s/portal_test?sslmode=disable", host, port.Port())

	var db *sql.DB
	for i := 0; i < 30; i++ {
		db, err = sql.Open("postgres", url)
		if err == nil {
			if err = db.Ping(); err == nil {
				break
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	require.NoError(t, err, "failed to connect to database")

	runner, err := migrations.New("../../migrations", url)
	require.NoError(t, err)
	defer runner.Close()
	st, err := runner.Up()
	require.NoError(t, err)
	assert.True(t, st.Changed)
	assert.EqualValues(t, 2, st.Version)

	st, err = runner.Up()
	require.NoError(t, err)
	assert.False(t, st.Changed, "second up should be a no-op")

	store := repository.NewPostgresStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPostgresStore_Users(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	u := &domain.User{Name: "Asha", Mobile: "9876543210", Email: "asha@example.com", Username: "asha", PasswordHash: "hash"}
	require.NoError(t, store.CreateUser(ctx, u))
	assert.NotEmpty(t, u.ID)

	found, err := store.FindUserByUsername(ctx, "asha")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = store.FindUserByUsername(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	exists, err := store.UserExists(ctx, "asha@example.com", "someone")
	require.NoError(t, err)
	assert.True(t, exists)

	dup := &domain.User{Name: "Other", Mobile: "1", Email: "asha@example.com", Username: "other", PasswordHash: "x"}
	assert.ErrorIs(t, store.CreateUser(ctx, dup), repository.ErrDuplicate)

	require.NoError(t, store.CreateProposal(ctx, &domain.Proposal{Title: "Plan", CreatedBy: u.ID}))
	require.NoError(t, store.CreateProposal(ctx, &domain.Proposal{Title: "Anonymous"}))

	users, err := store.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, users)
	proposals, err := store.CountProposals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, proposals)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	cache := repository.NewRedisCache(fmt.Sprintf("%s:%s", host, port.Port()))
	t.Cleanup(func() { _ = cache.Close() })
	require.NoError(t, cache.Ping(ctx))

	_, ok := cache.Get(ctx, "stats")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "stats", `{"users":3}`, time.Minute))
	v, ok := cache.Get(ctx, "stats")
	assert.True(t, ok)
	assert.Equal(t, `{"users":3}`, v)
}
