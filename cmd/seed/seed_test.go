package main

import (
	"context"
	"testing"

	"github.com/newsdesk/newsdesk-api/internal/document/repository"
	"github.com/newsdesk/newsdesk-api/internal/document/service"
	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/newsdesk/newsdesk-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_Idempotent(t *testing.T) {
	repo := repository.NewMemoryRepo()
	store := service.New(repo)
	opts := options{Username: "admin", Password: "secret", Categories: []string{"World", " politics ", ""}}

	r, err := seed(context.Background(), store, opts)
	require.NoError(t, err)
	assert.True(t, r.UserCreated)
	assert.Equal(t, []string{"World", "politics"}, r.CategoriesAdded)
	assert.Equal(t, 1, repo.Saves())

	opts.Categories = []string{"world", "Politics"}
	r, err = seed(context.Background(), store, opts)
	require.NoError(t, err)
	assert.False(t, r.UserCreated)
	assert.Empty(t, r.CategoriesAdded)
	assert.Equal(t, 1, repo.Saves(), "nothing new, nothing written")

	doc, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
	assert.Equal(t, models.RoleAdmin, doc.Users[0].Role)
	assert.Len(t, doc.Categories, 2)
}

func TestSeed_RequiresCredentials(t *testing.T) {
	store := service.New(repository.NewMemoryRepo())
	_, err := seed(context.Background(), store, options{Username: "admin"})
	assert.ErrorIs(t, err, errs.ErrValidation)
}
