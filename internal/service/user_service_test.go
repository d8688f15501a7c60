package service

import (
	"context"
	"testing"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	w := newWorld()
	alice := w.addUser("alice")
	svc := NewUserService(w.users, w.media)

	me, err := svc.Me(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)

	updated, err := svc.UpdateProfile(ctx, alice.ID, &dto.UpdateProfileRequest{FullName: " Alice L "})
	require.NoError(t, err)
	assert.Equal(t, "Alice L", updated.FullName)

	withAvatar, err := svc.UpdateAvatar(ctx, alice.ID, "/tmp/new.png")
	require.NoError(t, err)
	assert.NotEqual(t, alice.Avatar, withAvatar.Avatar)
	assert.Equal(t, []string{media.PublicIDFromURL(alice.Avatar)}, w.media.deleted)

	withCover, err := svc.UpdateCoverImage(ctx, alice.ID, "/tmp/cover.png")
	require.NoError(t, err)
	assert.NotEmpty(t, withCover.CoverImage)
	assert.Len(t, w.media.deleted, 1, "no previous cover to delete")

	_, err = svc.UpdateAvatar(ctx, alice.ID, "")
	assert.ErrorIs(t, err, ErrImageRequired)
}
