package service

import (
	"context"
	"errors"
	"testing"

	"vidtube-go/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	w := newWorld()
	svc := NewAuthService(w.users, w.media, fakeTokens{})

	user, err := svc.Register(ctx, &RegisterInput{
		Username: "  Alice_01 ", FullName: "Alice", Password: "secret123", AvatarPath: "/tmp/a.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice_01", user.Username)
	assert.NotEmpty(t, user.Avatar)
	assert.Empty(t, user.CoverImage)

	stored, err := w.users.GetByUsername(ctx, "alice_01")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)

	token, err := svc.Login(ctx, &dto.LoginRequest{Username: "ALICE_01", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "token-"+user.ID, token.Token)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, 3600, token.ExpiresIn)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "alice_01", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestRegister_Rejects(t *testing.T) {
	ctx := context.Background()
	w := newWorld()
	w.addUser("taken")
	svc := NewAuthService(w.users, w.media, fakeTokens{})

	_, err := svc.Register(ctx, &RegisterInput{Username: "Taken", FullName: "T", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUsernameExists)
	assert.Equal(t, KindConflict, KindOf(err))

	for _, name := range []string{"ab", "has space", "emoji🙂", ""} {
		_, err := svc.Register(ctx, &RegisterInput{Username: name, FullName: "T", Password: "secret123"})
		assert.ErrorIs(t, err, ErrInvalidUsername, name)
	}
}

func TestRegister_DeletesUploadsWhenCreateFails(t *testing.T) {
	w := newWorld()
	w.users.createErr = errors.New("db down")
	svc := NewAuthService(w.users, w.media, fakeTokens{})

	_, err := svc.Register(context.Background(), &RegisterInput{
		Username: "alice", FullName: "Alice", Password: "secret123", AvatarPath: "/tmp/a.png", CoverPath: "/tmp/c.png",
	})
	require.Error(t, err)
	require.Len(t, w.media.uploaded, 2)
	assert.ElementsMatch(t, w.media.uploaded, w.media.deleted)
}

func TestRegister_CoverUploadFailure(t *testing.T) {
	w := newWorld()
	w.media.failOn["/tmp/c.png"] = errors.New("media host down")
	svc := NewAuthService(w.users, w.media, fakeTokens{})

	_, err := svc.Register(context.Background(), &RegisterInput{
		Username: "alice", FullName: "Alice", Password: "secret123", AvatarPath: "/tmp/a.png", CoverPath: "/tmp/c.png",
	})
	require.Error(t, err)
	assert.Equal(t, w.media.uploaded, w.media.deleted)
	_, err = w.users.GetByUsername(context.Background(), "alice")
	assert.Error(t, err)
}
