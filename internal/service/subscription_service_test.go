package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSubscribers(t *testing.T) {
	ctx := context.Background()
	w := newWorld()
	channel := w.addUser("channel")
	a := w.addUser("a")
	b := w.addUser("b")
	svc := w.subscriptionService()

	for _, fan := range []string{b.ID, a.ID} {
		_, err := svc.Toggle(ctx, fan, channel.ID)
		require.NoError(t, err)
	}

	data, err := svc.GetSubscribers(ctx, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, "channel", data.Channel.Username)
	assert.EqualValues(t, 2, data.Channel.SubscriberCount)
	require.Len(t, data.Subscribers, 2)
	assert.Equal(t, "b", data.Subscribers[0].Username)
	assert.Equal(t, "a", data.Subscribers[1].Username)

	_, err = svc.GetSubscribers(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrChannelNotFound)
	_, err = svc.GetSubscribers(ctx, "x")
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestGetSubscribers_CountsOnlyResolvedUsers(t *testing.T) {
	ctx := context.Background()
	w := newWorld()
	channel := w.addUser("channel")
	kept := w.addUser("kept")
	gone := w.addUser("gone")
	svc := w.subscriptionService()

	for _, fan := range []string{kept.ID, gone.ID} {
		_, err := svc.Toggle(ctx, fan, channel.ID)
		require.NoError(t, err)
	}
	w.users.remove(gone.ID)

	data, err := svc.GetSubscribers(ctx, channel.ID)
	require.NoError(t, err)
	require.Len(t, data.Subscribers, 1)
	assert.Equal(t, "kept", data.Subscribers[0].Username)
	assert.EqualValues(t, 1, data.Channel.SubscriberCount)
}

func TestGetSubscriptions(t *testing.T) {
	ctx := context.Background()
	w := newWorld()
	fan := w.addUser("fan")
	c1 := w.addUser("c1")
	c2 := w.addUser("c2")
	svc := w.subscriptionService()

	for _, c := range []string{c1.ID, c2.ID} {
		_, err := svc.Toggle(ctx, fan.ID, c)
		require.NoError(t, err)
	}

	data, err := svc.GetSubscriptions(ctx, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, "fan", data.Channel.Username)
	require.Len(t, data.Subscriptions, 2)
	assert.Equal(t, "c1", data.Subscriptions[0].Username)

	empty, err := svc.GetSubscriptions(ctx, c1.ID)
	require.NoError(t, err)
	assert.Empty(t, empty.Subscriptions)
}
