package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T) (*miniredis.Miniredis, InterfaceSessionService) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewSessionService(client, newTestConfig())
}

func TestSessionRoundtrip(t *testing.T) {
	_, svc := newTestSessionService(t)
	ctx := context.Background()

	sessionID, err := svc.Create(ctx, SessionData{StaffID: 7, StaffName: "佐藤", Role: "caregiver"})
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	data, err := svc.Get(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, uint(7), data.StaffID)
	assert.Equal(t, "佐藤", data.StaffName)
	assert.Equal(t, "caregiver", data.Role)
}

func TestSessionGetUnknownID(t *testing.T) {
	_, svc := newTestSessionService(t)

	// 不存在的会话不报错，返回nil
	data, err := svc.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSessionSlidingExpiration(t *testing.T) {
	mr, svc := newTestSessionService(t)
	ctx := context.Background()

	sessionID, err := svc.Create(ctx, SessionData{StaffID: 1, StaffName: "佐藤"})
	require.NoError(t, err)

	// 快进29天后访问，过期时间应重新顺延到30天
	mr.FastForward(29 * 24 * time.Hour)
	data, err := svc.Get(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.InDelta(t, float64(30*24*time.Hour), float64(mr.TTL("session:"+sessionID)), float64(time.Minute))

	// 不访问则30天后过期
	mr.FastForward(31 * 24 * time.Hour)
	data, err = svc.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestSessionDelete(t *testing.T) {
	_, svc := newTestSessionService(t)
	ctx := context.Background()

	sessionID, err := svc.Create(ctx, SessionData{StaffID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, sessionID))

	data, err := svc.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, data)
}
