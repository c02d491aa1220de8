package services

import (
	"context"
	"encoding/json"
	"time"

	"carelog-http-service/config"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// SessionData 是存入Redis的会话内容
type SessionData struct {
	StaffID   uint   `json:"staff_id"`
	StaffName string `json:"staff_name"`
	Role      string `json:"role"`
}

// InterfaceSessionService defines the session service interface
type InterfaceSessionService interface {
	Create(ctx context.Context, data SessionData) (string, error)
	Get(ctx context.Context, sessionID string) (*SessionData, error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionService 管理Redis中的服务端会话
type SessionService struct {
	Client *redis.Client
	ttl    time.Duration
}

// NewSessionService 创建一个新的会话服务
func NewSessionService(client *redis.Client, cfg *config.Config) InterfaceSessionService {
	return &SessionService{
		Client: client,
		ttl:    time.Duration(cfg.SessionTTLDays) * 24 * time.Hour,
	}
}

// Create 创建新会话，返回会话ID
func (s *SessionService) Create(ctx context.Context, data SessionData) (string, error) {
	sessionID := uuid.NewString()

	jsonValue, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	if err := s.Client.Set(ctx, "session:"+sessionID, jsonValue, s.ttl).Err(); err != nil {
		return "", err
	}

	return sessionID, nil
}

// Get 获取会话内容，每次访问顺延过期时间（30天滑动过期）
func (s *SessionService) Get(ctx context.Context, sessionID string) (*SessionData, error) {
	val, err := s.Client.Get(ctx, "session:"+sessionID).Result()
	if err == redis.Nil {
		// 会话不存在或已过期
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, err
	}

	// 滑动过期
	_ = s.Client.Expire(ctx, "session:"+sessionID, s.ttl).Err()

	return &data, nil
}

// Delete 删除会话（登出）
func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, "session:"+sessionID).Err()
}
