// Package messaging persists buyer/seller conversations in redis as an
// append-only store keyed by conversation id. Expiry is a read-time filter
// plus a separate sweep; user data is never rewritten in place.
package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fnadeau-1/wrestle-swap/app/common/consts/biz"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	convKeyPrefix = "messaging:conv:"
	msgsKeyPrefix = "messaging:msgs:"
	userKeyPrefix = "messaging:user:"
	indexKey      = "messaging:index"

	// Retention window for conversations and messages.
	Retention = biz.MessageRetention
)

type Store interface {
	CreateConversation(ctx context.Context, conv *Conversation) error
	GetConversation(ctx context.Context, id string) (*Conversation, error)
	ListConversations(ctx context.Context, userId string, now time.Time) ([]*Conversation, error)
	AppendMessage(ctx context.Context, conv *Conversation, msg *Message) error
	ListMessages(ctx context.Context, conversationId string, now time.Time) ([]*Message, error)
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

var _ Store = (*redisStore)(nil)

type redisStore struct {
	rds *redis.Redis
}

func NewStore(rds *redis.Redis) Store {
	return &redisStore{rds: rds}
}

func (s *redisStore) CreateConversation(ctx context.Context, conv *Conversation) error {
	body, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	if err := s.rds.SetCtx(ctx, convKeyPrefix+conv.Id, string(body)); err != nil {
		return err
	}
	return s.index(ctx, conv, conv.LastMessageAt)
}

func (s *redisStore) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	body, err := s.rds.GetCtx(ctx, convKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	if body == "" {
		return nil, ErrConversationNotFound
	}
	var conv Conversation
	if err := json.Unmarshal([]byte(body), &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *redisStore) ListConversations(ctx context.Context, userId string, now time.Time) ([]*Conversation, error) {
	cutoff := now.Add(-Retention).UnixMilli()
	pairs, err := s.rds.ZrangebyscoreWithScoresCtx(ctx, userKeyPrefix+userId, cutoff, now.UnixMilli())
	if err != nil {
		return nil, err
	}

	// newest first
	out := make([]*Conversation, 0, len(pairs))
	for i := len(pairs) - 1; i >= 0; i-- {
		conv, err := s.GetConversation(ctx, pairs[i].Key)
		if err == ErrConversationNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, conv)
	}
	return out, nil
}

// AppendMessage pushes the message onto the conversation's log and bumps the
// conversation's last-message metadata. The message log itself is append
// only; concurrent senders interleave instead of overwriting each other.
func (s *redisStore) AppendMessage(ctx context.Context, conv *Conversation, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if _, err := s.rds.RpushCtx(ctx, msgsKeyPrefix+msg.ConversationId, string(body)); err != nil {
		return err
	}

	conv.LastMessage = msg.Text
	conv.LastMessageAt = msg.Timestamp
	convBody, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	if err := s.rds.SetCtx(ctx, convKeyPrefix+conv.Id, string(convBody)); err != nil {
		return err
	}
	return s.index(ctx, conv, msg.Timestamp)
}

func (s *redisStore) ListMessages(ctx context.Context, conversationId string, now time.Time) ([]*Message, error) {
	rows, err := s.rds.LrangeCtx(ctx, msgsKeyPrefix+conversationId, 0, -1)
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(-Retention).UnixMilli()
	out := make([]*Message, 0, len(rows))
	for _, row := range rows {
		var msg Message
		if err := json.Unmarshal([]byte(row), &msg); err != nil {
			continue
		}
		if msg.Timestamp < cutoff {
			continue
		}
		out = append(out, &msg)
	}
	return out, nil
}

// SweepExpired drops conversations idle past the retention window, along
// with their message logs and per-user index entries.
func (s *redisStore) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-Retention).UnixMilli()
	pairs, err := s.rds.ZrangebyscoreWithScoresCtx(ctx, indexKey, 0, cutoff)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, pair := range pairs {
		id := pair.Key
		if conv, err := s.GetConversation(ctx, id); err == nil {
			_, _ = s.rds.ZremCtx(ctx, userKeyPrefix+conv.BuyerId, id)
			_, _ = s.rds.ZremCtx(ctx, userKeyPrefix+conv.SellerId, id)
		}
		if _, err := s.rds.DelCtx(ctx, convKeyPrefix+id, msgsKeyPrefix+id); err != nil {
			return swept, err
		}
		if _, err := s.rds.ZremCtx(ctx, indexKey, id); err != nil {
			return swept, err
		}
		swept++
	}
	return swept, nil
}

func (s *redisStore) index(ctx context.Context, conv *Conversation, atMs int64) error {
	if _, err := s.rds.ZaddCtx(ctx, indexKey, atMs, conv.Id); err != nil {
		return err
	}
	if _, err := s.rds.ZaddCtx(ctx, userKeyPrefix+conv.BuyerId, atMs, conv.Id); err != nil {
		return err
	}
	_, err := s.rds.ZaddCtx(ctx, userKeyPrefix+conv.SellerId, atMs, conv.Id)
	return err
}
