package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	replayPrefix = "idempotency"
	claimMarker  = "pending"
)

// ErrReplayPending means the key is claimed by a request that has not finished,
// or the claim expired without a stored response.
var ErrReplayPending = errors.New("idempotent request still in progress")

// Replay is a completed response kept for repeated Idempotency-Key requests.
type Replay struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	Body        []byte `json:"body"`
	Fingerprint string `json:"fingerprint"`
}

// ReplayStore is the idempotency cache consumed by the HTTP middleware.
type ReplayStore interface {
	// Claim reserves key for hold. It reports false when the key already exists.
	Claim(ctx context.Context, key string, hold time.Duration) (bool, error)
	// Lookup returns the stored response or ErrReplayPending.
	Lookup(ctx context.Context, key string) (*Replay, error)
	Complete(ctx context.Context, key string, replay Replay, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

type replayStore struct {
	client *Client
}

func (s *replayStore) cmds() (kv, error) {
	if s.client == nil || s.client.cmds == nil {
		return nil, errNotConnected
	}
	return s.client.cmds, nil
}

func (s *replayStore) Claim(ctx context.Context, key string, hold time.Duration) (bool, error) {
	cmds, err := s.cmds()
	if err != nil {
		return false, err
	}
	return cmds.SetNX(ctx, namespaced(replayPrefix, key), claimMarker, hold).Result()
}

func (s *replayStore) Lookup(ctx context.Context, key string) (*Replay, error) {
	cmds, err := s.cmds()
	if err != nil {
		return nil, err
	}
	raw, err := cmds.Get(ctx, namespaced(replayPrefix, key)).Result()
	switch {
	case errors.Is(err, redis.Nil), err == nil && raw == claimMarker:
		return nil, ErrReplayPending
	case err != nil:
		return nil, err
	}

	var replay Replay
	if err := json.Unmarshal([]byte(raw), &replay); err != nil {
		return nil, fmt.Errorf("decode replay %s: %w", key, err)
	}
	return &replay, nil
}

func (s *replayStore) Complete(ctx context.Context, key string, replay Replay, ttl time.Duration) error {
	cmds, err := s.cmds()
	if err != nil {
		return err
	}
	payload, err := json.Marshal(replay)
	if err != nil {
		return fmt.Errorf("encode replay %s: %w", key, err)
	}
	return cmds.Set(ctx, namespaced(replayPrefix, key), string(payload), ttl).Err()
}

func (s *replayStore) Release(ctx context.Context, key string) error {
	cmds, err := s.cmds()
	if err != nil {
		return err
	}
	return cmds.Del(ctx, namespaced(replayPrefix, key)).Err()
}
