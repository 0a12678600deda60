package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
)

type adminActionRecord struct {
	SID             string                 `json:"sid"`
	SubscriptionSID string                 `json:"subscriptionSid"`
	Action          string                 `json:"action"`
	Status          string                 `json:"status"`
	RequestedAt     time.Time              `json:"requestedAt"`
	CompletedAt     *time.Time             `json:"completedAt,omitempty"`
	Details         map[string]interface{} `json:"details,omitempty"`
}

// AdminActionRepository is a Redis-backed implementation of
// subscription.AdminActionRepository
type AdminActionRepository struct {
	client *redis.Client
}

func NewAdminActionRepository(client *redis.Client) *AdminActionRepository {
	return &AdminActionRepository{client: client}
}

func (r *AdminActionRepository) Create(ctx context.Context, action *subscription.AdminAction) error {
	record := adminActionRecord{
		SID:             action.SID(),
		SubscriptionSID: action.SubscriptionSID(),
		Action:          action.Kind().String(),
		Status:          action.Status().String(),
		RequestedAt:     action.RequestedAt(),
		CompletedAt:     action.CompletedAt(),
		Details:         action.Details(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal admin action record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, actionKey(action.SID()), data, 0)
	pipe.ZAdd(ctx, actionIndexKey, redis.Z{
		Score:  float64(action.RequestedAt().UnixMilli()),
		Member: action.SID(),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store admin action record: %w", err)
	}
	return nil
}

func (r *AdminActionRepository) List(ctx context.Context, filter subscription.AdminActionFilter) ([]*subscription.AdminAction, error) {
	sids, err := r.client.ZRevRange(ctx, actionIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read admin action index: %w", err)
	}
	if len(sids) == 0 {
		return []*subscription.AdminAction{}, nil
	}

	keys := make([]string, len(sids))
	for i, sid := range sids {
		keys[i] = actionKey(sid)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load admin action records: %w", err)
	}

	actions := make([]*subscription.AdminAction, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var record adminActionRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal admin action record: %w", err)
		}

		if filter.SubscriptionSID != "" && record.SubscriptionSID != filter.SubscriptionSID {
			continue
		}
		if filter.Kind != "" && record.Action != filter.Kind.String() {
			continue
		}

		action, err := subscription.ReconstructAdminAction(
			record.SID,
			record.SubscriptionSID,
			vo.ActionKind(record.Action),
			vo.ActionStatus(record.Status),
			record.RequestedAt,
			record.CompletedAt,
			record.Details,
		)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}
