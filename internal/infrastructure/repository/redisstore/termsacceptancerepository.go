package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
)

type termsAcceptanceRecord struct {
	SID             string    `json:"sid"`
	SubscriptionSID string    `json:"subscriptionSid"`
	TermsVersion    string    `json:"termsVersion"`
	AcceptedAt      time.Time `json:"acceptedAt"`
	IPHash          string    `json:"ipHash,omitempty"`
}

// TermsAcceptanceRepository is a Redis-backed implementation of
// subscription.TermsAcceptanceRepository
type TermsAcceptanceRepository struct {
	client *redis.Client
}

func NewTermsAcceptanceRepository(client *redis.Client) *TermsAcceptanceRepository {
	return &TermsAcceptanceRepository{client: client}
}

func (r *TermsAcceptanceRepository) Create(ctx context.Context, acceptance *subscription.TermsAcceptance) error {
	record := termsAcceptanceRecord{
		SID:             acceptance.SID(),
		SubscriptionSID: acceptance.SubscriptionSID(),
		TermsVersion:    acceptance.TermsVersion(),
		AcceptedAt:      acceptance.AcceptedAt(),
		IPHash:          acceptance.IPHash(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal terms acceptance record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, termsKey(acceptance.SID()), data, 0)
	pipe.SAdd(ctx, termsSubIndexKey(acceptance.SubscriptionSID()), acceptance.SID())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store terms acceptance record: %w", err)
	}
	return nil
}

func (r *TermsAcceptanceRepository) ListBySubscription(ctx context.Context, subscriptionSID string) ([]*subscription.TermsAcceptance, error) {
	sids, err := r.client.SMembers(ctx, termsSubIndexKey(subscriptionSID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read terms acceptance index: %w", err)
	}
	if len(sids) == 0 {
		return []*subscription.TermsAcceptance{}, nil
	}

	keys := make([]string, len(sids))
	for i, sid := range sids {
		keys[i] = termsKey(sid)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load terms acceptance records: %w", err)
	}

	acceptances := make([]*subscription.TermsAcceptance, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var record termsAcceptanceRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal terms acceptance record: %w", err)
		}

		acceptance, err := subscription.ReconstructTermsAcceptance(
			record.SID,
			record.SubscriptionSID,
			record.TermsVersion,
			record.IPHash,
			record.AcceptedAt,
		)
		if err != nil {
			return nil, err
		}
		acceptances = append(acceptances, acceptance)
	}
	return acceptances, nil
}
