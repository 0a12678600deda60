package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
)

type subscriptionRecord struct {
	SID                 string                     `json:"sid"`
	CompanySID          string                     `json:"companySid"`
	PackageID           string                     `json:"packageId"`
	AddOns              []string                   `json:"addOns"`
	ContractMonths      int                        `json:"contractMonths"`
	Status              string                     `json:"status"`
	InfraProfileID      string                     `json:"infraProfileId"`
	AWSMode             string                     `json:"awsMode"`
	AWSRoleARN          *string                    `json:"awsRoleArn,omitempty"`
	AWSAccountID        *string                    `json:"awsAccountId,omitempty"`
	AWSRegion           *string                    `json:"awsRegion,omitempty"`
	EnvName             string                     `json:"envName"`
	PlanSnapshot        *subscription.PlanSnapshot `json:"planSnapshot,omitempty"`
	CostEstimate        *subscription.CostEstimate `json:"costEstimateSnapshot,omitempty"`
	Paused              bool                       `json:"paused"`
	Destroyed           bool                       `json:"destroyed"`
	LastBackup          *subscription.BackupRecord `json:"lastBackup,omitempty"`
	Endpoints           *subscription.Endpoints    `json:"endpoints,omitempty"`
	InitialSetupShownAt *time.Time                 `json:"initialSetupShownAt,omitempty"`
	CreatedAt           time.Time                  `json:"createdAt"`
	UpdatedAt           time.Time                  `json:"updatedAt"`
}

// SubscriptionRepository is a Redis-backed implementation of
// subscription.Repository. A sorted set on updatedAt keeps listings in
// most-recently-updated order.
type SubscriptionRepository struct {
	client *redis.Client
}

func NewSubscriptionRepository(client *redis.Client) *SubscriptionRepository {
	return &SubscriptionRepository{client: client}
}

func (r *SubscriptionRepository) set(ctx context.Context, sub *subscription.Subscription) error {
	record := subscriptionRecord{
		SID:                 sub.SID(),
		CompanySID:          sub.CompanySID(),
		PackageID:           sub.PackageID(),
		AddOns:              sub.AddOns(),
		ContractMonths:      sub.ContractMonths(),
		Status:              sub.Status().String(),
		InfraProfileID:      sub.InfraProfileID(),
		AWSMode:             sub.AWSMode(),
		AWSRoleARN:          sub.AWSRoleARN(),
		AWSAccountID:        sub.AWSAccountID(),
		AWSRegion:           sub.AWSRegion(),
		EnvName:             sub.EnvName(),
		PlanSnapshot:        sub.PlanSnapshot(),
		CostEstimate:        sub.CostEstimate(),
		Paused:              sub.Paused(),
		Destroyed:           sub.Destroyed(),
		LastBackup:          sub.LastBackup(),
		Endpoints:           sub.Endpoints(),
		InitialSetupShownAt: sub.InitialSetupShownAt(),
		CreatedAt:           sub.CreatedAt(),
		UpdatedAt:           sub.UpdatedAt(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal subscription record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, subscriptionKey(sub.SID()), data, 0)
	pipe.ZAdd(ctx, subscriptionIndexKey, redis.Z{
		Score:  float64(sub.UpdatedAt().UnixMilli()),
		Member: sub.SID(),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store subscription record: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	return r.set(ctx, sub)
}

func (r *SubscriptionRepository) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	data, err := r.client.Get(ctx, subscriptionKey(sid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription record: %w", err)
	}
	return unmarshalSubscription(data)
}

func unmarshalSubscription(data []byte) (*subscription.Subscription, error) {
	var record subscriptionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal subscription record: %w", err)
	}

	return subscription.ReconstructSubscription(subscription.ReconstructSubscriptionParams{
		SID:                 record.SID,
		CompanySID:          record.CompanySID,
		PackageID:           record.PackageID,
		AddOns:              record.AddOns,
		ContractMonths:      record.ContractMonths,
		Status:              vo.OnboardingStatus(record.Status),
		InfraProfileID:      record.InfraProfileID,
		AWSMode:             record.AWSMode,
		AWSRoleARN:          record.AWSRoleARN,
		AWSAccountID:        record.AWSAccountID,
		AWSRegion:           record.AWSRegion,
		EnvName:             record.EnvName,
		PlanSnapshot:        record.PlanSnapshot,
		CostEstimate:        record.CostEstimate,
		Paused:              record.Paused,
		Destroyed:           record.Destroyed,
		LastBackup:          record.LastBackup,
		Endpoints:           record.Endpoints,
		InitialSetupShownAt: record.InitialSetupShownAt,
		CreatedAt:           record.CreatedAt,
		UpdatedAt:           record.UpdatedAt,
	})
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	exists, err := r.client.Exists(ctx, subscriptionKey(sub.SID())).Result()
	if err != nil {
		return fmt.Errorf("failed to check subscription record: %w", err)
	}
	if exists == 0 {
		return subscription.ErrSubscriptionNotFound
	}
	return r.set(ctx, sub)
}

func (r *SubscriptionRepository) List(ctx context.Context) ([]*subscription.Subscription, error) {
	sids, err := r.client.ZRevRange(ctx, subscriptionIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read subscription index: %w", err)
	}
	if len(sids) == 0 {
		return []*subscription.Subscription{}, nil
	}

	keys := make([]string, len(sids))
	for i, sid := range sids {
		keys[i] = subscriptionKey(sid)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load subscription records: %w", err)
	}

	subs := make([]*subscription.Subscription, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Index entry without a record; skip stale entries.
			continue
		}
		sub, err := unmarshalSubscription([]byte(raw))
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
