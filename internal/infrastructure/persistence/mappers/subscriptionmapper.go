package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/persistence/models"
)

// SubscriptionMapper converts between the subscription aggregate and
// its GORM model. Snapshot payloads are stored as JSON columns.
type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func marshalJSON(v interface{}) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON column: %w", err)
	}
	return datatypes.JSON(data), nil
}

func (m *SubscriptionMapper) ToModel(sub *subscription.Subscription) (*models.SubscriptionModel, error) {
	addOns, err := marshalJSON(sub.AddOns())
	if err != nil {
		return nil, err
	}

	var planSnapshot, costEstimate, lastBackup, endpoints datatypes.JSON
	if sub.PlanSnapshot() != nil {
		if planSnapshot, err = marshalJSON(sub.PlanSnapshot()); err != nil {
			return nil, err
		}
	}
	if sub.CostEstimate() != nil {
		if costEstimate, err = marshalJSON(sub.CostEstimate()); err != nil {
			return nil, err
		}
	}
	if sub.LastBackup() != nil {
		if lastBackup, err = marshalJSON(sub.LastBackup()); err != nil {
			return nil, err
		}
	}
	if sub.Endpoints() != nil {
		if endpoints, err = marshalJSON(sub.Endpoints()); err != nil {
			return nil, err
		}
	}

	return &models.SubscriptionModel{
		SID:                  sub.SID(),
		CompanySID:           sub.CompanySID(),
		PackageID:            sub.PackageID(),
		AddOns:               addOns,
		ContractMonths:       sub.ContractMonths(),
		Status:               sub.Status().String(),
		InfraProfileID:       sub.InfraProfileID(),
		AWSMode:              sub.AWSMode(),
		AWSRoleARN:           sub.AWSRoleARN(),
		AWSAccountID:         sub.AWSAccountID(),
		AWSRegion:            sub.AWSRegion(),
		EnvName:              sub.EnvName(),
		PlanSnapshot:         planSnapshot,
		CostEstimateSnapshot: costEstimate,
		Paused:               sub.Paused(),
		Destroyed:            sub.Destroyed(),
		LastBackup:           lastBackup,
		Endpoints:            endpoints,
		InitialSetupShownAt:  sub.InitialSetupShownAt(),
		CreatedAt:            sub.CreatedAt(),
		UpdatedAt:            sub.UpdatedAt(),
	}, nil
}

func (m *SubscriptionMapper) ToDomain(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	var addOns []string
	if len(model.AddOns) > 0 {
		if err := json.Unmarshal(model.AddOns, &addOns); err != nil {
			return nil, fmt.Errorf("failed to unmarshal add-ons: %w", err)
		}
	}

	var planSnapshot *subscription.PlanSnapshot
	if len(model.PlanSnapshot) > 0 {
		planSnapshot = &subscription.PlanSnapshot{}
		if err := json.Unmarshal(model.PlanSnapshot, planSnapshot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan snapshot: %w", err)
		}
	}

	var costEstimate *subscription.CostEstimate
	if len(model.CostEstimateSnapshot) > 0 {
		costEstimate = &subscription.CostEstimate{}
		if err := json.Unmarshal(model.CostEstimateSnapshot, costEstimate); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cost estimate: %w", err)
		}
	}

	var lastBackup *subscription.BackupRecord
	if len(model.LastBackup) > 0 {
		lastBackup = &subscription.BackupRecord{}
		if err := json.Unmarshal(model.LastBackup, lastBackup); err != nil {
			return nil, fmt.Errorf("failed to unmarshal last backup: %w", err)
		}
	}

	var endpoints *subscription.Endpoints
	if len(model.Endpoints) > 0 {
		endpoints = &subscription.Endpoints{}
		if err := json.Unmarshal(model.Endpoints, endpoints); err != nil {
			return nil, fmt.Errorf("failed to unmarshal endpoints: %w", err)
		}
	}

	return subscription.ReconstructSubscription(subscription.ReconstructSubscriptionParams{
		SID:                 model.SID,
		CompanySID:          model.CompanySID,
		PackageID:           model.PackageID,
		AddOns:              addOns,
		ContractMonths:      model.ContractMonths,
		Status:              vo.OnboardingStatus(model.Status),
		InfraProfileID:      model.InfraProfileID,
		AWSMode:             model.AWSMode,
		AWSRoleARN:          model.AWSRoleARN,
		AWSAccountID:        model.AWSAccountID,
		AWSRegion:           model.AWSRegion,
		EnvName:             model.EnvName,
		PlanSnapshot:        planSnapshot,
		CostEstimate:        costEstimate,
		Paused:              model.Paused,
		Destroyed:           model.Destroyed,
		LastBackup:          lastBackup,
		Endpoints:           endpoints,
		InitialSetupShownAt: model.InitialSetupShownAt,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	})
}
