package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/constants"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/id"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

type BackupSubscriptionCommand struct {
	SubscriptionSID string
}

// BackupSubscriptionResult returns the updated subscription and the
// audit record for the backup.
type BackupSubscriptionResult struct {
	Subscription *dto.SubscriptionDTO `json:"subscription"`
	Action       *dto.AdminActionDTO  `json:"action"`
}

// BackupSubscriptionUseCase records a simulated environment backup:
// advances the subscription's last-backup pointer and appends one
// completed audit record with the synthesized storage location and the
// retention window. Every call produces a fresh record.
type BackupSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	actionRepo       subscription.AdminActionRepository
	logger           logger.Interface
}

func NewBackupSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	actionRepo subscription.AdminActionRepository,
	log logger.Interface,
) *BackupSubscriptionUseCase {
	return &BackupSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		actionRepo:       actionRepo,
		logger:           log,
	}
}

func (uc *BackupSubscriptionUseCase) Execute(ctx context.Context, cmd BackupSubscriptionCommand) (*BackupSubscriptionResult, error) {
	sub, err := loadSubscription(ctx, uc.subscriptionRepo, cmd.SubscriptionSID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	backupID := fmt.Sprintf("backup-%d", now.UnixMilli())
	location := fmt.Sprintf("s3://officeless-backups/%s/%s", sub.EnvName(), backupID)

	if err := sub.RecordBackup(subscription.BackupRecord{
		Location:    location,
		CompletedAt: now,
	}); err != nil {
		return nil, translateDomainError(err)
	}

	action, err := subscription.NewAdminAction(id.NewAdminActionSID(), sub.SID(), vo.ActionBackup)
	if err != nil {
		return nil, apperrors.NewInternalError(err.Error())
	}

	retentionEnd := now.AddDate(0, 0, constants.BackupRetentionDays)
	details := map[string]interface{}{
		"description":                  "Backup DB to S3, retention 6 months, auto-delete.",
		"backup_id":                    backupID,
		"location":                     location,
		"timestamp":                    now.Format(time.RFC3339),
		"retention_end_date":           retentionEnd.Format(time.RFC3339),
		"s3_lifecycle_expiration_days": constants.BackupRetentionDays,
	}
	if err := action.Complete(details); err != nil {
		return nil, apperrors.NewInternalError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist backup", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to update subscription", err.Error())
	}
	if err := uc.actionRepo.Create(ctx, action); err != nil {
		uc.logger.Errorw("failed to persist backup action", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to record admin action", err.Error())
	}

	uc.logger.Infow("backup recorded",
		"subscription_sid", sub.SID(),
		"backup_id", backupID)

	return &BackupSubscriptionResult{
		Subscription: dto.NewSubscriptionDTO(sub),
		Action:       dto.NewAdminActionDTO(action),
	}, nil
}
