package usecases

import (
	"context"
	"fmt"
	"regexp"

	"github.com/officeless-platform/officeless-self-service-portal/internal/application/onboarding/dto"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/catalog"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	apperrors "github.com/officeless-platform/officeless-self-service-portal/internal/shared/errors"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
)

var (
	awsAccountIDPattern = regexp.MustCompile(`^\d{12}$`)
	awsRoleARNPattern   = regexp.MustCompile(`^arn:aws:iam::\d{12}:role/[\w+=,.@/-]+$`)
)

type SelectAWSModeCommand struct {
	SubscriptionSID string
	Mode            string
	AWSRoleARN      *string
	AWSAccountID    *string
	AWSRegion       *string
}

// SelectAWSModeUseCase overwrites the AWS access mode selection on a
// subscription.
type SelectAWSModeUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewSelectAWSModeUseCase(subscriptionRepo subscription.Repository, log logger.Interface) *SelectAWSModeUseCase {
	return &SelectAWSModeUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           log,
	}
}

func (uc *SelectAWSModeUseCase) Execute(ctx context.Context, cmd SelectAWSModeCommand) (*dto.SubscriptionDTO, error) {
	if !catalog.IsValidAWSMode(cmd.Mode) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown aws mode: %s", cmd.Mode))
	}
	if cmd.AWSRegion != nil && *cmd.AWSRegion != "" && !catalog.IsValidAWSRegion(*cmd.AWSRegion) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown aws region: %s", *cmd.AWSRegion))
	}
	if cmd.AWSAccountID != nil && *cmd.AWSAccountID != "" && !awsAccountIDPattern.MatchString(*cmd.AWSAccountID) {
		return nil, apperrors.NewValidationError("awsAccountId must be exactly 12 digits")
	}
	if cmd.AWSRoleARN != nil && *cmd.AWSRoleARN != "" && !awsRoleARNPattern.MatchString(*cmd.AWSRoleARN) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("malformed aws role arn: %s", *cmd.AWSRoleARN))
	}

	sub, err := loadSubscription(ctx, uc.subscriptionRepo, cmd.SubscriptionSID)
	if err != nil {
		return nil, err
	}

	if err := sub.SelectAWSMode(cmd.Mode, cmd.AWSRoleARN, cmd.AWSAccountID, cmd.AWSRegion); err != nil {
		return nil, translateDomainError(err)
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist aws mode selection", "error", err, "subscription_sid", sub.SID())
		return nil, apperrors.NewStoreUnavailableError("failed to update subscription", err.Error())
	}

	return dto.NewSubscriptionDTO(sub), nil
}
