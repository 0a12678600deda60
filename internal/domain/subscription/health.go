package subscription

import (
	vo "github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription/valueobjects"
)

// StatusHealth derives the lifecycle traffic light. Destroyed or
// rejected subscriptions are red, paused ones amber, ready ones green,
// everything still in flight amber.
func (s *Subscription) StatusHealth() vo.Health {
	switch {
	case s.destroyed || s.status == vo.StatusRejected:
		return vo.HealthRed
	case s.paused:
		return vo.HealthAmber
	case s.status == vo.StatusReady:
		return vo.HealthGreen
	default:
		return vo.HealthAmber
	}
}

// APIHealth derives the serving-plane traffic light. Unlike
// StatusHealth, a rejected subscription is amber here since nothing was
// ever provisioned for it.
func (s *Subscription) APIHealth() vo.Health {
	switch {
	case s.destroyed:
		return vo.HealthRed
	case s.paused:
		return vo.HealthAmber
	case s.status == vo.StatusReady:
		return vo.HealthGreen
	default:
		return vo.HealthAmber
	}
}
