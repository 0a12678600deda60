package pricing

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/catalog"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/constants"
)

//go:embed pricing-defaults.json
var pricingDefaults []byte

// Table holds the static unit rates the estimator works from. The
// rates ship embedded in the binary so estimates never depend on an
// external call.
type Table struct {
	HoursPerMonth       float64            `json:"hours_per_month"`
	EKSClusterHourlyUSD float64            `json:"eks_cluster_hourly_usd"`
	EC2HourlyUSD        map[string]float64 `json:"ec2_hourly_usd"`
	EBSGP3PerGBMonthUSD float64            `json:"ebs_gp3_per_gb_month_usd"`
	NATGatewayHourlyUSD float64            `json:"nat_gateway_hourly_usd"`
	NATDataPerGBUSD     float64            `json:"nat_data_per_gb_usd"`
	DefaultNATDataGB    float64            `json:"default_nat_data_gb"`
	ALBHourlyUSD        float64            `json:"alb_hourly_usd"`
	ALBLCUHourlyUSD     float64            `json:"alb_lcu_hourly_usd"`
	DefaultALBLCUHours  float64            `json:"default_alb_lcu_hours"`
	EFSPerGBMonthUSD    float64            `json:"efs_per_gb_month_usd"`
}

// EstimateInput describes one environment's billable shape.
type EstimateInput struct {
	ProfileID         string
	NodeInstanceType  string
	NodeCount         int
	DiskSizeGBPerNode int
	NATEnabled        bool
	ALBEnabled        bool
	EFSEnabled        bool
	EFSSizeGB         int
	RegionMultiplier  float64
}

// Estimator computes deterministic monthly cost ranges from the static
// pricing table. It holds no mutable state.
type Estimator struct {
	table Table
}

func NewEstimator() (*Estimator, error) {
	var table Table
	if err := json.Unmarshal(pricingDefaults, &table); err != nil {
		return nil, fmt.Errorf("failed to parse embedded pricing table: %w", err)
	}
	return &Estimator{table: table}, nil
}

func (e *Estimator) ec2Hourly(instanceType string) float64 {
	if rate, ok := e.table.EC2HourlyUSD[instanceType]; ok {
		return rate
	}
	if rate, ok := e.table.EC2HourlyUSD["t3a.medium"]; ok {
		return rate
	}
	return 0.04
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Estimate computes the monthly cost range for the given shape. The
// low bound is the fixed recurring cost; the high bound adds a flat
// variable allowance for traffic-driven line items.
func (e *Estimator) Estimate(input EstimateInput) subscription.CostEstimate {
	mult := input.RegionMultiplier
	if mult == 0 {
		mult = 1
	}

	var drivers []subscription.CostDriver

	eksCluster := e.table.EKSClusterHourlyUSD * e.table.HoursPerMonth * mult
	drivers = append(drivers, subscription.CostDriver{
		Name:        "EKS control plane",
		MonthlyUSD:  round2(eksCluster),
		Description: "$0.10/hr × 730 hrs",
	})

	nodeCount := float64(input.NodeCount)
	ec2Monthly := e.ec2Hourly(input.NodeInstanceType) * e.table.HoursPerMonth * nodeCount * mult
	drivers = append(drivers, subscription.CostDriver{
		Name:       fmt.Sprintf("EC2 (%d× %s)", input.NodeCount, input.NodeInstanceType),
		MonthlyUSD: round2(ec2Monthly),
	})

	diskGB := input.DiskSizeGBPerNode * input.NodeCount
	ebsMonthly := e.table.EBSGP3PerGBMonthUSD * float64(diskGB) * mult
	drivers = append(drivers, subscription.CostDriver{
		Name:       fmt.Sprintf("EBS gp3 (%d GB)", diskGB),
		MonthlyUSD: round2(ebsMonthly),
	})

	var natMonthly float64
	if input.NATEnabled {
		natMonthly = e.table.NATGatewayHourlyUSD*e.table.HoursPerMonth +
			e.table.NATDataPerGBUSD*e.table.DefaultNATDataGB
		drivers = append(drivers, subscription.CostDriver{
			Name:       "NAT Gateway",
			MonthlyUSD: round2(natMonthly),
		})
	}

	var albMonthly float64
	if input.ALBEnabled {
		albMonthly = e.table.ALBHourlyUSD*e.table.HoursPerMonth +
			e.table.ALBLCUHourlyUSD*e.table.DefaultALBLCUHours*e.table.HoursPerMonth
		drivers = append(drivers, subscription.CostDriver{
			Name:       "ALB",
			MonthlyUSD: round2(albMonthly),
		})
	}

	var efsMonthly float64
	if input.EFSEnabled && input.EFSSizeGB > 0 {
		efsMonthly = e.table.EFSPerGBMonthUSD * float64(input.EFSSizeGB) * mult
		drivers = append(drivers, subscription.CostDriver{
			Name:       fmt.Sprintf("EFS (%d GB)", input.EFSSizeGB),
			MonthlyUSD: round2(efsMonthly),
		})
	}

	fixedMonthly := eksCluster + ec2Monthly + ebsMonthly + natMonthly + albMonthly + efsMonthly

	var variableMonthly float64
	if input.NATEnabled {
		variableMonthly += 20
	}
	if input.ALBEnabled {
		variableMonthly += 15
	}

	totalLow := fixedMonthly
	totalHigh := fixedMonthly + variableMonthly

	underCap := totalHigh <= constants.TrialCapUSD
	var capReason string
	if !underCap {
		capReason = fmt.Sprintf("Estimate $%d exceeds $%d monthly cap. Reduce node count, instance size, or disable optional add-ons.",
			int(math.Round(totalHigh)), constants.TrialCapUSD)
	}

	return subscription.CostEstimate{
		FixedMonthlyUSD:    round2(fixedMonthly),
		VariableMonthlyUSD: round2(variableMonthly),
		TotalLowUSD:        round2(totalLow),
		TotalHighUSD:       round2(totalHigh),
		Drivers:            drivers,
		UnderCap:           underCap,
		CapReason:          capReason,
	}
}

// EstimateForProfile derives the billable shape from a sizing profile
// and estimates it. An ALB always fronts the environment; EFS size is
// a flat 50 GB when the profile enables it.
func (e *Estimator) EstimateForProfile(profileID string) (subscription.CostEstimate, error) {
	spec, ok := catalog.InfraProfileSpecByID(profileID)
	if !ok {
		return subscription.CostEstimate{}, fmt.Errorf("unknown infra profile: %s", profileID)
	}

	instanceType := "t3a.medium"
	if len(spec.InstanceTypes) > 0 {
		instanceType = spec.InstanceTypes[0]
	}

	efsSizeGB := 0
	if spec.EFSEnabled {
		efsSizeGB = 50
	}

	return e.Estimate(EstimateInput{
		ProfileID:         profileID,
		NodeInstanceType:  instanceType,
		NodeCount:         spec.DesiredNodes,
		DiskSizeGBPerNode: spec.DiskSizeGB,
		NATEnabled:        spec.NATEnabled,
		ALBEnabled:        true,
		EFSEnabled:        spec.EFSEnabled,
		EFSSizeGB:         efsSizeGB,
	}), nil
}
