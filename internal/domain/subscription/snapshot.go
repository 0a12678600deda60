package subscription

import "time"

// PlannedResource is a single resource a provisioning run would create.
type PlannedResource struct {
	Module string `json:"module"`
	Type   string `json:"type"`
}

// PlanSummary aggregates a generated plan for display.
type PlanSummary struct {
	TotalResources    int                    `json:"totalResources"`
	ByModule          map[string]int         `json:"byModule"`
	VariableOverrides map[string]interface{} `json:"variableOverrides"`
	Outputs           map[string]string      `json:"outputs"`
}

// PlanSnapshot is the opaque result of a plan generation run, stored on
// the subscription. Regenerating for the same profile and environment
// name yields an identical snapshot.
type PlanSnapshot struct {
	Summary   PlanSummary       `json:"summary"`
	Resources []PlannedResource `json:"resources"`
}

// CostDriver is one line item of a monthly cost estimate.
type CostDriver struct {
	Name        string  `json:"name"`
	MonthlyUSD  float64 `json:"monthlyUsd"`
	Description string  `json:"description,omitempty"`
}

// CostEstimate is the monthly cost range computed for a sizing profile.
// Low covers fixed recurring cost only; High adds the estimated
// variable cost.
type CostEstimate struct {
	FixedMonthlyUSD    float64      `json:"fixedMonthlyUsd"`
	VariableMonthlyUSD float64      `json:"variableMonthlyUsd"`
	TotalLowUSD        float64      `json:"totalLowUsd"`
	TotalHighUSD       float64      `json:"totalHighUsd"`
	Drivers            []CostDriver `json:"drivers"`
	UnderCap           bool         `json:"underCap"`
	CapReason          string       `json:"capReason,omitempty"`
}

// Endpoints are the URLs and identifiers exposed to a customer once
// their environment is ready.
type Endpoints struct {
	DashboardURL  string `json:"dashboardUrl"`
	APIEndpoint   string `json:"apiEndpoint"`
	AWSConsoleURL string `json:"awsConsoleUrl"`
	AccountID     string `json:"accountId"`
	Region        string `json:"region"`
}

// BackupRecord points at the most recent environment backup.
type BackupRecord struct {
	Location    string    `json:"location"`
	CompletedAt time.Time `json:"completedAt"`
}
