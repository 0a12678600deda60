package terraform

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/catalog"
	"github.com/officeless-platform/officeless-self-service-portal/internal/domain/subscription"
)

//go:embed terraform-catalog.json
var catalogData []byte

type catalogModule struct {
	Resources []string `json:"resources"`
}

type resourceCatalog struct {
	Modules map[string]catalogModule `json:"modules"`
}

// PlanGenerator produces deterministic provisioning plans from the
// embedded resource catalog. No real terraform runs anywhere; the plan
// only describes what a run would create.
type PlanGenerator struct {
	catalog resourceCatalog
}

func NewPlanGenerator() (*PlanGenerator, error) {
	var rc resourceCatalog
	if err := json.Unmarshal(catalogData, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse embedded resource catalog: %w", err)
	}
	return &PlanGenerator{catalog: rc}, nil
}

// GeneratePlan builds the resource plan for a sizing profile. The same
// profile and environment name always yield an identical snapshot. The
// vpn_optional module is skipped unless the profile enables VPN.
func (g *PlanGenerator) GeneratePlan(profileID, envName string) (subscription.PlanSnapshot, error) {
	spec, ok := catalog.InfraProfileSpecByID(profileID)
	if !ok {
		return subscription.PlanSnapshot{}, fmt.Errorf("unknown infra profile: %s", profileID)
	}

	// Iterate module names in sorted order so the resource list is
	// stable across runs.
	moduleNames := make([]string, 0, len(g.catalog.Modules))
	for name := range g.catalog.Modules {
		moduleNames = append(moduleNames, name)
	}
	sort.Strings(moduleNames)

	var resources []subscription.PlannedResource
	for _, moduleName := range moduleNames {
		if moduleName == "vpn_optional" && !spec.VPNEnabled {
			continue
		}
		for _, resourceType := range g.catalog.Modules[moduleName].Resources {
			resources = append(resources, subscription.PlannedResource{
				Module: moduleName,
				Type:   resourceType,
			})
		}
	}

	byModule := make(map[string]int)
	for _, r := range resources {
		byModule[r.Module]++
	}

	summary := subscription.PlanSummary{
		TotalResources: len(resources),
		ByModule:       byModule,
		VariableOverrides: map[string]interface{}{
			"eks_node_instance_types": spec.InstanceTypes,
			"eks_node_desired":        spec.DesiredNodes,
			"eks_node_min":            spec.MinNodes,
			"eks_node_max":            spec.MaxNodes,
			"eks_node_disk_size":      spec.DiskSizeGB,
			"nat_enabled":             spec.NATEnabled,
			"efs_enabled":             spec.EFSEnabled,
			"vpn_enabled":             spec.VPNEnabled,
		},
		Outputs: map[string]string{
			"cluster_name":     fmt.Sprintf("officeless-%s-cluster", envName),
			"cluster_region":   "ap-southeast-1",
			"cluster_endpoint": fmt.Sprintf("https://mock-%s.eks.ap-southeast-1.amazonaws.com", envName),
		},
	}

	return subscription.PlanSnapshot{
		Summary:   summary,
		Resources: resources,
	}, nil
}
