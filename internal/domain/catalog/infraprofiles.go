package catalog

// InfraProfile is a named sizing template for a customer environment.
type InfraProfile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	TargetPackages string `json:"targetPackages"`
}

// InfraProfileSpec carries the concrete sizing values a profile pins
// down. Plan generation and cost estimation both read from it so the
// two always agree on node counts and add-on flags.
type InfraProfileSpec struct {
	InstanceTypes []string
	DesiredNodes  int
	MinNodes      int
	MaxNodes      int
	DiskSizeGB    int
	NATEnabled    bool
	EFSEnabled    bool
	VPNEnabled    bool
}

var infraProfiles = []InfraProfile{
	{ID: "P0", Name: "P0 — Trial / Sandbox", Description: "Single AZ, 1× t3a.medium, 50GB. Demos, PoC, free trial.", TargetPackages: "Trial"},
	{ID: "P1", Name: "P1 — Essentials", Description: "2× t3a.medium, 1 NAT, 2× 50GB. Essentials/Starter.", TargetPackages: "Essentials / Starter"},
	{ID: "P2", Name: "P2 — Starter/Growth", Description: "2× t3a.large, 1 NAT, 2× 100GB, optional EFS.", TargetPackages: "Starter / Growth"},
	{ID: "P3", Name: "P3 — Pro", Description: "3× t3a.large, 3× 150GB. Optional Valkey.", TargetPackages: "Pro"},
	{ID: "P4", Name: "P4 — Ultimate", Description: "4–6× t3a.large, scaled storage. Cap at 6 nodes.", TargetPackages: "Ultimate"},
}

var infraProfileSpecs = map[string]InfraProfileSpec{
	"P0": {InstanceTypes: []string{"t3a.medium"}, DesiredNodes: 1, MinNodes: 1, MaxNodes: 2, DiskSizeGB: 50},
	"P1": {InstanceTypes: []string{"t3a.medium"}, DesiredNodes: 2, MinNodes: 2, MaxNodes: 4, DiskSizeGB: 50, NATEnabled: true},
	"P2": {InstanceTypes: []string{"t3a.large"}, DesiredNodes: 2, MinNodes: 2, MaxNodes: 4, DiskSizeGB: 100, NATEnabled: true, EFSEnabled: true},
	"P3": {InstanceTypes: []string{"t3a.large"}, DesiredNodes: 3, MinNodes: 3, MaxNodes: 6, DiskSizeGB: 150, NATEnabled: true, EFSEnabled: true},
	"P4": {InstanceTypes: []string{"t3a.large"}, DesiredNodes: 4, MinNodes: 4, MaxNodes: 6, DiskSizeGB: 150, NATEnabled: true, EFSEnabled: true},
}

// InfraProfiles returns all sizing profiles in display order.
func InfraProfiles() []InfraProfile {
	out := make([]InfraProfile, len(infraProfiles))
	copy(out, infraProfiles)
	return out
}

// InfraProfileByID returns the profile with the given ID.
func InfraProfileByID(id string) (InfraProfile, bool) {
	for _, p := range infraProfiles {
		if p.ID == id {
			return p, true
		}
	}
	return InfraProfile{}, false
}

// InfraProfileSpecByID returns the concrete sizing values for a profile.
func InfraProfileSpecByID(id string) (InfraProfileSpec, bool) {
	spec, ok := infraProfileSpecs[id]
	return spec, ok
}

// IsValidInfraProfileID reports whether id names a known profile.
func IsValidInfraProfileID(id string) bool {
	_, ok := infraProfileSpecs[id]
	return ok
}
