package catalog

// AWSMode describes how access to the customer's AWS environment is
// provisioned.
type AWSMode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var awsModes = []AWSMode{
	{ID: "A", Name: "New AWS account", Description: "We create a new account via AWS Organizations. Best isolation."},
	{ID: "B", Name: "Existing account (credentials)", Description: "You provide Access Key/Secret. Not recommended; prefer C."},
	{ID: "C", Name: "Existing account (OIDC role)", Description: "You create IAM role with trust to our OIDC. Recommended."},
}

// AWSModes returns the supported provisioning modes.
func AWSModes() []AWSMode {
	out := make([]AWSMode, len(awsModes))
	copy(out, awsModes)
	return out
}

// IsValidAWSMode reports whether id names a supported mode.
func IsValidAWSMode(id string) bool {
	for _, m := range awsModes {
		if m.ID == id {
			return true
		}
	}
	return false
}
