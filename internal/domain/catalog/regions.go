package catalog

// AWSRegion is a deployable AWS region.
type AWSRegion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var awsRegions = []AWSRegion{
	{ID: "us-east-1", Name: "US East (N. Virginia)"},
	{ID: "us-east-2", Name: "US East (Ohio)"},
	{ID: "us-west-1", Name: "US West (N. California)"},
	{ID: "us-west-2", Name: "US West (Oregon)"},
	{ID: "eu-west-1", Name: "Europe (Ireland)"},
	{ID: "eu-central-1", Name: "Europe (Frankfurt)"},
	{ID: "ap-southeast-1", Name: "Asia Pacific (Singapore)"},
	{ID: "ap-southeast-3", Name: "Asia Pacific (Jakarta)"},
	{ID: "ap-northeast-1", Name: "Asia Pacific (Tokyo)"},
	{ID: "ap-southeast-2", Name: "Asia Pacific (Sydney)"},
}

// AWSRegions returns the deployable regions in display order.
func AWSRegions() []AWSRegion {
	out := make([]AWSRegion, len(awsRegions))
	copy(out, awsRegions)
	return out
}

// IsValidAWSRegion reports whether id names a deployable region.
func IsValidAWSRegion(id string) bool {
	for _, r := range awsRegions {
		if r.ID == id {
			return true
		}
	}
	return false
}
