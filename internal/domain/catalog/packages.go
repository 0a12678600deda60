package catalog

// ProductPackage is a sellable tier of the product. MonthlyPriceIDR is
// nil for tiers priced by need assessment.
type ProductPackage struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MonthlyPriceIDR *int64 `json:"monthlyPriceIdr"`
	Description     string `json:"description"`
}

func idr(v int64) *int64 { return &v }

var packages = []ProductPackage{
	{ID: "student", Name: "Student", MonthlyPriceIDR: idr(0), Description: "For students and learning"},
	{ID: "essentials", Name: "Essentials", MonthlyPriceIDR: idr(1_500_000), Description: "Essential features"},
	{ID: "starter", Name: "Starter", MonthlyPriceIDR: idr(5_000_000), Description: "Small teams"},
	{ID: "growth", Name: "Growth", MonthlyPriceIDR: idr(15_000_000), Description: "Growing businesses"},
	{ID: "pro", Name: "Pro", MonthlyPriceIDR: idr(50_000_000), Description: "Professional tier"},
	{ID: "ultimate", Name: "Ultimate", MonthlyPriceIDR: idr(150_000_000), Description: "Full capability"},
	{ID: "enterprise", Name: "Enterprise", MonthlyPriceIDR: nil, Description: "Need assessment"},
}

// Packages returns all sellable packages in display order.
func Packages() []ProductPackage {
	out := make([]ProductPackage, len(packages))
	copy(out, packages)
	return out
}

// PackageByID returns the package with the given ID, or false when no
// such package exists.
func PackageByID(id string) (ProductPackage, bool) {
	for _, p := range packages {
		if p.ID == id {
			return p, true
		}
	}
	return ProductPackage{}, false
}

// IsValidPackageID reports whether id names a known package.
func IsValidPackageID(id string) bool {
	_, ok := PackageByID(id)
	return ok
}
