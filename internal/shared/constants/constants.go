package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"

	// Context keys
	ContextKeyAdminSubject = "admin_subject"
	ContextKeyRequestID    = "request_id"

	// Database table names
	TableCompanies        = "companies"
	TableSubscriptions    = "subscriptions"
	TableAdminActions     = "admin_actions"
	TableTermsAcceptances = "terms_acceptances"

	// TermsVersion is the currently published terms-of-service version.
	// Bump when the embedded terms document changes.
	TermsVersion = "2025-06-01"

	// TrialCapUSD is the monthly cost ceiling a plan estimate is checked
	// against before onboarding may progress.
	TrialCapUSD = 1000

	// MinContractMonths is the shortest contract a subscription may carry.
	MinContractMonths = 6

	// BackupRetentionDays is how long a recorded backup is kept before
	// lifecycle expiry.
	BackupRetentionDays = 180

	// MockAWSAccountID is the account id reported for simulated
	// environments. No real AWS account is involved.
	MockAWSAccountID = "123456789012"

	// LoginRateLimit caps login attempts per client IP within
	// LoginRateLimitWindowSeconds. Brute-force protection only; normal
	// admins never hit it.
	LoginRateLimit              = 10
	LoginRateLimitWindowSeconds = 60
)
