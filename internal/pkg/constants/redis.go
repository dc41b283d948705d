package constants

// Redis key formats
const (
	KeyPolicyCurrent = "policy:current" // cached policy row (JSON)
)

// Cache TTLs in seconds
const (
	TTLPolicyCache = 60
)
