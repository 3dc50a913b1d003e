package constants

const (
	// SchemaVersion is written into every persisted blob envelope.
	SchemaVersion = 1

	// Persisted state keys
	KeyStudents  = "students"
	KeyRules     = "rules"
	KeyShop      = "shop"
	KeyRecords   = "records"
	KeyConfig    = "config"
	KeyActivated = "activated"

	// RedisKeyPrefix namespaces every key written to Redis.
	RedisKeyPrefix = "petgarden:"
)

// StateKeys lists every persisted key in load order.
var StateKeys = []string{KeyStudents, KeyRules, KeyShop, KeyRecords, KeyConfig, KeyActivated}
