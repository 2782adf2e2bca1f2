package output

// ConfigPort reads process configuration. Missing or malformed values fall
// back to the given default.
type ConfigPort interface {
	Get(key string) string
	GetWithDefault(key string, defaultValue string) string
	GetBool(key string, defaultValue bool) bool
	GetInt(key string, defaultValue int) int
}
