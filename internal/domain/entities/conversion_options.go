package entities

const (
	// DefaultConfiguration is the Gradle configuration used when nothing else applies.
	DefaultConfiguration = "implementation"

	// DefaultDialect is the build script dialect used when nothing else applies.
	DefaultDialect = "groovy"
)

// ConversionOptions holds runtime options passed to the convert command.
type ConversionOptions struct {
	Dialect       string // renderer name (e.g. "groovy", "kotlin")
	Configuration string // Gradle configuration keyword
	MapScopes     bool   // derive the configuration from the Maven scope
	StrictVersion bool   // treat an empty <version/> as a missing field
}

// NewConversionOptions returns the options that reproduce the plain
// `implementation "group:artifact:version"` output.
func NewConversionOptions() ConversionOptions {
	return ConversionOptions{
		Dialect:       DefaultDialect,
		Configuration: DefaultConfiguration,
	}
}
