package commands

// ConfigurationFor exports configurationFor for testing.
var ConfigurationFor = configurationFor //nolint:gochecknoglobals // test export
