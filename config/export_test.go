package config

// ExpandEnv exports expandEnv for testing.
var ExpandEnv = expandEnv //nolint:gochecknoglobals // test export

// FindIn exports findIn for testing.
var FindIn = findIn //nolint:gochecknoglobals // test export
