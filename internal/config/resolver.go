package config

// Resolve returns flagValue when set, falling back to the config file value.
// Precedence: CLI flag > .fbrelease.yaml > zero value.
func Resolve(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

// ResolveList returns flagValues when non-empty, falling back to the config
// file list.
func ResolveList(flagValues, configValues []string) []string {
	if len(flagValues) > 0 {
		return flagValues
	}
	return configValues
}
