package collections

// DefaultName is the display name used when [Config.Name] is empty.
const DefaultName = "Collection"

// Config holds the presentation settings of a [Collection].
type Config struct {
	// Name prefixes the display string: "<Name> elements: [...]".
	// Defaults to [DefaultName] if empty.
	Name string
}

// DefaultConfig returns a [Config] populated with the defaults.
func DefaultConfig() Config {
	return Config{Name: DefaultName}
}

func (cfg Config) withDefaults() Config {
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	return cfg
}
