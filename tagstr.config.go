package tagstr

import "gopkg.in/yaml.v3"

// CacheConfig configures a tag's static cache.
type CacheConfig struct {
	// MaxEntries is the maximum number of memoized static states held
	// per tag. When full, the oldest entry is evicted and its template
	// recomputed on next use. Default: 1024.
	MaxEntries int `yaml:"max_entries" json:"max_entries"`
}

// DefaultCacheConfig returns sensible defaults for the static cache.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		MaxEntries: DefaultMaxEntries,
	}
}

// Validate checks the config for out-of-range values.
func (c CacheConfig) Validate() error {
	if c.MaxEntries < 0 {
		return NewConfigError(ErrMsgConfigMaxEntries, nil)
	}
	return nil
}

// ParseCacheConfig parses a YAML cache config document. Omitted fields
// keep their defaults:
//
//	max_entries: 256
func ParseCacheConfig(data []byte) (CacheConfig, error) {
	config := DefaultCacheConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return CacheConfig{}, NewConfigError(ErrMsgConfigParse, err)
	}
	if err := config.Validate(); err != nil {
		return CacheConfig{}, err
	}
	return config, nil
}
