package nfo

// loadConfig holds the resolved options for a single Load call.
type loadConfig struct {
	filename string
	charset  SourceCharset
	approach Approach
	lineWrap bool
}

func defaultLoadConfig() loadConfig {
	return loadConfig{
		charset:  Auto,
		approach: ApproachTry,
		lineWrap: true,
	}
}

// Option configures a Load/LoadFile call.
type Option func(*loadConfig)

// WithFilename supplies a virtual filename used by the extension-
// sensitive heuristics (.nfo/.diz/.ans) when loading from an in-memory
// buffer that has no real path of its own.
func WithFilename(name string) Option {
	return func(c *loadConfig) { c.filename = name }
}

// WithCharset selects an explicit source charset preference instead of
// AUTO detection. approach is ignored for AUTO.
func WithCharset(cs SourceCharset, approach Approach) Option {
	return func(c *loadConfig) {
		c.charset = cs
		c.approach = approach
	}
}

// WithLineWrap enables or disables the long-line wrapper (C10). Enabled
// by default.
func WithLineWrap(enabled bool) Option {
	return func(c *loadConfig) { c.lineWrap = enabled }
}

func resolveOptions(opts []Option) loadConfig {
	c := defaultLoadConfig()
	for _, o := range opts {
		o(&c)
	}
	return c
}
