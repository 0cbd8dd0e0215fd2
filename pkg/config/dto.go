package config

// FileConfig is the on-disk shape of an nfsf config file. The same struct
// decodes from TOML and YAML. Zero values mean "not set".
type FileConfig struct {
	Root     string `toml:"root" yaml:"root"`
	Format   string `toml:"format" yaml:"format"`
	MaxDepth int    `toml:"max_depth" yaml:"max_depth"`
	MaxPairs int    `toml:"max_pairs" yaml:"max_pairs"`
	Policy   string `toml:"policy" yaml:"policy"`
	Graph    bool   `toml:"graph" yaml:"graph"`

	Render RenderConfig `toml:"render" yaml:"render"`
}

// RenderConfig holds drawing options.
type RenderConfig struct {
	Width       int     `toml:"width" yaml:"width"`
	Height      int     `toml:"height" yaml:"height"`
	Stroke      string  `toml:"stroke" yaml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width" yaml:"stroke_width"`
	Fit         bool    `toml:"fit" yaml:"fit"`
	Margin      float64 `toml:"margin" yaml:"margin"`
	PNGScale    float64 `toml:"png_scale" yaml:"png_scale"`
}
