package config

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// RAYCASTER_RENDER_WIDTH=800
const EnvPrefix = "RAYCASTER"

// Config holds the raycaster settings
type Config struct {
	Render RenderConfig `yaml:"render" mapstructure:"render"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Scene  SceneConfig  `yaml:"scene" mapstructure:"scene"`
}

// RenderConfig controls image size and parallelism
type RenderConfig struct {
	Width    int `yaml:"width" mapstructure:"width"`
	Height   int `yaml:"height" mapstructure:"height"`
	Workers  int `yaml:"workers" mapstructure:"workers"` // 0 means one per CPU
	TileSize int `yaml:"tile_size" mapstructure:"tile_size"`
}

// OutputConfig controls where rendered images are written
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// ServerConfig controls the HTTP render server
type ServerConfig struct {
	Port      int `yaml:"port" mapstructure:"port"`
	MaxWidth  int `yaml:"max_width" mapstructure:"max_width"`
	MaxHeight int `yaml:"max_height" mapstructure:"max_height"`
}

// SceneConfig selects the scene to render. File takes precedence over Name.
// Dir holds YAML scene files offered by the server as "file:<name>".
type SceneConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
	File string `yaml:"file" mapstructure:"file"`
	Dir  string `yaml:"dir" mapstructure:"dir"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Width:    400,
			Height:   225,
			Workers:  0,
			TileSize: 32,
		},
		Output: OutputConfig{
			Dir: "output",
		},
		Server: ServerConfig{
			Port:      8080,
			MaxWidth:  1920,
			MaxHeight: 1080,
		},
		Scene: SceneConfig{
			Name: "default",
			Dir:  "scenes",
		},
	}
}

// SetDefaults registers the default configuration with v so that every key
// is known to viper, which AutomaticEnv needs to resolve nested keys.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("render.width", d.Render.Width)
	v.SetDefault("render.height", d.Render.Height)
	v.SetDefault("render.workers", d.Render.Workers)
	v.SetDefault("render.tile_size", d.Render.TileSize)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.max_width", d.Server.MaxWidth)
	v.SetDefault("server.max_height", d.Server.MaxHeight)
	v.SetDefault("scene.name", d.Scene.Name)
	v.SetDefault("scene.file", d.Scene.File)
	v.SetDefault("scene.dir", d.Scene.Dir)
}

// Load reads configuration into v from the optional YAML file at path and
// from RAYCASTER_* environment variables. Flags bound to v before calling
// Load take precedence over both.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &config, nil
}

// Validate checks the configuration for values the renderer cannot use
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Workers < 0 {
		return errors.Errorf("workers cannot be negative, got %d", c.Render.Workers)
	}
	if c.Render.TileSize <= 0 {
		return errors.Errorf("tile size must be positive, got %d", c.Render.TileSize)
	}
	if c.Output.Dir == "" {
		return errors.New("output directory cannot be empty")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Errorf("server port out of range: %d", c.Server.Port)
	}
	if c.Server.MaxWidth <= 0 || c.Server.MaxHeight <= 0 {
		return errors.Errorf("server size limits must be positive, got %dx%d", c.Server.MaxWidth, c.Server.MaxHeight)
	}
	if c.Scene.Name == "" && c.Scene.File == "" {
		return errors.New("either scene name or scene file must be set")
	}
	return nil
}

// WorkerCount resolves the configured worker count, 0 meaning one per CPU
func (c RenderConfig) WorkerCount() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}
