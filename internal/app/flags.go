package app

import (
	"fmt"
	"math"
	"strings"

	"maze-caster/internal/core"
	"maze-caster/pkg/maze"

	"github.com/jinzhu/copier"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CASTER_SCREEN_WIDTH.
const EnvPrefix = "CASTER"

// Config represents the command-line parameters shared by every front end.
// Fields named like core.Config are copied onto it by Render.
type Config struct {
	ConfigFile string  `mapstructure:"config"`
	MazePath   string  `mapstructure:"maze"`
	Generate   bool    `mapstructure:"generate"`
	MazeWidth  int     `mapstructure:"maze-width"`
	MazeHeight int     `mapstructure:"maze-height"`
	Braiding   float64 `mapstructure:"braiding"`
	Seed       int64   `mapstructure:"seed"`
	TPS        int     `mapstructure:"tps"`
	Debug      bool    `mapstructure:"debug"`
	View       string  `mapstructure:"view"`

	ScreenWidth      int     `mapstructure:"screen-width"`
	ScreenHeight     int     `mapstructure:"screen-height"`
	FOVDegrees       float64 `mapstructure:"fov"`
	StepSize         float64 `mapstructure:"step"`
	MoveSpeed        float64 `mapstructure:"move-speed"`
	RotateSpeed      float64 `mapstructure:"rotate-speed"`
	MouseSensitivity float64 `mapstructure:"mouse-sensitivity"`
	MaxDistance      float64 `mapstructure:"max-distance"`
	WallScale        float64 `mapstructure:"wall-scale"`
	ShadeDistance    float64 `mapstructure:"shade-distance"`
	TraceRays        int     `mapstructure:"trace-rays"`
	MinimapScale     int     `mapstructure:"minimap-scale"`
	Workers          int     `mapstructure:"workers"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	rc := core.DefaultConfig()
	c := &Config{
		MazeWidth:  31,
		MazeHeight: 21,
		Braiding:   0.2,
		Seed:       42,
		TPS:        60,
		View:       core.TopDown.String(),
	}
	if err := copier.Copy(c, &rc); err != nil {
		panic(err)
	}
	c.FOVDegrees = rc.FOV * 180 / math.Pi
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&c.ConfigFile, "config", "c", c.ConfigFile, "config file (yaml, toml or json)")
	fs.StringVarP(&c.MazePath, "maze", "m", c.MazePath, "maze file; the embedded maze when empty")
	fs.BoolVarP(&c.Generate, "generate", "g", c.Generate, "generate a maze instead of loading one")
	fs.IntVar(&c.MazeWidth, "maze-width", c.MazeWidth, "generated maze width in cells")
	fs.IntVar(&c.MazeHeight, "maze-height", c.MazeHeight, "generated maze height in cells")
	fs.Float64Var(&c.Braiding, "braiding", c.Braiding, "chance a generated dead end becomes a loop")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for maze generation")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.StringVar(&c.View, "view", c.View, "initial view: 2D or 3D")

	fs.IntVar(&c.ScreenWidth, "screen-width", c.ScreenWidth, "framebuffer width in pixels")
	fs.IntVar(&c.ScreenHeight, "screen-height", c.ScreenHeight, "framebuffer height in pixels")
	fs.Float64Var(&c.FOVDegrees, "fov", c.FOVDegrees, "field of view in degrees")
	fs.Float64Var(&c.StepSize, "step", c.StepSize, "ray march step in world units")
	fs.Float64Var(&c.MoveSpeed, "move-speed", c.MoveSpeed, "world units per movement tick")
	fs.Float64Var(&c.RotateSpeed, "rotate-speed", c.RotateSpeed, "radians per rotation tick")
	fs.Float64Var(&c.MouseSensitivity, "mouse-sensitivity", c.MouseSensitivity, "radians per pointer pixel")
	fs.Float64Var(&c.MaxDistance, "max-distance", c.MaxDistance, "ray cutoff in world units; 0 marches to the border")
	fs.Float64Var(&c.WallScale, "wall-scale", c.WallScale, "wall height numerator; 0 uses the block size")
	fs.Float64Var(&c.ShadeDistance, "shade-distance", c.ShadeDistance, "full-brightness distance; 0 uses the block size")
	fs.IntVar(&c.TraceRays, "trace-rays", c.TraceRays, "rays drawn in the top-down view")
	fs.IntVar(&c.MinimapScale, "minimap-scale", c.MinimapScale, "minimap pixels per cell; 0 hides it")
	fs.IntVar(&c.Workers, "workers", c.Workers, "column workers; 0 uses GOMAXPROCS")
}

// LoadConfig parses args into fs and layers defaults, an optional config file,
// CASTER_* environment variables and explicitly set flags, in that order.
func LoadConfig(fs *pflag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	out := &Config{}
	if err := v.Unmarshal(out); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return out, nil
}

// Render converts the settings into a validated render configuration.
func (c *Config) Render() (core.Config, error) {
	var rc core.Config
	if err := copier.Copy(&rc, c); err != nil {
		return core.Config{}, err
	}
	rc.FOV = c.FOVDegrees * math.Pi / 180
	if err := rc.Validate(); err != nil {
		return core.Config{}, err
	}
	return rc, nil
}

// ViewMode parses the View setting.
func (c *Config) ViewMode() (core.ViewMode, error) {
	switch strings.ToUpper(c.View) {
	case "", core.TopDown.String():
		return core.TopDown, nil
	case core.FirstPerson.String():
		return core.FirstPerson, nil
	}
	return 0, fmt.Errorf("unknown view %q, want 2D or 3D", c.View)
}

// Maze loads, generates or falls back to the embedded maze.
func (c *Config) Maze() (core.Grid, error) {
	var (
		g   core.Grid
		err error
	)
	switch {
	case c.Generate:
		g = maze.Generate(maze.GenConfig{
			Width:    c.MazeWidth,
			Height:   c.MazeHeight,
			Braiding: c.Braiding,
			Walls:    []core.Symbol{'+', '#', '*', '%', '&'},
			Seed:     c.Seed,
		})
	case c.MazePath != "":
		g, err = maze.Load(c.MazePath)
	default:
		g = maze.Default()
	}
	if err != nil {
		return core.Grid{}, err
	}
	if err := maze.Validate(g); err != nil {
		return core.Grid{}, err
	}
	return g, nil
}
