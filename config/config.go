package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration that can't start a game.
var ErrInvalid = errors.New("invalid config")

// Config holds the application configuration. It is loaded once at startup
// and treated as read-only afterwards.
type Config struct {
	Window    Window    `yaml:"window"`
	Game      Game      `yaml:"game"`
	Resources Resources `yaml:"resources"`
	Audio     Audio     `yaml:"audio"`
	Quotes    Quotes    `yaml:"quotes"`
	UI        UI        `yaml:"ui"`
}

type Window struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	GridSize int    `yaml:"grid_size"`
	Title    string `yaml:"title"`
}

type Game struct {
	MinSpeed     int    `yaml:"min_speed"`
	MaxSpeed     int    `yaml:"max_speed"`
	DefaultSpeed int    `yaml:"default_speed"`
	PlayerName   string `yaml:"player_name"`
}

type Resources struct {
	Directory string `yaml:"directory"`
	DBName    string `yaml:"db_name"`
	// PersistTimeoutMs bounds every score store call made from the game loop.
	PersistTimeoutMs int `yaml:"persist_timeout"`
}

type Audio struct {
	Directory string            `yaml:"directory"`
	Volume    float64           `yaml:"volume"`
	Sounds    map[string]string `yaml:"sounds"`
	Durations struct {
		Death int `yaml:"death"`
	} `yaml:"durations"`
}

type Quotes struct {
	Items       []string `yaml:"items"`
	File        string   `yaml:"file"`
	DisplayTime int      `yaml:"display_time"`
	FontSize    int      `yaml:"font_size"`
}

type UI struct {
	Fonts       Fonts       `yaml:"fonts"`
	Leaderboard Leaderboard `yaml:"leaderboard"`
	Dialog      Dialog      `yaml:"dialog"`
	KeyHelp     KeyHelp     `yaml:"key_help"`
	ScrollStep  int         `yaml:"scroll_step"`
	Colors      Colors      `yaml:"colors"`
}

type Fonts struct {
	Score            int `yaml:"score"`
	GameOver         int `yaml:"game_over"`
	LeaderboardTitle int `yaml:"leaderboard_title"`
	LeaderboardItem  int `yaml:"leaderboard_item"`
}

type Leaderboard struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	XOffset      int     `yaml:"x_offset"`
	YOffset      int     `yaml:"y_offset"`
	TitleSpacing int     `yaml:"title_spacing"`
	Spacing      int     `yaml:"spacing"`
	ItemPadding  int     `yaml:"item_padding"`
	Opacity      float64 `yaml:"opacity"`
	Limit        int     `yaml:"limit"`
}

type Dialog struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Text          string  `yaml:"text"`
	YesText       string  `yaml:"yes_text"`
	NoText        string  `yaml:"no_text"`
	TextSize      int     `yaml:"text_size"`
	ButtonWidth   int     `yaml:"button_width"`
	ButtonHeight  int     `yaml:"button_height"`
	ButtonSpacing int     `yaml:"button_spacing"`
	Opacity       float64 `yaml:"opacity"`
}

type KeyHelp struct {
	Title     string   `yaml:"title"`
	Items     []string `yaml:"items"`
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	TitleSize int      `yaml:"title_size"`
	TextSize  int      `yaml:"text_size"`
	Spacing   int      `yaml:"spacing"`
	Opacity   float64  `yaml:"opacity"`
}

// RGB is a color written as [r, g, b] in the config file.
type RGB [3]uint8

type Colors struct {
	White      RGB `yaml:"white"`
	Red        RGB `yaml:"red"`
	DarkGreen  RGB `yaml:"dark_green"`
	LightGreen RGB `yaml:"light_green"`
	DarkBG     RGB `yaml:"dark_bg"`
	Gray       RGB `yaml:"gray"`
	Panel      RGB `yaml:"panel"`
}

// GridWidth is the number of columns on the board.
func (c *Config) GridWidth() int { return c.Window.Width / c.Window.GridSize }

// GridHeight is the number of rows on the board.
func (c *Config) GridHeight() int { return c.Window.Height / c.Window.GridSize }

func (c *Config) PersistTimeout() time.Duration {
	return time.Duration(c.Resources.PersistTimeoutMs) * time.Millisecond
}

func (c *Config) DeathPause() time.Duration {
	return time.Duration(c.Audio.Durations.Death) * time.Millisecond
}

func (c *Config) FarewellDuration() time.Duration {
	return time.Duration(c.Quotes.DisplayTime) * time.Millisecond
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error; found reports whether the file existed.
func Load(path string) (cfg *Config, found bool, err error) {
	cfg = Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, false, nil
		}
		return nil, false, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, true, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

// Validate checks the values the game loop relies on.
func (c *Config) Validate() error {
	switch {
	case c.Window.GridSize <= 0:
		return errors.Wrap(ErrInvalid, "window.grid_size must be positive")
	case c.GridWidth() < 1 || c.GridHeight() < 1:
		return errors.Wrapf(ErrInvalid, "window %dx%d holds no %dpx cell",
			c.Window.Width, c.Window.Height, c.Window.GridSize)
	case c.Game.MinSpeed < 1:
		return errors.Wrap(ErrInvalid, "game.min_speed must be at least 1")
	case c.Game.MinSpeed > c.Game.MaxSpeed:
		return errors.Wrapf(ErrInvalid, "game.min_speed %d above max_speed %d", c.Game.MinSpeed, c.Game.MaxSpeed)
	case c.Game.DefaultSpeed < c.Game.MinSpeed || c.Game.DefaultSpeed > c.Game.MaxSpeed:
		return errors.Wrapf(ErrInvalid, "game.default_speed %d outside [%d, %d]",
			c.Game.DefaultSpeed, c.Game.MinSpeed, c.Game.MaxSpeed)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return errors.Wrapf(ErrInvalid, "audio.volume %.2f outside [0, 1]", c.Audio.Volume)
	case len(c.Quotes.Items) == 0:
		return errors.Wrap(ErrInvalid, "quotes.items is empty")
	case c.Resources.PersistTimeoutMs <= 0:
		return errors.Wrapf(ErrInvalid, "resources.persist_timeout %dms must be positive", c.Resources.PersistTimeoutMs)
	case c.UI.Leaderboard.Limit < 1:
		return errors.Wrap(ErrInvalid, "ui.leaderboard.limit must be positive")
	}
	for i, q := range c.Quotes.Items {
		if strings.TrimSpace(q) == "" {
			return errors.Wrapf(ErrInvalid, "quotes.items[%d] is blank", i)
		}
	}
	return nil
}
