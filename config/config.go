package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	cfgFile = "termtac/config.json"
	logFile = "termtac/debug.log"
)

const (
	OrderAscending  = "asc"
	OrderDescending = "desc"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	GridColor     int `json:"grid"`
	XColor        int `json:"x"`
	OColor        int `json:"o"`
	CursorColorBG int `json:"cursor_bg"`
	WinColorBG    int `json:"win_bg"`
	LastPlayedFG  int `json:"last_played_fg"`
}

type ConfigSymbols struct {
	X     rune `json:"x"`
	O     rune `json:"o"`
	Empty rune `json:"empty"`
}

type Theme struct {
	DrawCursorBackground bool          `json:"draw_cursor_bg"`
	HighlightLastPlayed  bool          `json:"highlight_last_played"`
	UseGridLines         bool          `json:"use_grid_lines" env:"TERMTAC_GRID"`
	Colors               ConfigColors  `json:"colors"`
	Symbols              ConfigSymbols `json:"symbols"`
}

// MoveListConfig holds settings for the move history panel.
type MoveListConfig struct {
	Order      string `json:"order" env:"TERMTAC_MOVE_ORDER"`
	ShowCoords bool   `json:"show_coords"`
}

type Config struct {
	Theme    Theme          `json:"theme"`
	MoveList MoveListConfig `json:"move_list"`
}

// InitConfig loads the config file from the XDG config dirs over the
// defaults, then applies TERMTAC_* environment overrides.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	if absPath, err := xdg.SearchConfigFile(cfgFile); err == nil {
		if err := Load(absPath, &config); err != nil {
			return nil, err
		}
	} else if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load reads a JSON config file into c and applies environment overrides.
// Fields missing from the file keep their current value.
func Load(filePath string, c *Config) error {
	if err := cleanenv.ReadConfig(filePath, c); err != nil {
		return fmt.Errorf("read config %s: %w", filePath, err)
	}
	return nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.X, c.Theme.Symbols.O, c.Theme.Symbols.Empty} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Theme.Symbols.X == c.Theme.Symbols.O {
		return &InvalidConfig{"X and O symbols must differ"}
	}
	switch c.MoveList.Order {
	case OrderAscending, OrderDescending:
	default:
		return &InvalidConfig{fmt.Sprintf("move order must be %q or %q, got %q", OrderAscending, OrderDescending, c.MoveList.Order)}
	}
	return nil
}

// Ascending reports whether the move list starts at the first move.
func (c *Config) Ascending() bool {
	return c.MoveList.Order != OrderDescending
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

// LogPath returns the path of the debug log, creating its directory.
func LogPath() (string, error) {
	return xdg.CacheFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}
