package config

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/noteui/androidutil"
	"github.com/noteui/androidutil/filesystem"
	"github.com/noteui/androidutil/infra/serialize/toml"
	"github.com/noteui/androidutil/infra/serialize/yaml"
	"github.com/noteui/androidutil/text"
	"github.com/noteui/androidutil/util/errutil"
	"github.com/noteui/androidutil/util/log"
)

const (
	// default configuration file.
	ConfigFile = "androidutil.conf"

	LogFileStdOut  = "stdout" // specify log outputs to stdout
	LogFileStdErr  = "stderr" // specify log outputs to stderr
	DefaultLogFile = LogFileStdErr

	LogLevelInfo            = "info"  // logging only information level.
	LogLevelDebug           = "debug" // logging all levels, debug and info.
	DefaultLogLevel         = LogLevelInfo
	DefaultLogLimitMegaByte = 10 // 10 * 1000 * 1000 Bytes

	DefaultDensity = androidutil.DefaultDensity
)

// Config for the application.
// To build this, use NewConfig instead of struct constructor, Config{}.
type Config struct {
	LogFile          string `toml:"logfile" yaml:"logfile"`
	LogLevel         string `toml:"loglevel" yaml:"loglevel"`
	LogLimitMegaByte int64  `toml:"loglimit_megabytes" yaml:"loglimit_megabytes"`

	Display DisplayConfig `toml:"display" yaml:"display"`

	// number of texts whose direction is memorized.
	// 0 or negative value means text.DefaultDirectionCacheSize.
	DirectionCacheSize int `toml:"direction_cache_size" yaml:"direction_cache_size"`
}

// DisplayConfig describes the display when no platform reports it,
// e.g. on desktop or in tests.
type DisplayConfig struct {
	Density float32 `toml:"density" yaml:"density"` // px per dp
	Width   int     `toml:"width" yaml:"width"`     // in px
	Height  int     `toml:"height" yaml:"height"`   // in px

	// available screen size in dp, 0 means undefined.
	ScreenWidthDp  int `toml:"screen_width_dp" yaml:"screen_width_dp"`
	ScreenHeightDp int `toml:"screen_height_dp" yaml:"screen_height_dp"`
}

func NewConfig() *Config {
	return &Config{
		LogFile:          DefaultLogFile,
		LogLevel:         DefaultLogLevel,
		LogLimitMegaByte: DefaultLogLimitMegaByte,
		Display: DisplayConfig{
			Density: DefaultDensity,
		},
		DirectionCacheSize: text.DefaultDirectionCacheSize,
	}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	me := errutil.NewMultiError()
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		me.Add(err)
	}
	d := c.Display
	if _, err := androidutil.NewMetrics(d.Density, image.Pt(d.Width, d.Height)); err != nil {
		me.Add(fmt.Errorf("display: %w", err))
	}
	if d.Width < 0 || d.Height < 0 {
		me.Add(fmt.Errorf("display: negative size %dx%d", d.Width, d.Height))
	}
	if d.ScreenWidthDp < 0 || d.ScreenHeightDp < 0 {
		me.Add(fmt.Errorf("display: negative screen size %dx%d dp", d.ScreenWidthDp, d.ScreenHeightDp))
	}
	return me.Err()
}

// Metrics returns display metrics described by the config.
func (c *Config) Metrics() androidutil.Metrics {
	d := c.Display
	info := androidutil.DisplayInfo{Density: d.Density, Size: image.Pt(d.Width, d.Height)}
	return androidutil.Reconfigure(info, &androidutil.ScreenConfig{
		WidthDp:  d.ScreenWidthDp,
		HeightDp: d.ScreenHeightDp,
	})
}

// ErrDefaultConfigGenerated implies that the specified config file is not found,
// and intead of that default config is generated and used.
var ErrDefaultConfigGenerated = errors.New("default config generated")

func isYAML(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func encodeFile(file string, c *Config) error {
	if isYAML(file) {
		return yaml.EncodeFile(file, c)
	}
	return toml.EncodeFile(file, c)
}

// LoadConfig decodes the config file, in YAML when it has .yaml or .yml
// extension, otherwise in TOML. Missing values keep defaults.
func LoadConfig(file string) (*Config, error) {
	conf := NewConfig()
	var err error
	if isYAML(file) {
		err = yaml.DecodeFile(file, conf)
	} else {
		err = toml.DecodeFile(file, conf)
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", file, err)
	}
	return conf, nil
}

// LoadConfigOrDefault loads config file if exists.
// Otherwise it writes default config to the file and returns it with ErrDefaultConfigGenerated.
func LoadConfigOrDefault(file string) (*Config, error) {
	if !filesystem.Exist(file) {
		conf := NewConfig()
		if err := encodeFile(file, conf); err != nil {
			return nil, err
		}
		return conf, ErrDefaultConfigGenerated
	}
	return LoadConfig(file)
}

// SetupLogConfig sets up the default logger and returns finalize function.
// when returned error, the finalize function is nil and need not be called.
func SetupLogConfig(conf *Config) (func(), error) {
	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		log.Infof("unknown log level(%s). use 'info' level insteadly.", conf.LogLevel)
	}
	log.SetLevel(level)

	var (
		dstString string
		writer    io.Writer
		closeFunc = func() {}
	)
	switch logfile := conf.LogFile; logfile {
	case LogFileStdOut:
		dstString = "Stdout"
		writer = os.Stdout
	case LogFileStdErr, "":
		dstString = "Stderr"
		writer = os.Stderr
	default:
		dstString = logfile
		fp, err := filesystem.Store(logfile)
		if err != nil {
			return nil, err
		}
		writer = fp
		closeFunc = func() { fp.Close() }
	}
	logLimit := conf.LogLimitMegaByte * 1000 * 1000
	if logLimit < 0 {
		logLimit = 0
	}
	log.SetOutput(log.LimitWriter(writer, logLimit))
	if err := testingLogOutput("log output sanity check..."); err != nil {
		closeFunc()
		return nil, err
	}
	log.Infof("Output log to %s", dstString)
	return closeFunc, nil
}

func testingLogOutput(msg string) error {
	log.Debug(msg)
	err := log.Err()
	switch {
	case errors.Is(err, log.ErrOutputDiscardedByLevel):
	case errors.Is(err, io.EOF):
	case err == nil:
	default:
		return fmt.Errorf("log output error: %w", err)
	}
	return nil
}
