package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/noteui/androidutil"
	"github.com/noteui/androidutil/app/config"
	"github.com/noteui/androidutil/filesystem"
	"github.com/noteui/androidutil/infra/buildinfo"
	"github.com/noteui/androidutil/text"
	"github.com/noteui/androidutil/util/errutil"
	"github.com/noteui/androidutil/util/log"
)

const Title = "uimetrics"

const (
	flagNameConfig   = "config"
	flagNameLogFile  = "logfile"
	flagNameLogLevel = "loglevel"
	flagNameDensity  = "density"
	flagNameWidth    = "width"
	flagNameHeight   = "height"
	flagNameVersion  = "version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configFile  string
	showVersion bool
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *options) {
	fs := flag.NewFlagSet(Title, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printHelp(fs, stderr) }

	opts := &options{}
	defaults := config.NewConfig()
	fs.StringVar(&opts.configFile, flagNameConfig, config.ConfigFile, "`config-file` in toml, or yaml by .yaml extension.")
	fs.String(flagNameLogFile, defaults.LogFile, "`output-file` to write log. { stdout | stderr } is OK.")
	fs.String(flagNameLogLevel, defaults.LogLevel, "`level` = { info | debug }.")
	fs.Float64(flagNameDensity, float64(defaults.Display.Density), "display `density` in px per dp.")
	fs.Int(flagNameWidth, defaults.Display.Width, "display `width` in px.")
	fs.Int(flagNameHeight, defaults.Display.Height, "display `height` in px.")
	fs.BoolVar(&opts.showVersion, flagNameVersion, false, "show version info and quit.")
	return fs, opts
}

// loadConfig reads file when it exists, otherwise returns default config.
func loadConfig(file string) (*config.Config, error) {
	if !filesystem.Exist(file) {
		return config.NewConfig(), nil
	}
	return config.LoadConfig(file)
}

// overwriteConfigByFlag applies flags set explicitly in command line.
func overwriteConfigByFlag(conf *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch v := getter.Get(); f.Name {
		case flagNameLogFile:
			conf.LogFile = v.(string)
		case flagNameLogLevel:
			conf.LogLevel = v.(string)
		case flagNameDensity:
			conf.Display.Density = float32(v.(float64))
		case flagNameWidth:
			conf.Display.Width = v.(int)
		case flagNameHeight:
			conf.Display.Height = v.(int)
		}
	})
}

func run(args []string, stdout, stderr io.Writer) int {
	fs, opts := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, buildinfo.Get())
		return 0
	}

	conf, err := loadConfig(opts.configFile)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	overwriteConfigByFlag(conf, fs)
	if err := conf.Validate(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	finalize, err := config.SetupLogConfig(conf)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	defer finalize()

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	display := androidutil.NewDisplay(conf.Metrics())
	w := errutil.NewErrWriter(stdout)
	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	if cmd == "watch" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = watch(ctx, w, display, opts.configFile, func(c *config.Config) {
			overwriteConfigByFlag(c, fs)
		})
	} else {
		err = runCommand(w, display, conf, cmd, cmdArgs)
	}
	if err == nil {
		err = w.Err()
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

var errUsage = errors.New("invalid usage")

func parseFloats(args []string) ([]float32, error) {
	fs := make([]float32, 0, len(args))
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		fs = append(fs, float32(f))
	}
	return fs, nil
}

func runCommand(w io.Writer, display *androidutil.Display, conf *config.Config, cmd string, args []string) error {
	m := display.Metrics()
	switch cmd {
	case "dp":
		values, err := parseFloats(args)
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Fprintf(w, "%gdp = %dpx\n", v, m.Dp(v))
		}
	case "px":
		for _, a := range args {
			px, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}
			fmt.Fprintf(w, "%dpx = %gdp\n", px, m.ToDp(px))
		}
	case "lerp":
		values, err := parseFloats(args)
		if err != nil {
			return err
		}
		if len(values) != 3 {
			return fmt.Errorf("%w: lerp requires a b f", errUsage)
		}
		fmt.Fprintf(w, "%g\n", androidutil.Lerp(values[0], values[1], values[2]))
	case "rtl":
		for _, a := range args {
			fmt.Fprintf(w, "%q: %v\n", a, androidutil.IsRTL(a))
		}
	case "dir":
		cache := text.NewDirectionCache(conf.DirectionCacheSize)
		for _, a := range args {
			fmt.Fprintf(w, "%q: %v\n", a, cache.Direction(a))
		}
	case "width":
		for _, a := range args {
			fmt.Fprintf(w, "%q: %d\n", a, text.StringWidth(a))
		}
	case "size":
		printMetrics(w, m)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	return nil
}

func printMetrics(w io.Writer, m androidutil.Metrics) {
	wdp, hdp := m.DisplaySizeDp()
	fmt.Fprintf(w, "density: %g (%gdpi)\n", m.PxPerDp(), m.DPI())
	fmt.Fprintf(w, "display: %dx%dpx (%gx%gdp)\n", m.DisplaySize.X, m.DisplaySize.Y, wdp, hdp)
}

// watch prints metrics each time the config file changes.
// adjust is applied to every reloaded config before it takes effect,
// so that command line flags keep precedence over the file.
func watch(ctx context.Context, w io.Writer, display *androidutil.Display, file string, adjust func(*config.Config)) error {
	if !filesystem.Exist(file) {
		return fmt.Errorf("%w: watch needs an existing config file, %s not found", errUsage, file)
	}
	remove := display.AddListener(androidutil.MetricsListenerFunc(func(_, m androidutil.Metrics) {
		printMetrics(w, m)
	}))
	defer remove()
	printMetrics(w, display.Metrics())
	return config.Watch(ctx, file, func(c *config.Config, err error) {
		if err != nil {
			log.Infof("config reload failed: %v", err)
			return
		}
		if adjust != nil {
			adjust(c)
			if err := c.Validate(); err != nil {
				log.Infof("config reload failed: %v", err)
				return
			}
		}
		display.SetMetrics(c.Metrics())
	})
}

func printHelp(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `Usage: %s [options] command [args...]

  %s converts sizes between dp and px for the display described
  by '%s' and options, and inspects text direction.

Commands:
  dp values...   convert dp into px, rounded up
  px values...   convert px into dp
  lerp a b f     interpolate between a and b
  rtl texts...   report Hebrew or Arabic letters
  dir texts...   report base direction by bidi class
  width texts... report east asian width in cells
  size           show display metrics
  watch          show display metrics on every config change,
                 options above still override the reloaded file

Options:
`, Title, Title, config.ConfigFile)
	fs.PrintDefaults()
}
