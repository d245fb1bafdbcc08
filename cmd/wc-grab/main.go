package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/PurpleSec/logx"

	"github.com/example/wc-grab/internal/config"
	"github.com/example/wc-grab/internal/notify"
)

var (
	version            = "dev"
	configPathOverride = ""
)

// EnvOutput overrides the configured output path.
const EnvOutput = "WCGRAB_OUTPUT"

type runnable interface{ Run() error }

type root struct {
	fs       *flag.FlagSet
	program  string
	config   *config.Config
	notifier *notify.Notifier
	log      logx.Log
	stdout   io.Writer
	stderr   io.Writer

	output        string
	showVersion   bool
	timeout       time.Duration
	flip          bool
	list          bool
	compression   string
	toClipboard   bool
	clipboardHold time.Duration
	captureAlerts bool
	saveAlerts    bool
	copyAlerts    bool
	logLevel      string
	debug         bool
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot(stdout, stderr io.Writer) *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:      flag.NewFlagSet("wc-grab", flag.ContinueOnError),
		program: "wc-grab",
		config:  cfg,
		log:     logx.NOP,
		stdout:  stdout,
		stderr:  stderr,
	}
	r.fs.SetOutput(stderr)

	// Precedence: CLI > Env > Config > Default
	output := cfg.Output
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		output = v
	}
	r.fs.StringVar(&r.output, "output", output, "write the capture to this file path")
	r.fs.StringVar(&r.output, "o", output, "write the capture to this file path (shorthand)")
	r.fs.BoolVar(&r.showVersion, "version", false, "print the version and exit")
	r.fs.BoolVar(&r.showVersion, "v", false, "print the version and exit (shorthand)")
	r.fs.DurationVar(&r.timeout, "timeout", cfg.Timeout, "how long to wait for each D-Bus reply")
	r.fs.BoolVar(&r.flip, "flip", cfg.Flip, "flip the captured frame vertically")
	r.fs.BoolVar(&r.list, "list", strings.EqualFold(cfg.ScreenMethod, "list"), "discover the output with List instead of ActiveScreen")
	r.fs.StringVar(&r.compression, "compression", firstNonEmpty(cfg.Compression, "default"), "PNG compression: default, none, fast or best")
	r.fs.BoolVar(&r.toClipboard, "clipboard", cfg.Clipboard.Copy, "also copy the capture to the clipboard")
	r.fs.BoolVar(&r.toClipboard, "c", cfg.Clipboard.Copy, "also copy the capture to the clipboard (shorthand)")
	r.fs.DurationVar(&r.clipboardHold, "clipboard-hold", cfg.Clipboard.Hold, "how long to keep serving the clipboard")
	r.fs.BoolVar(&r.captureAlerts, "notify-capture", cfg.Notify.Capture, "show a desktop notification after capturing")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.StringVar(&r.logLevel, "log-level", firstNonEmpty(cfg.LogLevel, config.DefaultLogLevel), "log level: trace, debug, info, warning or error")
	r.fs.BoolVar(&r.debug, "debug", false, "shorthand for -log-level debug")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return &flagError{err: err}
	}
	if r.showVersion {
		return (&versionCmd{r: r}).Run()
	}

	level := r.logLevel
	if r.debug {
		level = "debug"
	}
	log, err := newLogger(r.stderr, level)
	if err != nil {
		return err
	}
	r.log = log
	r.notifier = notify.New(notify.LoadPreferences(), log)
	r.notifier.Enable(notify.EventCapture, r.captureAlerts)
	r.notifier.Enable(notify.EventSave, r.saveAlerts)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)

	var cmd runnable
	if r.fs.NArg() == 0 {
		cmd = &grabCmd{root: r}
	} else {
		switch r.fs.Arg(0) {
		case "config":
			cmd, err = parseConfigCmd(r.fs.Args()[1:], r)
		case "version":
			cmd = &versionCmd{r: r}
		default:
			err = &UsageError{of: r}
		}
		if err != nil {
			return err
		}
	}
	return cmd.Run()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	r := newRoot(stdout, stderr)
	err := r.Run(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	var ferr *flagError
	if errors.As(err, &ferr) {
		// the flag set already printed the problem and the usage text
		return 2
	}
	var uerr *UsageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(stderr, uerr.Error())
		return 2
	}
	fmt.Fprintf(stderr, "%s: %v\n", r.program, err)
	return 1
}
