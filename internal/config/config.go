package config

import (
	"fmt"
	"strings"
	"time"
)

// Default values used when neither the command line nor the config file
// provide one.
const (
	DefaultOutput        = "screenshot.png"
	DefaultTimeout       = 2000 * time.Millisecond
	DefaultClipboardHold = 10 * time.Second
	DefaultLogLevel      = "warning"
)

// Notify holds notification settings.
type Notify struct {
	Capture bool
	Save    bool
	Copy    bool
}

// Clipboard holds clipboard settings.
type Clipboard struct {
	Copy bool
	Hold time.Duration
}

// Config holds the application configuration.
type Config struct {
	Output       string
	SaveDir      string
	Timeout      time.Duration
	Flip         bool
	ScreenMethod string
	Compression  string
	LogLevel     string
	Notify       Notify
	Clipboard    Clipboard
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Output:   DefaultOutput,
		Timeout:  DefaultTimeout,
		Flip:     true,
		LogLevel: DefaultLogLevel,
		Clipboard: Clipboard{
			Hold: DefaultClipboardHold,
		},
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Output != "" {
		fmt.Fprintf(&sb, "output = %s\n", c.Output)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	fmt.Fprintf(&sb, "timeout = %s\n", c.Timeout)
	fmt.Fprintf(&sb, "flip = %v\n", c.Flip)
	if c.ScreenMethod != "" {
		fmt.Fprintf(&sb, "screen_method = %s\n", c.ScreenMethod)
	}
	if c.Compression != "" {
		fmt.Fprintf(&sb, "compression = %s\n", c.Compression)
	}
	if c.LogLevel != "" {
		fmt.Fprintf(&sb, "log_level = %s\n", c.LogLevel)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "capture = %v\n", c.Notify.Capture)
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	sb.WriteString("[clipboard]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Clipboard.Copy)
	fmt.Fprintf(&sb, "hold = %s\n", c.Clipboard.Hold)

	return sb.String()
}
