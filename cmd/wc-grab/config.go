package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/wc-grab/internal/capture"
	"github.com/example/wc-grab/internal/config"
)

type configCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *configCmd) Program() string {
	return c.root.program + " config"
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	c := &configCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, &flagError{err: err}
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}

	switch args[0] {
	case "print":
		return c.runPrint()
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) runPrint() error {
	_, err := fmt.Fprint(c.stdout, c.root.config.String())
	return err
}

func (c *configCmd) runSave() error {
	loader := config.NewLoader(version, configPathOverride)
	path := loader.GetConfigPath()
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return fmt.Errorf("no location to save the configuration to")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := capture.WriteFile(path, []byte(c.root.config.String())); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(c.stderr, "Configuration saved to %s\n", path)
	return nil
}
