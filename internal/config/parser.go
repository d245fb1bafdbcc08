package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")))
			continue
		}

		// Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		var err error
		switch currentSection {
		case "":
			err = setRootField(cfg, key, value)
		case "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case "clipboard":
			err = setClipboardField(&cfg.Clipboard, key, value)
		default:
			// Unknown sections are ignored so newer files still load.
			continue
		}
		if err != nil {
			if currentSection == "" {
				return nil, fmt.Errorf("line %d: error in root section: %w", lineNo, err)
			}
			return nil, fmt.Errorf("line %d: error in section [%s]: %w", lineNo, currentSection, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "output":
		cfg.Output = value
	case "save_dir":
		cfg.SaveDir = value
	case "timeout":
		d, err := parseDuration(key, value)
		if err != nil {
			return err
		}
		cfg.Timeout = d
	case "flip":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		cfg.Flip = b
	case "screen_method":
		cfg.ScreenMethod = value
	case "compression":
		cfg.Compression = value
	case "log_level":
		cfg.LogLevel = value
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := parseBool(key, value)
	if err != nil {
		return err
	}
	switch strings.ToLower(key) {
	case "capture":
		n.Capture = b
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func setClipboardField(c *Clipboard, key, value string) error {
	switch strings.ToLower(key) {
	case "copy":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Copy = b
	case "hold":
		d, err := parseDuration(key, value)
		if err != nil {
			return err
		}
		c.Hold = d
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	return b, nil
}

// parseDuration accepts Go durations and bare integers as milliseconds.
func parseDuration(key, value string) (time.Duration, error) {
	if ms, err := strconv.ParseUint(value, 10, 32); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for key %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid duration for key %s: must not be negative", key)
	}
	return d, nil
}
