package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/PurpleSec/logx"
)

func parseLogLevel(name string) (logx.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return logx.Trace, nil
	case "debug":
		return logx.Debug, nil
	case "info":
		return logx.Info, nil
	case "", "warn", "warning":
		return logx.Warning, nil
	case "error":
		return logx.Error, nil
	default:
		return logx.Warning, fmt.Errorf("unknown log level %q", name)
	}
}

func newLogger(w io.Writer, level string) (logx.Log, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	l := logx.Writer(w, lvl)
	l.SetPrefix("wc-grab")
	return l, nil
}
