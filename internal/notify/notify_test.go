package notify

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PurpleSec/logx"

	"github.com/example/wc-grab/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func stubSend(t *testing.T, err error) *[]sent {
	t.Helper()
	var got []sent
	prev := send
	send = func(title, body string, opts platform.Options) error {
		s := sent{title: title, body: body, opts: opts}
		if opts.IconPath != "" {
			_, statErr := os.Stat(opts.IconPath)
			s.iconExisted = statErr == nil
		}
		got = append(got, s)
		return err
	}
	t.Cleanup(func() { send = prev })
	return &got
}

func TestDisabledEventsAreSilent(t *testing.T) {
	got := stubSend(t, nil)
	n := New(DefaultPreferences(), logx.NOP)
	if err := n.Saved(Fields{Path: "shot.png"}); err != nil {
		t.Fatalf("Saved returned error: %v", err)
	}
	if err := n.Copied(Fields{Output: "eDP-1"}); err != nil {
		t.Fatalf("Copied returned error: %v", err)
	}
	var nilNotifier *Notifier
	nilNotifier.Enable(EventCapture, true)
	if err := nilNotifier.Captured(Fields{Output: "eDP-1"}, nil); err != nil {
		t.Fatalf("nil Captured returned error: %v", err)
	}
	if len(*got) != 0 {
		t.Fatalf("expected no notifications, got %+v", *got)
	}
}

func TestSavedNotification(t *testing.T) {
	got := stubSend(t, nil)
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n := New(DefaultPreferences(), nil)
	n.Enable(EventSave, true)
	if err := n.Saved(Fields{Output: "eDP-1", Path: path}); err != nil {
		t.Fatalf("Saved returned error: %v", err)
	}
	if len(*got) != 1 {
		t.Fatalf("expected one notification, got %d", len(*got))
	}
	s := (*got)[0]
	if s.title != "wc-grab" || s.body != "Saved "+path {
		t.Fatalf("unexpected notification %+v", s)
	}
	if s.opts.IconPath != path || s.opts.Category != "transfer.complete" {
		t.Fatalf("unexpected options %+v", s.opts)
	}
}

func TestCapturedPreviewIsRemoved(t *testing.T) {
	got := stubSend(t, nil)
	n := New(DefaultPreferences(), nil)
	n.Enable(EventCapture, true)
	f := Fields{Output: "eDP-1", Resolution: "1920x1080"}
	if err := n.Captured(f, []byte("\x89PNG\r\n\x1a\n")); err != nil {
		t.Fatalf("Captured returned error: %v", err)
	}
	if len(*got) != 1 {
		t.Fatalf("expected one notification, got %d", len(*got))
	}
	s := (*got)[0]
	if s.body != "Captured eDP-1 (1920x1080)" {
		t.Fatalf("body = %q", s.body)
	}
	if s.opts.IconPath == "" || !s.iconExisted {
		t.Fatalf("expected preview icon while sending, got %+v", s)
	}
	if _, err := os.Stat(s.opts.IconPath); !os.IsNotExist(err) {
		t.Fatalf("expected preview to be removed, stat returned %v", err)
	}
}

func TestCopiedFailureIsReported(t *testing.T) {
	sentinel := errors.New("no notification daemon")
	stubSend(t, sentinel)
	n := New(DefaultPreferences(), nil)
	n.Enable(EventCopy, true)
	err := n.Copied(Fields{Output: "eDP-1"})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if !strings.Contains(err.Error(), "notification copy") {
		t.Fatalf("expected event context, got %v", err)
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("WCGRAB_NOTIFY_TITLE", "Grabber")
	t.Setenv("WCGRAB_NOTIFY_SAVE_TEXT", "Wrote {path} from {output}")
	t.Setenv("WCGRAB_NOTIFY_COPY_TEXT", "Clipboard ready")
	t.Setenv("WCGRAB_NOTIFY_CAPTURE_TEXT", "")
	prefs := LoadPreferences()
	if prefs.Title != "Grabber" {
		t.Fatalf("title = %q", prefs.Title)
	}
	if prefs.Templates[EventCapture] != "Captured {output} ({resolution})" {
		t.Fatalf("capture template = %q", prefs.Templates[EventCapture])
	}
	n := New(prefs, nil)
	f := Fields{Output: "DP-2", Path: "/tmp/a.png"}
	if got := n.body(EventSave, f); got != "Wrote /tmp/a.png from DP-2" {
		t.Fatalf("save body = %q", got)
	}
	if got := n.body(EventCopy, f); got != "Clipboard ready" {
		t.Fatalf("copy body = %q", got)
	}
}

func TestEmptyTemplateSilencesEvent(t *testing.T) {
	got := stubSend(t, nil)
	prefs := DefaultPreferences()
	prefs.Templates[EventCopy] = "  "
	n := New(prefs, nil)
	n.Enable(EventCopy, true)
	if err := n.Copied(Fields{Output: "eDP-1"}); err != nil {
		t.Fatalf("Copied returned error: %v", err)
	}
	if len(*got) != 0 {
		t.Fatalf("expected no notification, got %+v", *got)
	}
}
