// Package notify tells the desktop about finished captures.
//
// Message templates may reference {output}, {resolution} and {path}; the
// placeholders are filled from the Fields of the capture being reported.
package notify

import (
	"fmt"
	"os"
	"strings"

	"github.com/PurpleSec/logx"

	"github.com/example/wc-grab/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventCapture fires once the frame has been fetched and converted.
	EventCapture Event = "capture"
	// EventSave fires once the PNG is on disk.
	EventSave Event = "save"
	// EventCopy fires once the PNG is offered on the clipboard.
	EventCopy Event = "copy"
)

var categories = map[Event]string{
	EventCapture: "device",
	EventSave:    "transfer.complete",
	EventCopy:    "transfer.complete",
}

// Fields describe the capture a notification reports on.
type Fields struct {
	Output     string
	Resolution string
	Path       string
}

func (f Fields) expand(tmpl string) string {
	return strings.NewReplacer(
		"{output}", f.Output,
		"{resolution}", f.Resolution,
		"{path}", f.Path,
	).Replace(tmpl)
}

// Preferences hold the notification title and one template per event. An
// empty template silences its event.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

var send = platform.Notify

// DefaultPreferences returns the built-in messages.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: platform.AppName,
		Templates: map[Event]string{
			EventCapture: "Captured {output} ({resolution})",
			EventSave:    "Saved {path}",
			EventCopy:    "Copied {output} to the clipboard",
		},
	}
}

// LoadPreferences applies WCGRAB_NOTIFY_* overrides from the environment.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("WCGRAB_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for event, key := range map[Event]string{
		EventCapture: "WCGRAB_NOTIFY_CAPTURE_TEXT",
		EventSave:    "WCGRAB_NOTIFY_SAVE_TEXT",
		EventCopy:    "WCGRAB_NOTIFY_COPY_TEXT",
	} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Templates[event] = v
		}
	}
	return prefs
}

// Notifier sends desktop notifications for enabled events. A nil Notifier
// sends nothing.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	log     logx.Log
}

// New returns a Notifier with every event disabled.
func New(prefs Preferences, log logx.Log) *Notifier {
	templates := make(map[Event]string, len(prefs.Templates))
	for k, v := range prefs.Templates {
		templates[k] = v
	}
	if log == nil {
		log = logx.NOP
	}
	return &Notifier{
		prefs:   Preferences{Title: prefs.Title, Templates: templates},
		enabled: make(map[Event]bool),
		log:     log,
	}
}

// Enable turns the given event on or off.
func (n *Notifier) Enable(event Event, on bool) {
	if n == nil {
		return
	}
	n.enabled[event] = on
}

// Captured reports a finished capture. When preview holds PNG data it is
// shown as the notification image.
func (n *Notifier) Captured(f Fields, preview []byte) error {
	if !n.on(EventCapture) {
		return nil
	}
	var opts platform.Options
	if len(preview) > 0 {
		path, err := writePreview(preview)
		if err != nil {
			n.log.Warning("Notification preview failed: %s", err)
		} else {
			defer func() {
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					n.log.Warning("Remove preview %s: %s", path, err)
				}
			}()
			opts.IconPath = path
		}
	}
	return n.dispatch(EventCapture, f, opts)
}

// Saved reports the written file, using it as the notification image.
func (n *Notifier) Saved(f Fields) error {
	if !n.on(EventSave) {
		return nil
	}
	var opts platform.Options
	if f.Path != "" {
		if _, err := os.Stat(f.Path); err == nil {
			opts.IconPath = f.Path
		}
	}
	return n.dispatch(EventSave, f, opts)
}

// Copied reports that the capture is on the clipboard.
func (n *Notifier) Copied(f Fields) error {
	if !n.on(EventCopy) {
		return nil
	}
	return n.dispatch(EventCopy, f, platform.Options{})
}

func (n *Notifier) on(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, f Fields, opts platform.Options) error {
	body := n.body(event, f)
	if body == "" {
		return nil
	}
	opts.Category = categories[event]
	if err := send(n.prefs.Title, body, opts); err != nil {
		return fmt.Errorf("notification %s: %w", event, err)
	}
	n.log.Debug("Sent %s notification %q.", event, body)
	return nil
}

func (n *Notifier) body(event Event, f Fields) string {
	tmpl := strings.TrimSpace(n.prefs.Templates[event])
	if tmpl == "" {
		return ""
	}
	return strings.TrimSpace(f.expand(tmpl))
}

func writePreview(data []byte) (string, error) {
	f, err := os.CreateTemp("", "wc-grab-preview-*.png")
	if err != nil {
		return "", err
	}
	path := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
