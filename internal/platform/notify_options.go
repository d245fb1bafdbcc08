package platform

import "time"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image shown with the
	// notification where the platform supports it.
	IconPath string
	// Category is a freedesktop notification category such as
	// "transfer.complete". Platforms without categories ignore it.
	Category string
	// Expire is how long the notification stays visible. Zero uses
	// DefaultExpire.
	Expire time.Duration
}

// AppName is reported to the notification service as the sender.
const AppName = "wc-grab"

const (
	// DefaultExpire is used when Options.Expire is zero.
	DefaultExpire = 5 * time.Second
	// SendTimeout bounds how long a notification may block the caller.
	SendTimeout = 2 * time.Second
)

func (o Options) expireMillis() int32 {
	if o.Expire <= 0 {
		return int32(DefaultExpire / time.Millisecond)
	}
	return int32(o.Expire / time.Millisecond)
}

func (o Options) hints() map[string]string {
	h := make(map[string]string, 3)
	h["desktop-entry"] = AppName
	if o.Category != "" {
		h["category"] = o.Category
	}
	if o.IconPath != "" {
		h["image-path"] = o.IconPath
	}
	return h
}
