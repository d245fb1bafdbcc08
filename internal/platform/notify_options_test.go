package platform

import (
	"testing"
	"time"
)

func TestExpireMillis(t *testing.T) {
	if got := (Options{}).expireMillis(); got != 5000 {
		t.Fatalf("default expire = %d, want 5000", got)
	}
	if got := (Options{Expire: 1500 * time.Millisecond}).expireMillis(); got != 1500 {
		t.Fatalf("expire = %d, want 1500", got)
	}
}

func TestHints(t *testing.T) {
	h := (Options{}).hints()
	if len(h) != 1 || h["desktop-entry"] != AppName {
		t.Fatalf("bare hints = %v", h)
	}
	h = (Options{IconPath: "/tmp/shot.png", Category: "transfer.complete"}).hints()
	if h["image-path"] != "/tmp/shot.png" || h["category"] != "transfer.complete" {
		t.Fatalf("hints = %v", h)
	}
}
