//go:build darwin

package platform

import (
	"context"
	"fmt"
	"os/exec"
)

// Notify displays a notification through Notification Center. The sender
// name is shown as the subtitle; icons and expiry are not supported.
func Notify(title, body string, opts Options) error {
	ctx, cancel := context.WithTimeout(context.Background(), SendTimeout)
	defer cancel()
	script := fmt.Sprintf("display notification %q with title %q subtitle %q", body, title, AppName)
	if out, err := exec.CommandContext(ctx, "osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w: %s", err, out)
	}
	return nil
}
