//go:build !linux && !darwin

package platform

// Notify does nothing where no notification service is known.
func Notify(string, string, Options) error {
	return nil
}
