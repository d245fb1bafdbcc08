package capture

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PurpleSec/logx"
	"github.com/godbus/dbus/v5"
)

// Way Cooler exposes its screen grabbing API under these names.
const (
	ScreenService   = "org.way-cooler"
	ScreenPath      = "/org/way_cooler/Screen"
	ScreenInterface = "org.way_cooler.Screen"
)

// DefaultTimeout bounds every remote call.
const DefaultTimeout = 2000 * time.Millisecond

// Endpoint identifies a single remote method.
type Endpoint struct {
	Service   string
	Path      string
	Interface string
	Method    string
}

// Screen returns the Way Cooler screen endpoint for method.
func Screen(method string) Endpoint {
	return Endpoint{
		Service:   ScreenService,
		Path:      ScreenPath,
		Interface: ScreenInterface,
		Method:    method,
	}
}

// Member returns the fully qualified method name.
func (e Endpoint) Member() string {
	return e.Interface + "." + e.Method
}

func (e Endpoint) validate() error {
	if strings.TrimSpace(e.Service) == "" {
		return errors.New("empty service name")
	}
	if !dbus.ObjectPath(e.Path).IsValid() {
		return fmt.Errorf("invalid object path %q", e.Path)
	}
	if !strings.Contains(e.Interface, ".") || strings.HasPrefix(e.Interface, ".") || strings.HasSuffix(e.Interface, ".") {
		return fmt.Errorf("invalid interface name %q", e.Interface)
	}
	if e.Method == "" || strings.ContainsAny(e.Method, "./ ") {
		return fmt.Errorf("invalid method name %q", e.Method)
	}
	return nil
}

// Caller issues one blocking method call and returns the reply body.
type Caller interface {
	Call(ctx context.Context, ep Endpoint, args ...interface{}) ([]interface{}, error)
}

// BusOptions configures Dial.
type BusOptions struct {
	Timeout time.Duration
	Log     logx.Log
}

// Bus is a private session bus connection.
type Bus struct {
	conn    *dbus.Conn
	timeout time.Duration
	log     logx.Log
}

// Dial opens a private connection to the session bus.
func Dial(opts BusOptions) (*Bus, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	b := &Bus{conn: conn, timeout: opts.Timeout, log: opts.Log}
	if b.timeout <= 0 {
		b.timeout = DefaultTimeout
	}
	if b.log == nil {
		b.log = logx.NOP
	}
	b.log.Debug("Connected to the session bus, call timeout %s.", b.timeout)
	return b, nil
}

// Call invokes ep on the bus and waits at most the configured timeout.
func (b *Bus) Call(ctx context.Context, ep Endpoint, args ...interface{}) ([]interface{}, error) {
	if err := ep.validate(); err != nil {
		return nil, &CallError{Method: ep.Method, Stage: StageConstruct, Err: err}
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	start := time.Now()
	obj := b.conn.Object(ep.Service, dbus.ObjectPath(ep.Path))
	call := obj.CallWithContext(ctx, ep.Member(), 0, args...)
	if call.Err != nil {
		b.log.Debug("Call %s failed after %s: %s", ep.Member(), time.Since(start), call.Err)
		return nil, &CallError{Method: ep.Method, Stage: StageCall, Err: call.Err}
	}
	b.log.Debug("Call %s returned %d item(s) in %s.", ep.Member(), len(call.Body), time.Since(start))
	return call.Body, nil
}

// Close releases the connection.
func (b *Bus) Close() error {
	if b == nil || b.conn == nil {
		return nil
	}
	return b.conn.Close()
}
