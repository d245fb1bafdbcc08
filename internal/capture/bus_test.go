package capture

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestScreenEndpoint(t *testing.T) {
	ep := Screen(MethodScrape)
	if ep.Service != "org.way-cooler" || ep.Path != "/org/way_cooler/Screen" || ep.Interface != "org.way_cooler.Screen" {
		t.Fatalf("unexpected endpoint %+v", ep)
	}
	if got := ep.Member(); got != "org.way_cooler.Screen.Scrape" {
		t.Fatalf("Member() = %q", got)
	}
	if err := ep.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestEndpointValidate(t *testing.T) {
	tests := []struct {
		name string
		ep   Endpoint
	}{
		{name: "no service", ep: Endpoint{Path: "/a", Interface: "a.b", Method: "M"}},
		{name: "relative path", ep: Endpoint{Service: "a.b", Path: "a/b", Interface: "a.b", Method: "M"}},
		{name: "trailing slash", ep: Endpoint{Service: "a.b", Path: "/a/", Interface: "a.b", Method: "M"}},
		{name: "bare interface", ep: Endpoint{Service: "a.b", Path: "/a", Interface: "ab", Method: "M"}},
		{name: "dotted method", ep: Endpoint{Service: "a.b", Path: "/a", Interface: "a.b", Method: "x.M"}},
		{name: "empty method", ep: Endpoint{Service: "a.b", Path: "/a", Interface: "a.b"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.ep.validate(); err == nil {
				t.Fatalf("expected validation error for %+v", tc.ep)
			}
		})
	}
}

func TestBusCallRejectsInvalidEndpoint(t *testing.T) {
	b := &Bus{timeout: DefaultTimeout}
	_, err := b.Call(context.Background(), Endpoint{Service: ScreenService, Path: "bad", Interface: ScreenInterface, Method: MethodScrape})
	var callErr *CallError
	if !errors.As(err, &callErr) || callErr.Stage != StageConstruct {
		t.Fatalf("expected construct CallError, got %v", err)
	}
}

func TestDialUnreachableBus(t *testing.T) {
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path="+t.TempDir()+"/no-such-bus")
	b, err := Dial(BusOptions{})
	if err == nil {
		b.Close()
		t.Fatalf("expected connection error")
	}
	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("expected ConnectionError, got %T %v", err, err)
	}
	if !strings.HasPrefix(err.Error(), "connect:") {
		t.Fatalf("expected connect stage in %q", err)
	}
}
