package netcheck

import (
	"errors"
	"strings"
	"testing"

	ma "github.com/multiformats/go-multiaddr"
	"github.com/rs/zerolog"
)

func addrs(t *testing.T, ss ...string) AddrSource {
	t.Helper()
	out := make([]ma.Multiaddr, len(ss))
	for i, s := range ss {
		a, err := ma.NewMultiaddr(s)
		if err != nil {
			t.Fatalf("NewMultiaddr(%q) error: %v", s, err)
		}
		out[i] = a
	}
	return func() ([]ma.Multiaddr, error) { return out, nil }
}

func TestEnsureOffline_LoopbackOnly(t *testing.T) {
	c := NewWithSource(addrs(t, "/ip4/127.0.0.1", "/ip6/::1", "/ip6/fe80::1"), zerolog.Nop())
	if err := c.EnsureOffline(); err != nil {
		t.Errorf("EnsureOffline() error: %v", err)
	}
}

func TestEnsureOffline_Online(t *testing.T) {
	c := NewWithSource(addrs(t, "/ip4/127.0.0.1", "/ip4/192.168.1.20"), zerolog.Nop())
	err := c.EnsureOffline()
	if !errors.Is(err, ErrOnline) {
		t.Fatalf("error = %v, want ErrOnline", err)
	}
	if !strings.Contains(err.Error(), "192.168.1.20") {
		t.Errorf("error %q should name the active address", err)
	}

	active, err := c.ActiveAddrs()
	if err != nil {
		t.Fatalf("ActiveAddrs() error: %v", err)
	}
	if len(active) != 1 {
		t.Errorf("got %d active addresses, want 1", len(active))
	}
}

func TestEnsureOffline_SourceError(t *testing.T) {
	c := NewWithSource(func() ([]ma.Multiaddr, error) {
		return nil, errors.New("permission denied")
	}, zerolog.Nop())
	if err := c.EnsureOffline(); err != nil {
		t.Errorf("EnsureOffline() error = %v, unreadable interfaces should not block", err)
	}
	if _, err := c.ActiveAddrs(); err == nil {
		t.Error("ActiveAddrs() should report the source error")
	}
}

func TestNew_HostInterfaces(t *testing.T) {
	if _, err := New(zerolog.Nop()).ActiveAddrs(); err != nil {
		t.Errorf("ActiveAddrs() error: %v", err)
	}
}
