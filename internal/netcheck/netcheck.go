// Package netcheck detects active network interfaces so key generation can
// refuse to run on a machine that is not air-gapped.
package netcheck

import (
	"errors"
	"fmt"
	"strings"

	ma "github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
	"github.com/rs/zerolog"
)

var ErrOnline = errors.New("active network interface detected")

// AddrSource lists the local interface addresses.
type AddrSource func() ([]ma.Multiaddr, error)

// Checker reports whether the host has any usable network address.
type Checker struct {
	addrs AddrSource
	log   zerolog.Logger
}

// New creates a Checker over the host interfaces.
func New(log zerolog.Logger) *Checker {
	return NewWithSource(manet.InterfaceMultiaddrs, log)
}

// NewWithSource creates a Checker reading addresses from src.
func NewWithSource(src AddrSource, log zerolog.Logger) *Checker {
	return &Checker{addrs: src, log: log}
}

// ActiveAddrs returns the addresses that could reach a network: everything
// except loopback and IPv6 link-local.
func (c *Checker) ActiveAddrs() ([]ma.Multiaddr, error) {
	addrs, err := c.addrs()
	if err != nil {
		return nil, fmt.Errorf("list interface addresses: %w", err)
	}
	var active []ma.Multiaddr
	for _, a := range addrs {
		if manet.IsIPLoopback(a) || manet.IsIP6LinkLocal(a) {
			continue
		}
		active = append(active, a)
	}
	return active, nil
}

// EnsureOffline returns ErrOnline if any active address exists.
// When the interfaces cannot be listed the check passes with a warning.
func (c *Checker) EnsureOffline() error {
	active, err := c.ActiveAddrs()
	if err != nil {
		c.log.Warn().Err(err).Msg("Offline check skipped")
		return nil
	}
	if len(active) == 0 {
		c.log.Debug().Msg("No active network interface")
		return nil
	}

	shown := make([]string, len(active))
	for i, a := range active {
		shown[i] = a.String()
	}
	return fmt.Errorf("%w: %s", ErrOnline, strings.Join(shown, ", "))
}
