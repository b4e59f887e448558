package adapter

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"syscall"
	"time"

	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
)

// sharedAddressSpace is the carrier-grade NAT range (RFC 6598).
var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

type urlProber struct {
	client  *utils.HTTPClient
	enabled bool

	logger *logger.Logger
}

// NewURLProber returns a [URLProber] that sends a HEAD request to every
// URL. When enabled is false only the URL syntax is checked.
//
// The transport of client is replaced by one that only connects to public
// unicast addresses, so redirects and re-resolved hosts cannot reach the
// internal network. The client must not be shared with other adapters.
func NewURLProber(client *utils.HTTPClient, enabled bool, logger *logger.Logger) URLProber {
	return newURLProber(client, enabled, func(target netip.AddrPort) bool {
		return isPublicAddr(target.Addr())
	}, logger)
}

func newURLProber(client *utils.HTTPClient, enabled bool, allow func(netip.AddrPort) bool, logger *logger.Logger) *urlProber {
	dialer := &net.Dialer{
		Timeout: 5 * time.Second,
		Control: func(_, address string, _ syscall.RawConn) error {
			target, err := netip.ParseAddrPort(address)
			if err != nil {
				return err
			}
			target = netip.AddrPortFrom(target.Addr().Unmap(), target.Port())
			if !allow(target) {
				return fmt.Errorf("%w: %s", ErrAddressNotAllowed, target)
			}
			return nil
		},
	}
	client.SetTransport(&http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
		MaxIdleConns:        10,
		IdleConnTimeout:     30 * time.Second,
	})

	return &urlProber{client: client, enabled: enabled, logger: logger}
}

func (p *urlProber) Exists(ctx context.Context, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false
	}
	if !p.enabled {
		return true
	}

	resp, err := p.client.R().SetContext(ctx).Head(rawURL)
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "*urlProber.Exists").Str("url", rawURL).Msg("url probe failed")
		return false
	}
	return resp.StatusCode() < http.StatusBadRequest
}

func isPublicAddr(addr netip.Addr) bool {
	return addr.IsGlobalUnicast() && !addr.IsPrivate() && !sharedAddressSpace.Contains(addr)
}
