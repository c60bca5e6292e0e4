package gateway

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrNoCID is returned when a URL to convert carries no recognizable CID.
	ErrNoCID = errors.New("url does not contain CID")
	// ErrNoGateway is returned when neither a default gateway nor a per-call
	// override is available.
	ErrNoGateway = errors.New("gateway is not configured")
)

// Resolver rewrites IPFS URLs to a default gateway. It is immutable and safe
// for concurrent use.
type Resolver struct {
	gateway string
}

// NewResolver returns a Resolver whose default gateway is defaultGateway. The
// gateway may be a bare host ("example.mypinata.cloud") or a URL prefix; see
// NormalizeGateway.
func NewResolver(defaultGateway string) *Resolver {
	return &Resolver{gateway: NormalizeGateway(defaultGateway)}
}

// Gateway returns the normalized default gateway prefix.
func (r *Resolver) Gateway() string {
	return r.gateway
}

// Convert rewrites rawURL to <default gateway>/ipfs/<cid><rest>.
func (r *Resolver) Convert(rawURL string) (string, error) {
	return r.ConvertWithGateway(rawURL, "")
}

// ConvertWithGateway rewrites rawURL like Convert, but a non-empty
// gatewayPrefix replaces the default gateway for this call only.
func (r *Resolver) ConvertWithGateway(rawURL, gatewayPrefix string) (string, error) {
	gw := r.gateway
	if strings.TrimSpace(gatewayPrefix) != "" {
		gw = NormalizeGateway(gatewayPrefix)
	}
	return Convert(rawURL, gw)
}

// Convert rewrites rawURL to <gateway>/ipfs/<cid><rest>, where rest is the
// path, query and fragment that followed the CID in rawURL.
func Convert(rawURL, gateway string) (string, error) {
	found, ok := ContainsCID(rawURL).(Found)
	if !ok {
		zap.L().Debug("no CID in url", zap.String("url", rawURL))
		return "", ErrNoCID
	}

	gw := NormalizeGateway(gateway)
	if gw == "" {
		return "", ErrNoGateway
	}
	return gw + ipfsPath + found.CID + found.Rest, nil
}

// NormalizeGateway turns a gateway host or URL into a prefix without a
// trailing slash: a missing scheme becomes https and a trailing /ipfs
// segment is dropped, so "gw.example", "https://gw.example/" and
// "https://gw.example/ipfs/" all yield "https://gw.example".
func NormalizeGateway(gateway string) string {
	gw := strings.TrimSpace(gateway)
	if gw == "" {
		return ""
	}
	if !strings.Contains(gw, "://") {
		gw = "https://" + gw
	}
	gw = strings.TrimRight(gw, "/")
	gw = strings.TrimSuffix(gw, "/ipfs")
	return strings.TrimRight(gw, "/")
}
