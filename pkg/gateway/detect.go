// Package gateway recognizes content identifiers inside IPFS URIs and
// gateway URLs and rewrites such URLs to point at a chosen gateway host.
//
// Supported input shapes, checked in this order:
//
//	ipfs://<cid>[/path][?query][#fragment]
//	<scheme>://<host>/ipfs/<cid>[/path][?query][#fragment]
//	<scheme>://<cid>.ipfs.<host>[/path][?query][#fragment]
//	<cid>[/path]
//
// Detection is purely lexical: a candidate is accepted when it looks like a
// CIDv0 or a multibase-encoded CIDv1. Whether the CID resolves is left to the
// gateway.
package gateway

import (
	"regexp"
	"strings"

	"github.com/ipfs/go-cid"
)

const (
	ipfsScheme = "ipfs://"
	ipfsPath   = "/ipfs/"
)

// cidPattern matches CIDv0 (base58btc "Qm" + 44 chars) and the common
// multibase prefixes of CIDv1: base32 lower/upper, base58btc, base36 and hex.
var cidPattern = regexp.MustCompile(`^(?:` +
	`Qm[1-9A-HJ-NP-Za-km-z]{44}` +
	`|b[a-z2-7]{58,}` +
	`|B[A-Z2-7]{58,}` +
	`|z[1-9A-HJ-NP-Za-km-z]{46,}` +
	`|k[0-9a-z]{48,}` +
	`|f[0-9a-f]{50,}` +
	`)$`)

// Form identifies which input shape a CID was found in.
type Form int

const (
	// FormScheme is ipfs://<cid>.
	FormScheme Form = iota + 1
	// FormPath is a URL with an /ipfs/<cid> path segment.
	FormPath
	// FormSubdomain is a URL whose leftmost host label is the CID.
	FormSubdomain
	// FormBare is a CID at the start of the input, optionally followed by a path.
	FormBare
)

func (f Form) String() string {
	switch f {
	case FormScheme:
		return "scheme"
	case FormPath:
		return "path"
	case FormSubdomain:
		return "subdomain"
	case FormBare:
		return "bare"
	default:
		return "unknown"
	}
}

// Detection is the outcome of ContainsCID: either Found or NotFound.
type Detection interface {
	detection()
}

// Found reports a detected CID.
type Found struct {
	// CID is the identifier exactly as it appeared in the input.
	CID string
	// Form is the input shape the CID was found in.
	Form Form
	// Rest is the remainder of the input after the CID segment: path, query
	// and fragment. Empty when the CID ends the input.
	Rest string
}

// NotFound reports that the input carries no recognizable CID.
type NotFound struct{}

func (Found) detection()    {}
func (NotFound) detection() {}

// Decode parses the detected identifier into a typed CID.
func (f Found) Decode() (cid.Cid, error) {
	return cid.Decode(f.CID)
}

// IsCID reports whether s matches the CID lexical pattern.
func IsCID(s string) bool {
	return cidPattern.MatchString(s)
}

// ContainsCID looks for a CID in input. Empty or malformed input yields
// NotFound.
func ContainsCID(input string) Detection {
	input = strings.TrimSpace(input)
	if input == "" {
		return NotFound{}
	}

	if rest, ok := strings.CutPrefix(input, ipfsScheme); ok {
		return leadingSegment(rest, FormScheme)
	}
	if i := strings.Index(input, ipfsPath); i >= 0 {
		return leadingSegment(input[i+len(ipfsPath):], FormPath)
	}
	if d, ok := fromSubdomain(input); ok {
		return d
	}
	return leadingSegment(input, FormBare)
}

// leadingSegment accepts the part of s up to the first '/', '?' or '#' as
// the CID when it matches the pattern.
func leadingSegment(s string, form Form) Detection {
	candidate, rest := s, ""
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		candidate, rest = s[:i], s[i:]
	}
	if !IsCID(candidate) {
		return NotFound{}
	}
	return Found{CID: candidate, Form: form, Rest: rest}
}

// fromSubdomain checks the leftmost host label of an absolute URL.
func fromSubdomain(input string) (Detection, bool) {
	_, afterScheme, ok := strings.Cut(input, "://")
	if !ok {
		return nil, false
	}

	authority, rest := afterScheme, ""
	if i := strings.IndexAny(afterScheme, "/?#"); i >= 0 {
		authority, rest = afterScheme[:i], afterScheme[i:]
	}
	if at := strings.LastIndex(authority, "@"); at >= 0 {
		authority = authority[at+1:]
	}

	label, _, _ := strings.Cut(authority, ".")
	label, _, _ = strings.Cut(label, ":")
	if !IsCID(label) {
		return nil, false
	}
	return Found{CID: label, Form: FormSubdomain, Rest: rest}, true
}
