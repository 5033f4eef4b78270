package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"OnionShare-NG/internal/errors"
)

// TorPaths locates the Tor binary and its support files.
type TorPaths struct {
	Tor        string // tor binary
	GeoIP      string // IPv4 GeoIP database
	GeoIPv6    string // IPv6 GeoIP database
	Obfs4proxy string // pluggable transport binary
}

// Resolver computes resource and Tor binary paths as a pure function of
// (Platform, Mode) and the configured roots. Paths are joined with the
// target platform's separator, so a Windows resolver produces backslashed
// paths even when evaluated on another host. The exact strings are a
// compatibility contract with the packaging layer; do not normalize them.
type Resolver struct {
	Platform Platform
	Mode     Mode

	// SysPrefix is the installation prefix on Linux (normally /usr).
	SysPrefix string
	// BundleRoot is the packaged bundle directory in Frozen mode.
	BundleRoot string
	// SourceRoot is the source checkout in Development mode.
	SourceRoot string
}

// NewResolver builds a resolver for the given platform and mode with the
// conventional default roots: /usr prefix, the executable's directory as
// bundle root, and the working directory as source root.
func NewResolver(p Platform, m Mode) *Resolver {
	r := &Resolver{Platform: p, Mode: m, SysPrefix: "/usr"}
	if exe, err := os.Executable(); err == nil {
		r.BundleRoot = filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		r.SourceRoot = wd
	}
	return r
}

// separator returns the path separator of the target platform, not the
// host's.
func (r *Resolver) separator() string {
	if r.Platform == Windows {
		return `\`
	}
	return "/"
}

// join concatenates parts with the target platform's separator. A trailing
// empty part yields a trailing separator.
func (r *Resolver) join(parts ...string) string {
	return strings.Join(parts, r.separator())
}

// ResourcePath returns the path of filename inside the application's share
// directory for the configured platform and mode.
func (r *Resolver) ResourcePath(filename string) (string, error) {
	root, err := r.resourceRoot()
	if err != nil {
		return "", err
	}
	return r.join(root, filename), nil
}

func (r *Resolver) resourceRoot() (string, error) {
	if r.Platform == Other {
		return "", fmt.Errorf("resource path: %w", errors.ErrUnknownPlatform)
	}
	if r.Mode == Development {
		return r.join(r.SourceRoot, "share"), nil
	}
	switch {
	case r.Platform == Linux && r.Mode == Installed:
		return r.join(r.SysPrefix, "share", "onionshare"), nil
	case r.Platform == Darwin && r.Mode == Frozen:
		return r.join(r.BundleRoot, "Resources"), nil
	case r.Platform == Windows && r.Mode == Frozen:
		return r.join(r.BundleRoot, "share"), nil
	}
	// e.g. Frozen on Linux or Installed on Darwin: a packaging mistake
	return "", fmt.Errorf("resource path: %s in %s mode: %w",
		r.Platform, r.Mode, errors.ErrPathLayout)
}

// TorPaths returns the locations of the tor binary, both GeoIP databases,
// and the obfs4proxy pluggable transport. Development mode has no Tor
// layout of its own; the per-platform lookup below applies regardless of
// mode.
func (r *Resolver) TorPaths() (TorPaths, error) {
	switch r.Platform {
	case Linux:
		// System packages, fixed locations regardless of SysPrefix.
		return TorPaths{
			Tor:        "/usr/bin/tor",
			GeoIP:      "/usr/share/tor/geoip",
			GeoIPv6:    "/usr/share/tor/geoip6",
			Obfs4proxy: "/usr/bin/obfs4proxy",
		}, nil
	case Darwin:
		base := r.join(r.BundleRoot, "Resources", "Tor")
		return TorPaths{
			Tor:        r.join(base, "tor"),
			GeoIP:      r.join(base, "geoip"),
			GeoIPv6:    r.join(base, "geoip6"),
			Obfs4proxy: r.join(base, "obfs4proxy"),
		}, nil
	case Windows:
		bin := r.join(r.BundleRoot, "tor", "Tor")
		data := r.join(r.BundleRoot, "tor", "Data", "Tor")
		return TorPaths{
			Tor:        r.join(bin, "tor.exe"),
			GeoIP:      r.join(data, "geoip"),
			GeoIPv6:    r.join(data, "geoip6"),
			Obfs4proxy: r.join(bin, "obfs4proxy.exe"),
		}, nil
	}
	return TorPaths{}, fmt.Errorf("tor paths: %w", errors.ErrUnknownPlatform)
}
