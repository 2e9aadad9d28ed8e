package loginview

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	BrandingImagePath    = "/scim/v2/TenantImage/jpegPhoto/appBranding"
	BrandingFallbackPath = "/scim/v2/TenantImage/jpegPhoto/primary"
	PasswordResetPath    = "/ics/passwordReset.html"
)

var ErrInvalidService = errors.New("invalid service")

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// ServiceParam returns the first service parameter of a raw query string,
// percent-decoded once.
func ServiceParam(rawQuery string) (string, error) {
	for _, pair := range strings.Split(rawQuery, "&") {
		key, val, _ := strings.Cut(pair, "=")
		if key != "service" {
			continue
		}
		decoded, err := url.PathUnescape(val)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidService, err)
		}
		return decoded, nil
	}
	return "", fmt.Errorf("%w: missing service parameter", ErrInvalidService)
}

// Origin returns scheme://host[:port] of an absolute URL. Default ports are
// omitted.
func Origin(rawURL string) (string, error) {
	// only scheme://authority is parsed, escapes in the rest of the url
	// do not matter for the origin
	i := strings.Index(rawURL, "://")
	if i < 0 {
		return "", fmt.Errorf("%w: %q is not an absolute url", ErrInvalidService, rawURL)
	}
	authority := rawURL[i+3:]
	if end := strings.IndexAny(authority, "/?#"); end >= 0 {
		authority = authority[:end]
	}
	u, err := url.Parse(rawURL[:i+3] + authority)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidService, err)
	}
	if u.Scheme == "" || u.Host == "" || u.Opaque != "" {
		return "", fmt.Errorf("%w: %q is not an absolute url", ErrInvalidService, rawURL)
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidService, rawURL)
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	origin := scheme + "://" + host
	if port := u.Port(); port != "" && port != defaultPorts[scheme] {
		origin += ":" + port
	}
	return origin, nil
}

type Branding struct {
	Origin        string
	Image         string
	Fallback      string
	PasswordReset string
}

func NewBranding(origin string) Branding {
	return Branding{
		Origin:        origin,
		Image:         origin + BrandingImagePath,
		Fallback:      origin + BrandingFallbackPath,
		PasswordReset: origin + PasswordResetPath,
	}
}

// BrandingFor resolves the tenant branding of the service named in rawQuery.
func BrandingFor(rawQuery string) (Branding, error) {
	service, err := ServiceParam(rawQuery)
	if err != nil {
		return Branding{}, err
	}
	origin, err := Origin(service)
	if err != nil {
		return Branding{}, err
	}
	return NewBranding(origin), nil
}
