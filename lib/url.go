package lib

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseBaseURL parses an http(s) service URL and trims trailing slashes from
// its path so routes can be joined onto it.
func ParseBaseURL(in string) (*url.URL, error) {
	in = strings.TrimSpace(in)
	if in == "" {
		return nil, fmt.Errorf("url is empty")
	}

	u, err := url.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("parsing url: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, fmt.Errorf("url %q must use http or https", in)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url %q has no host", in)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.Fragment = ""

	return u, nil
}
