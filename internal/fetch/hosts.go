package fetch

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// HostAllowed reports whether host is domain or one of its subdomains.
// An empty domain allows every host.
func HostAllowed(host, domain string) bool {
	domain = strings.ToLower(strings.Trim(domain, "."))
	if domain == "" {
		return true
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// domainRedirectPolicy stops redirects that leave the allowed domain
func domainRedirectPolicy(domain string) resty.RedirectPolicy {
	return resty.RedirectPolicyFunc(func(req *http.Request, _ []*http.Request) error {
		if !HostAllowed(req.URL.Hostname(), domain) {
			return fmt.Errorf("redirect to %s leaves %s", req.URL.Host, domain)
		}
		return nil
	})
}
