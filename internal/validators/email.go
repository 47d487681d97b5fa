package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// lookupTimeout bounds the DNS round trips so a slow resolver cannot
// stall the registration path.
const lookupTimeout = 3 * time.Second

var resolver = &net.Resolver{}

// EmailDomainExists reports whether the address has a domain that
// resolves: an MX record first, any A/AAAA record as fallback.
func EmailDomainExists(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
