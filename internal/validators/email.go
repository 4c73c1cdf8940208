package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// Tempo máximo gasto em DNS durante o cadastro.
const emailLookupTimeout = 3 * time.Second

// IsEmailDomainValid confere se o domínio do e-mail existe de fato
// (registro MX ou, na falta dele, A/AAAA). Usado só no cadastro;
// DNS fora do ar não pode travar o request indefinidamente.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, emailLookupTimeout)
	defer cancel()

	var resolver net.Resolver

	if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
