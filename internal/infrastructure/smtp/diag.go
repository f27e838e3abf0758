package smtp

import (
	"errors"
	"net"
	"strings"
)

// Diagnose classifies a relay failure for logging:
// timeout | dial | tls | auth | unknown.
func Diagnose(err error) string {
	if err == nil {
		return "unknown"
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout"
	}
	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "timeout"):
		return "timeout"
	case strings.Contains(s, "connection refused"), strings.Contains(s, "no such host"), strings.Contains(s, "dial tcp"):
		return "dial"
	case strings.Contains(s, "x509:"), strings.Contains(s, "tls") && strings.Contains(s, "handshake"):
		return "tls"
	case strings.Contains(s, "535"), strings.Contains(s, "5.7.8"), strings.Contains(s, "username and password not accepted"),
		strings.Contains(s, "auth") && strings.Contains(s, "failed"):
		return "auth"
	}
	return "unknown"
}
