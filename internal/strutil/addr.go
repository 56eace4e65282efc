package strutil

import "strings"

const defaultHost = "0.0.0.0"

// NormalizeAddress makes an address listenable on all interfaces if no host is given,
// so both ":8080" and "8080" become "0.0.0.0:8080".
func NormalizeAddress(addr string) string {
	switch {
	case len(addr) == 0:
		return addr
	case addr[0] == ':':
		return defaultHost + addr
	case !strings.ContainsRune(addr, ':'):
		return defaultHost + ":" + addr
	default:
		return addr
	}
}
