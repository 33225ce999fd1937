//go:build !unix

package server

// On Windows SO_REUSEADDR lets a second process steal a bound port, which
// is not what we want; the default bind already allows quick restarts there.
func setReuseAddr(fd uintptr) error {
	return nil
}
