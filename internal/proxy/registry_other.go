//go:build !windows

package proxy

func readInternetSettings() (bool, string, error) {
	return false, "", ErrUnsupported
}
