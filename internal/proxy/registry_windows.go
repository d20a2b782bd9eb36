//go:build windows

package proxy

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// readInternetSettings reads ProxyEnable and ProxyServer from
// HKEY_CURRENT_USER\Software\Microsoft\Windows\CurrentVersion\Internet Settings.
func readInternetSettings() (enabled bool, server string, err error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, internetSettingsPath, registry.QUERY_VALUE)
	if err != nil {
		return false, "", fmt.Errorf("failed to open registry key: %w", err)
	}
	defer k.Close()

	enable, _, err := k.GetIntegerValue("ProxyEnable")
	if errors.Is(err, registry.ErrNotExist) {
		return false, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("failed to read ProxyEnable: %w", err)
	}
	if enable == 0 {
		return false, "", nil
	}

	server, _, err = k.GetStringValue("ProxyServer")
	if errors.Is(err, registry.ErrNotExist) {
		return true, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("failed to read ProxyServer: %w", err)
	}
	return true, server, nil
}
