package service

import (
	"context"
	"strings"
)

// appVersion is the AppInfoService of a running server: a fixed version
// string resolved at startup.
type appVersion string

// NewAppInfoService fails with ErrVersionIsNotSpecified for a blank version,
// so a misbuilt binary is caught before it starts serving.
func NewAppInfoService(version string) (AppInfoService, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	return appVersion(version), nil
}

func (v appVersion) GetAppVersion(context.Context) string {
	return string(v)
}
