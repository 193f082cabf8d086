// Package settings produces the engine's initialization records. Every
// default is filled in by the engine itself, so it reflects the platform
// the engine was built for.
package settings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/justyntemme/akgo/pkg/native"
)

// DefaultMemSettings returns the memory manager defaults.
func DefaultMemSettings() native.MemSettings {
	var s native.MemSettings
	native.Current().MemGetDefaultSettings(&s)
	return s
}

// DefaultStreamMgrSettings returns the stream manager defaults.
func DefaultStreamMgrSettings() native.StreamMgrSettings {
	var s native.StreamMgrSettings
	native.Current().StreamGetDefaultSettings(&s)
	return s
}

// DefaultDeviceSettings returns the default streaming device defaults.
func DefaultDeviceSettings() native.DeviceSettings {
	var s native.DeviceSettings
	native.Current().StreamGetDefaultDeviceSettings(&s)
	return s
}

// DefaultPlatformInitSettings returns the platform specific sound engine
// defaults.
func DefaultPlatformInitSettings() native.PlatformInitSettings {
	var s native.PlatformInitSettings
	native.Current().GetDefaultPlatformInitSettings(&s)
	return s
}

func DefaultMusicSettings() native.MusicSettings {
	var s native.MusicSettings
	native.Current().MusicGetDefaultSettings(&s)
	return s
}

func DefaultSpatialAudioInitSettings() native.SpatialAudioInitSettings {
	var s native.SpatialAudioInitSettings
	native.Current().SpatialGetDefaultSettings(&s)
	return s
}

// DefaultCommSettings returns the communication defaults with the
// application network name set to the executable's file stem.
func DefaultCommSettings() native.CommSettings {
	var s native.CommSettings
	native.Current().CommGetDefaultSettings(&s)
	if name := appName(); name != "" {
		s.SetAppNetworkName(name)
	}
	return s
}

func appName() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return executableStem(exe)
}

func executableStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".exe")
}

// InitSettings is the platform independent sound engine record together
// with the buffers its pointer fields reference.
type InitSettings struct {
	native.InitSettings
	pluginDLLPath native.OSString
}

// DefaultInitSettings returns the sound engine defaults.
func DefaultInitSettings() InitSettings {
	var s InitSettings
	native.Current().GetDefaultInitSettings(&s.InitSettings)
	return s
}

// WithPluginDLLPath returns a copy of s that loads plug-ins from path. An
// empty path restores the engine's default lookup.
func (s InitSettings) WithPluginDLLPath(path string) (InitSettings, error) {
	if path == "" {
		s.pluginDLLPath = nil
		return s, nil
	}
	p, err := native.NewOSString(path)
	if err != nil {
		return s, err
	}
	s.pluginDLLPath = p
	return s, nil
}

// PluginDLLPath returns the path set with WithPluginDLLPath.
func (s *InitSettings) PluginDLLPath() string {
	if s.pluginDLLPath == nil {
		return ""
	}
	return s.pluginDLLPath.String()
}

// Record returns the engine record with its pointer fields aimed at the
// buffers s owns. The result is valid while s is reachable, so callers keep
// s alive across the engine call.
func (s *InitSettings) Record() *native.InitSettings {
	s.InitSettings.PluginDLLPath = s.pluginDLLPath.Ptr()
	return &s.InitSettings
}
