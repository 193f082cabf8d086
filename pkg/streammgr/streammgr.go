// Package streammgr drives the stream manager and the default streaming
// device that reads SoundBanks from disk.
package streammgr

import (
	"fmt"
	"runtime"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/native"
)

// Init creates the stream manager. The memory manager must be up.
func Init(s native.StreamMgrSettings) error {
	if !native.Current().StreamCreate(&s) {
		return fmt.Errorf("streammgr: create stream manager: %w", ak.Fail)
	}
	return nil
}

// InitDefault creates the stream manager and opens the default device on
// bankLocation, the directory holding the generated SoundBanks. The device
// always runs with the stream cache enabled.
func InitDefault(s native.StreamMgrSettings, device native.DeviceSettings, bankLocation string) error {
	path, err := native.NewOSString(bankLocation)
	if err != nil {
		return fmt.Errorf("streammgr: bank location: %w", err)
	}
	if err := Init(s); err != nil {
		return err
	}
	device.UseStreamCache = true
	r := native.Current().StreamInitDefault(&device, path.Ptr())
	runtime.KeepAlive(path)
	if err := ak.Check(r); err != nil {
		return fmt.Errorf("streammgr: open default device on %q: %w", bankLocation, err)
	}
	debug.Info("streammgr: default device reading %s", bankLocation)
	return nil
}

// TermDefault closes the default device and destroys the stream manager.
func TermDefault() {
	native.Current().StreamTermDefault()
	debug.Info("streammgr: terminated")
}

// SetCurrentLanguage selects the language folder localized banks are read
// from, for example "English(US)".
func SetCurrentLanguage(language string) error {
	lang, err := native.NewOSString(language)
	if err != nil {
		return fmt.Errorf("streammgr: language: %w", err)
	}
	r := native.Current().StreamSetCurrentLanguage(lang.Ptr())
	runtime.KeepAlive(lang)
	return ak.Check(r)
}
