package soundengine

import (
	"fmt"
	"runtime"

	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/debug"
	"github.com/justyntemme/akgo/pkg/native"
)

// LoadBank loads a SoundBank by file name, for example "Init.bnk", and
// returns its ID. The init bank must be loaded first.
func LoadBank(name string) (ak.BankID, error) {
	b, err := native.CString(name)
	if err != nil {
		return ak.InvalidBankID, fmt.Errorf("soundengine: load bank: %w", err)
	}
	var id ak.BankID
	r := native.Current().LoadBankName(&b[0], &id)
	runtime.KeepAlive(b)
	if err := ak.Check(r); err != nil {
		return ak.InvalidBankID, fmt.Errorf("soundengine: load bank %s: %w", name, err)
	}
	debug.Debug("soundengine: loaded bank %s (%d)", name, id)
	return id, nil
}

func LoadBankByID(id ak.BankID) error {
	if err := ak.Check(native.Current().LoadBankID(id)); err != nil {
		return fmt.Errorf("soundengine: load bank %d: %w", id, err)
	}
	return nil
}

// UnloadBank unloads a bank loaded with LoadBank. Events that are no
// longer available stop.
func UnloadBank(name string) error {
	b, err := native.CString(name)
	if err != nil {
		return fmt.Errorf("soundengine: unload bank: %w", err)
	}
	r := native.Current().UnloadBankName(&b[0])
	runtime.KeepAlive(b)
	if err := ak.Check(r); err != nil {
		return fmt.Errorf("soundengine: unload bank %s: %w", name, err)
	}
	return nil
}

func UnloadBankByID(id ak.BankID) error {
	if err := ak.Check(native.Current().UnloadBankID(id)); err != nil {
		return fmt.Errorf("soundengine: unload bank %d: %w", id, err)
	}
	return nil
}

// ClearBanks unloads every bank, the init bank included.
func ClearBanks() error {
	return ak.Check(native.Current().ClearBanks())
}
