package sim

import (
	"github.com/justyntemme/akgo/pkg/ak"
	"github.com/justyntemme/akgo/pkg/native"
)

var initBankID = BankID("Init.bnk")

func (e *Engine) LoadBankName(name *byte, out *ak.BankID) ak.Result {
	id := BankID(native.GoString(name))
	if out != nil {
		*out = id
	}
	return e.LoadBankID(id)
}

func (e *Engine) LoadBankID(id ak.BankID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	if !e.deviceInit {
		return ak.DeviceNotReady
	}
	if _, ok := e.banks[id]; !ok {
		return ak.FileNotFound
	}
	if id != initBankID && e.loaded[initBankID] == 0 {
		return ak.InitBankNotLoaded
	}
	e.loaded[id]++
	return ak.Success
}

func (e *Engine) UnloadBankName(name *byte) ak.Result {
	return e.UnloadBankID(BankID(native.GoString(name)))
}

func (e *Engine) UnloadBankID(id ak.BankID) ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	if e.loaded[id] == 0 {
		return ak.UnknownBankID
	}
	e.loaded[id]--
	if e.loaded[id] == 0 {
		delete(e.loaded, id)
		e.stopUnavailable()
	}
	return ak.Success
}

func (e *Engine) ClearBanks() ak.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return ak.NotInitialized
	}
	clear(e.loaded)
	e.stopUnavailable()
	return ak.Success
}

func (e *Engine) GetIDFromString(name *byte) ak.UniqueID {
	return ak.HashName(native.GoString(name))
}

// IsBankLoaded reports whether the bank is resident.
func (e *Engine) IsBankLoaded(id ak.BankID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded[id] > 0
}

// eventAvailable reports whether any loaded bank holds the event. Callers
// hold mu.
func (e *Engine) eventAvailable(id ak.UniqueID) bool {
	for _, b := range e.eventBanks[id] {
		if e.loaded[b] > 0 {
			return true
		}
	}
	return false
}

// stopUnavailable stops instances whose bank went away. Callers hold mu.
func (e *Engine) stopUnavailable() {
	for _, inst := range e.playing {
		if !e.eventAvailable(inst.eventID) {
			inst.stop(e.now)
		}
	}
}
