//go:build akrelease

package communication

import "github.com/justyntemme/akgo/pkg/native"

const Enabled = false

func Init(native.CommSettings) error { return nil }
func Term()                          {}
