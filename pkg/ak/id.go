package ak

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// ID names an engine object either by numeric ID or by name. Calls that
// accept an ID dispatch once on the variant to the engine's matching entry
// point. The zero value is Numeric(0).
type ID struct {
	name    string
	numeric UniqueID
	isName  bool
}

// Name returns a name-form ID.
func Name(name string) ID {
	return ID{name: name, isName: true}
}

// Numeric returns a numeric-form ID.
func Numeric(id UniqueID) ID {
	return ID{numeric: id}
}

// IsName reports whether the ID holds a name.
func (id ID) IsName() bool { return id.isName }

// NameValue returns the name, or "" for a numeric ID.
func (id ID) NameValue() string { return id.name }

// NumericValue returns the numeric ID, or 0 for a name.
func (id ID) NumericValue() UniqueID { return id.numeric }

func (id ID) String() string {
	if id.isName {
		return strconv.Quote(id.name)
	}
	return strconv.FormatUint(uint64(id.numeric), 10)
}

// HashName computes the engine's ID for an object name: FNV-1 over the
// lowercased name.
func HashName(name string) UniqueID {
	h := fnv.New32()
	h.Write([]byte(strings.ToLower(name)))
	return UniqueID(h.Sum32())
}
