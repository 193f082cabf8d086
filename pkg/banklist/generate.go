package banklist

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"sort"
	"strings"
	"unicode"
)

// ErrNameConflict is returned when two different resources map to the same
// Go identifier.
var ErrNameConflict = errors.New("banklist: name conflict")

type constant struct {
	name  string
	value string
}

// Generate writes a gofmt-formatted Go file declaring package pkg with one
// constant per bank and per resource of listings. Resources listed by more
// than one bank are declared once.
func Generate(w io.Writer, pkg string, listings []Listing) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("banklist: invalid package name %q", pkg)
	}

	seen := make(map[string]string)
	claim := func(name, value string) (bool, error) {
		if prev, ok := seen[name]; ok {
			if prev != value {
				return false, fmt.Errorf("%w: %s is both %s and %s", ErrNameConflict, name, prev, value)
			}
			return false, nil
		}
		seen[name] = value
		return true, nil
	}

	var banks []constant
	kinds := make([][]constant, len(kindInfo))
	for _, l := range listings {
		c := constant{name: "Bank" + goName(strings.TrimSuffix(l.Bank, ".bnk")), value: fmt.Sprintf("%q", l.Bank)}
		fresh, err := claim(c.name, c.value)
		if err != nil {
			return err
		}
		if fresh {
			banks = append(banks, c)
		}

		for _, e := range l.Entries {
			name := kindInfo[e.Kind].prefix
			if e.Kind.Grouped() {
				name += goName(e.Group)
			}
			name += goName(e.Name)
			c := constant{name: name, value: fmt.Sprintf("%d", e.ID)}
			fresh, err := claim(c.name, c.value)
			if err != nil {
				return err
			}
			if fresh {
				kinds[e.Kind] = append(kinds[e.Kind], c)
			}
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by akgen. DO NOT EDIT.\n\npackage %s\n\n", pkg)

	ids := false
	for _, cs := range kinds {
		ids = ids || len(cs) > 0
	}
	if ids {
		buf.WriteString("import \"github.com/justyntemme/akgo/pkg/ak\"\n\n")
	}

	writeBlock(&buf, "Banks", "", banks)
	for k, cs := range kinds {
		writeBlock(&buf, kindInfo[k].comment, "ak.UniqueID", cs)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("banklist: format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func writeBlock(buf *bytes.Buffer, comment, typ string, cs []constant) {
	if len(cs) == 0 {
		return
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].name < cs[j].name })

	fmt.Fprintf(buf, "// %s.\nconst (\n", comment)
	for _, c := range cs {
		if typ != "" {
			fmt.Fprintf(buf, "\t%s %s = %s\n", c.name, typ, c.value)
		} else {
			fmt.Fprintf(buf, "\t%s = %s\n", c.name, c.value)
		}
	}
	buf.WriteString(")\n\n")
}

// goName turns a resource name into the tail of an exported identifier.
// Runs of characters that cannot appear in an identifier become word
// breaks.
func goName(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
