// Command akgen generates Go constants for the banks, events and game syncs
// of a generated SoundBank directory.
//
//	akgen -banks ./GeneratedSoundBanks -pkg wwise -o internal/wwise/ids.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/justyntemme/akgo/pkg/banklist"
	"github.com/justyntemme/akgo/pkg/debug"
)

func main() {
	banks := flag.String("banks", os.Getenv("BANK_PATH"), "generated SoundBank directory (default $BANK_PATH)")
	pkg := flag.String("pkg", "wwise", "package name of the generated file")
	out := flag.String("o", "", "output file (default stdout)")
	verbose := flag.Bool("v", false, "log every listing read")
	flag.Parse()

	if *banks == "" {
		fmt.Fprintln(os.Stderr, "akgen: -banks or BANK_PATH is required")
		flag.Usage()
		os.Exit(2)
	}
	if !*verbose {
		debug.SetLevel(debug.LogLevelWarn)
	}

	if err := run(*banks, *pkg, *out); err != nil {
		fmt.Fprintf(os.Stderr, "akgen: %v\n", err)
		os.Exit(1)
	}
}

func run(dir, pkg, out string) error {
	paths, err := banklist.Discover(dir)
	if err != nil {
		return err
	}

	listings := make([]banklist.Listing, 0, len(paths))
	for _, p := range paths {
		l, err := banklist.ParseFile(p)
		if err != nil {
			return err
		}
		debug.Info("akgen: %s: %d entries", p, len(l.Entries))
		listings = append(listings, l)
	}

	var buf bytes.Buffer
	if err := banklist.Generate(&buf, pkg, listings); err != nil {
		return err
	}
	if out == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	return os.WriteFile(out, buf.Bytes(), 0o644)
}
