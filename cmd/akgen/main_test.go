package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	lang := filepath.Join(dir, "English(US)")
	if err := os.MkdirAll(lang, 0o755); err != nil {
		t.Fatal(err)
	}
	initTxt := "State Group\tID\tName\n\t1\tGameState\n\nState\tID\tName\tState Group\n\t2\tMenu\tGameState\n"
	bank := "Event\tID\tName\n\t3\tPlay_Looping\n"
	if err := os.WriteFile(filepath.Join(dir, "Init.txt"), []byte(initTxt), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(lang, "TheBank.txt"), []byte(bank), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "gen", "ids.go")
	if err := run(dir, "ids", out); err != nil {
		t.Fatalf("run: %v", err)
	}
	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, want := range []string{"package ids", "BankTheBank", "EventPlayLooping", "StateGroupGameState", "StateGameStateMenu"} {
		if !strings.Contains(string(src), want) {
			t.Errorf("Expected %q in the generated file:\n%s", want, src)
		}
	}
}

func TestRunMissingInit(t *testing.T) {
	if err := run(t.TempDir(), "ids", ""); err == nil {
		t.Error("Expected an error without Init.txt")
	}
}
