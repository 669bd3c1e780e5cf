package main

import (
	"io"
	"strings"
	"testing"
)

func execute(args ...string) error {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestRootAcceptsConfigFlags(t *testing.T) {
	// an invalid limit fails inside RunE, after every flag was accepted
	err := execute("report", "--reset=false", "-d", "unused.db", "--log-level", "warn", "--limit", "0")
	if err == nil || !strings.Contains(err.Error(), "limit must be positive") {
		t.Fatalf("expected limit error, got %v", err)
	}
}

func TestRootRejectsStrayArguments(t *testing.T) {
	for _, cmd := range []string{"serve", "report"} {
		err := execute(cmd, "--reset", "false")
		if err == nil || !strings.Contains(err.Error(), "false") {
			t.Fatalf("%s: expected stray argument error, got %v", cmd, err)
		}
	}
}

func TestHashTokenRequiresOneArgument(t *testing.T) {
	if err := execute("hash-token"); err == nil {
		t.Fatal("expected error without token")
	}
}
