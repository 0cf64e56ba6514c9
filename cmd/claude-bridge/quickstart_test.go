package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestQuickstartCmd(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	cmd := newQuickstartCmd()
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		os.Stdout = old
		t.Fatalf("quickstart failed: %v", err)
	}

	w.Close()
	os.Stdout = old

	var b bytes.Buffer
	io.Copy(&b, r)

	if b.Len() == 0 {
		t.Error("expected quickstart output, got nothing")
	}
	if !strings.Contains(b.String(), "ANTHROPIC_API_KEY") {
		t.Error("quickstart must mention the credential variable")
	}
}
