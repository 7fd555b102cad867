package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/pipeline"
)

func TestPrintCatalog(t *testing.T) {
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}

	var buf bytes.Buffer
	if err := printCatalog(&buf, c); err != nil {
		t.Fatalf("print: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Space Systems Engineer", "Interests:", "Skills:", "SDGs:", "SDG 17"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestHandleAction(t *testing.T) {
	result := &pipeline.Result{}

	if err := handleAction(PromptExit, zap.NewNop(), result); !errors.Is(err, errExit) {
		t.Fatalf("exit action: got %v, want errExit", err)
	}

	if err := handleAction(PromptCompare, zap.NewNop(), result); err != nil {
		t.Fatalf("compare action: %v", err)
	}

	if err := handleAction("unknown", zap.NewNop(), result); err == nil {
		t.Fatalf("expected an error for an unknown action")
	}
}

func TestCheckbox(t *testing.T) {
	if got := checkbox(true) + "Physics"; got != "[x] Physics" {
		t.Fatalf("checked = %q", got)
	}
	if got := checkbox(contains([]string{"Biology"}, "Physics")); got != "[ ] " {
		t.Fatalf("unchecked = %q", got)
	}
	if !containsInt([]int{9, 4}, 4) {
		t.Fatalf("expected 4 to be selected")
	}
}
