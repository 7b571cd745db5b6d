package commands

import (
	"errors"
	"testing"

	"github.com/bbak/kstable/internal/kernel"
)

func TestBuildInstance_UnknownModel(t *testing.T) {
	_, err := buildInstance("house-swap", 4, 1)
	if !errors.Is(err, kernel.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBuildInstance_EachModel(t *testing.T) {
	for _, model := range []string{"house", "marriage", "roommates"} {
		inst, err := buildInstance(model, 6, 3)
		if err != nil {
			t.Fatalf("model=%s: unexpected error: %v", model, err)
		}
		if inst.N != 6 {
			t.Errorf("model=%s: expected N=6, got %d", model, inst.N)
		}
	}
}

func TestSimpleMatching_ValidForEachModel(t *testing.T) {
	for _, model := range []string{"house", "marriage", "roommates"} {
		inst, err := buildInstance(model, 6, 9)
		if err != nil {
			t.Fatalf("model=%s: unexpected error: %v", model, err)
		}
		m := simpleMatching(inst)
		if !kernel.IsValid(m, inst) {
			t.Errorf("model=%s: simpleMatching produced an invalid matching", model)
		}
	}
}

func TestParseNK(t *testing.T) {
	n, k, err := parseNK([]string{"5", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 || k != 2 {
		t.Errorf("expected n=5 k=2, got n=%d k=%d", n, k)
	}

	_, _, err = parseNK([]string{"x", "2"})
	if !errors.Is(err, kernel.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for non-integer n, got %v", err)
	}
}
