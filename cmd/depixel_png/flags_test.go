package main

import "testing"

func TestParseFlags_Defaults(t *testing.T) {
	f, err := parseFlags([]string{"in.png"})
	if err != nil {
		t.Fatal(err)
	}
	if f.outputDir != "." {
		t.Errorf("outputDir: got %q, want \".\"", f.outputDir)
	}
	if f.scale != 10 {
		t.Errorf("scale: got %d, want 10", f.scale)
	}
	if !f.toPNG {
		t.Error("toPNG should default true")
	}
	if len(f.inputs) != 1 || f.inputs[0] != "in.png" {
		t.Errorf("inputs: got %v, want [in.png]", f.inputs)
	}
}

func TestParseFlags_MultipleInputsAndBooleans(t *testing.T) {
	f, err := parseFlags([]string{"--write-shapes", "--write-smooth", "--no-nodes", "a.png", "b.png"})
	if err != nil {
		t.Fatal(err)
	}
	if !f.writeShapes || !f.writeSmooth || !f.noNodes {
		t.Errorf("expected write-shapes, write-smooth, no-nodes all set: %+v", f)
	}
	if len(f.inputs) != 2 {
		t.Errorf("inputs: got %v, want 2 entries", f.inputs)
	}
}

func TestParseFlags_RejectsUnknownFlag(t *testing.T) {
	if _, err := parseFlags([]string{"--bogus-flag"}); err == nil {
		t.Error("expected an error for an unrecognized flag")
	}
}
