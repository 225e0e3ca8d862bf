package yaml

import (
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	Density float32 `yaml:"density"`
	Height  int     `yaml:"height"`
}

func TestEncodeDecodeFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sample.yaml")
	in := sample{Density: 1.5, Height: 1920}
	if err := EncodeFile(file, in); err != nil {
		t.Fatal(err)
	}
	var out sample
	if err := DecodeFile(file, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("decoded %+v, want %+v", out, in)
	}
}

func TestDecodeEmpty(t *testing.T) {
	out := sample{Density: 1}
	if err := Decode(strings.NewReader(""), &out); err != nil {
		t.Fatal(err)
	}
	if out.Density != 1 {
		t.Errorf("empty document should keep value, got %v", out.Density)
	}
}
