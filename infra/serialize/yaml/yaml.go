// Package yaml reads and writes YAML through the filesystem package.
package yaml

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/noteui/androidutil/filesystem"
)

func Encode(w io.Writer, data interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

func EncodeFile(file string, data interface{}) error {
	fp, err := filesystem.Store(file)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Encode(fp, data)
}

// Decode stores the content of r into data. An empty document leaves data untouched.
func Decode(r io.Reader, data interface{}) error {
	err := yaml.NewDecoder(r).Decode(data)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func DecodeFile(file string, data interface{}) error {
	fp, err := filesystem.Load(file)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Decode(fp, data)
}
