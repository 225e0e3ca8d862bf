// Package toml reads and writes TOML through the filesystem package.
package toml

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/noteui/androidutil/filesystem"
	"github.com/noteui/androidutil/util/log"
)

func Encode(w io.Writer, data interface{}) error {
	return toml.NewEncoder(w).Encode(data)
}

func EncodeFile(file string, data interface{}) error {
	fp, err := filesystem.Store(file)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Encode(fp, data)
}

// Decode stores the content of r into data.
// Keys unknown to data are logged, not rejected.
func Decode(r io.Reader, data interface{}) error {
	meta, err := toml.NewDecoder(r).Decode(data)
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Infoln("toml.Decode:", "undecoded keys exist,", undecoded)
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
