// Package config loads [rijndaelbox.Options] from YAML, using
// gopkg.in/yaml.v3 — the teacher's go.mod already carried this
// dependency indirectly; this package gives it a concrete home so a
// host application can keep its encryption defaults in a config file
// instead of constructing Options in code.
package config

import (
	"io"

	"gopkg.in/yaml.v3"

	rijndaelbox "github.com/masterkusok/rijndaelbox"
)

// fileOptions mirrors rijndaelbox.Options with YAML-friendly field
// names and string enums, since Mode/Encoding/CharMarker are not
// self-describing as bare integers in a config file.
type fileOptions struct {
	Mode       string `yaml:"mode"`
	Nb         int    `yaml:"nb"`
	Nk         int    `yaml:"nk"`
	Encoding   string `yaml:"encoding"`
	CharMarker string `yaml:"char_marker"`
}

// Load reads YAML-encoded options from r and returns the equivalent
// [rijndaelbox.Options]. Unrecognized enum values fall back to the
// library defaults for that field rather than failing the load,
// matching the teacher's generally permissive config-loading style.
func Load(r io.Reader) (rijndaelbox.Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return rijndaelbox.Options{}, err
	}

	var fo fileOptions
	if err := yaml.Unmarshal(data, &fo); err != nil {
		return rijndaelbox.Options{}, err
	}

	opts := rijndaelbox.DefaultOptions()

	switch fo.Mode {
	case "cbc", "CBC":
		opts.Mode = rijndaelbox.ModeCBC
	case "ocb", "OCB":
		opts.Mode = rijndaelbox.ModeOCB
	case "auto", "AUTO", "":
		opts.Mode = rijndaelbox.ModeAuto
	}

	if fo.Nb != 0 {
		opts.Nb = fo.Nb
	}
	if fo.Nk != 0 {
		opts.Nk = fo.Nk
	}

	switch fo.Encoding {
	case "base64", "b64", "":
		opts.Encoding = rijndaelbox.EncodingBase64
	case "raw":
		opts.Encoding = rijndaelbox.EncodingRaw
	}

	switch fo.CharMarker {
	case "M", "m", "multibyte":
		opts.CharMarker = rijndaelbox.CharMultibyte
	case "U", "u", "unibyte", "":
		opts.CharMarker = rijndaelbox.CharUnibyte
	}

	return opts, nil
}
