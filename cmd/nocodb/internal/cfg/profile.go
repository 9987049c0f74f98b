// Copyright (c) 2026 NocoDB Go Client Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cfg

// In this file: connection profile, stored as a TOML file in the user
// configuration directory.

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

const defProfileLocation = "$HOME/.config/nocodb/config.toml"

// Profile holds saved connection settings.  Command line flags and
// environment variables take precedence over the profile values.
type Profile struct {
	BaseURL string `toml:"url" validate:"omitempty,url"`
	Token   string `toml:"token"`
	Base    string `toml:"base"`
}

var validate = validator.New()

// ProfilePath returns the path of the profile file: the -profile flag value
// if given, otherwise the default location in the user configuration
// directory.
func ProfilePath() (string, error) {
	if ProfileFile != "" {
		return ProfileFile, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nocodb", "config.toml"), nil
}

// LoadProfile reads and validates the profile file.  A missing file is not
// an error: it returns an empty profile.
func LoadProfile() (*Profile, error) {
	path, err := ProfilePath()
	if err != nil {
		return nil, err
	}
	var p Profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Profile{}, nil
		}
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &p, nil
}

// SaveProfile writes the profile to the profile file, creating the
// directory if necessary.  The file is created with 0600 permissions as it
// contains the API token.
func SaveProfile(p *Profile) error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	path, err := ProfilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(p)
}

// ApplyProfile fills in the unset connection variables from the profile.
func ApplyProfile(p *Profile) {
	if BaseURL == "" {
		BaseURL = p.BaseURL
	}
	if Token == "" {
		Token = p.Token
	}
	if Base == "" {
		Base = p.Base
	}
}
