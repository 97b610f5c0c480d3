// Package redmod implements the REDmodEngine: detection and installation
// of the three mutually-exclusive REDmod layouts (Canon, Named, Toplevel),
// reading and schema-validating each module's info.json, and the
// autoconversion of a legacy archive-only mod into a synthesized REDmod
// module.
package redmod

import (
	"encoding/json"
	"fmt"

	"github.com/harrison/conductor/internal/detect"
	"github.com/harrison/conductor/internal/hostapi"
)

// SoundTypeModSkip is the only CustomSound.Type value that permits an
// info.json to declare sounds without shipping any audio files.
const SoundTypeModSkip = "mod_skip"

// CustomSound is one entry of info.json's optional customSounds array.
type CustomSound struct {
	Type string `json:"type"`
}

// Info is the parsed, schema-validated contents of a module's info.json.
type Info struct {
	Name         string             `json:"name"`
	Version      hostapi.ModVersion `json:"version"`
	CustomSounds []CustomSound      `json:"customSounds,omitempty"`
}

// ParseInfo unmarshals and schema-validates raw info.json bytes.
func ParseInfo(data []byte) (*Info, error) {
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, detect.ValidationError(fmt.Sprintf("info.json is not valid JSON: %v", err))
	}
	if err := info.validate(); err != nil {
		return nil, err
	}
	return &info, nil
}

func (i *Info) validate() error {
	if i.Name == "" {
		return detect.ValidationError("info.json: \"name\" is required")
	}
	if i.Version.V == "" {
		return detect.ValidationError("info.json: \"version.v\" is required")
	}
	return nil
}

// DeclaresSoundsPresent reports whether info.json's customSounds array
// declares at least one sound type other than mod_skip, meaning audio
// files are expected to be present under customSounds\.
func (i *Info) DeclaresSoundsPresent() bool {
	if len(i.CustomSounds) == 0 {
		return false
	}
	for _, s := range i.CustomSounds {
		if s.Type != SoundTypeModSkip {
			return true
		}
	}
	return false
}

// Marshal serializes info back to indented JSON, used when synthesizing
// an info.json during archive autoconversion.
func (i *Info) Marshal() ([]byte, error) {
	return json.MarshalIndent(i, "", "  ")
}
