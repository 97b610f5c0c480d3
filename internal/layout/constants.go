// Package layout holds the data model shared by every installer: the
// canonical destination prefixes and known-file tables for each mod kind
// (LayoutConstants), the tagged LayoutKind variant set, and the
// Instruction/Instructions value types the pipeline returns to the host.
package layout

import "strings"

// Canonical destination prefixes, bit-exact per spec.
const (
	PrefixArchiveMod   = `archive\pc\mod`
	PrefixArchivePatch = `archive\pc\patch`
	PrefixCET          = `bin\x64\plugins\cyber_engine_tweaks\mods`
	PrefixRedscript    = `r6\scripts`
	PrefixRed4Ext      = `red4ext\plugins`
	PrefixIniConfig    = `engine\config\platform\pc`
	PrefixReshade      = `bin\x64`
	PrefixREDmodBase   = `mods`
)

// GlobalINI is the reserved CET global configuration file; its presence
// rejects the INI/Reshade detector outright.
const GlobalINI = `bin\x64\global.ini`

// Well-known file/extension markers.
const (
	InitLuaName    = "init.lua"
	RedscriptExt   = ".reds"
	ArchiveExt     = ".archive"
	XLExt          = ".xl"
	DLLExt         = ".dll"
	IniExt         = ".ini"
	JSONExt        = ".json"
	InfoJSONName   = "info.json"
	OptionsJSONName = "options.json"
)

// ReshadeShadersDirName is the subdirectory name Reshade presets keep
// their shader sources under.
const ReshadeShadersDirName = "reshade-shaders"

// NonOverridableDLLs names redistributable .NET/CoreCLR host files a
// Red4Ext mod must never claim to ship; their presence is a hard reject.
var NonOverridableDLLs = map[string]bool{
	"clrcompression.dll":         true,
	"clrjit.dll":                 true,
	"coreclr.dll":                true,
	"hostfxr.dll":                true,
	"hostpolicy.dll":             true,
	"mscordaccore.dll":           true,
	"mscordbi.dll":               true,
	"mscorlib.dll":               true,
	"system.private.corelib.dll": true,
}

// Red4ExtBinRoot is a destination prefix Red4Ext DLLs must never be
// deployed under: it is owned by the game's own redistributable payload.
const Red4ExtBinRoot = `bin\x64`

// IsNonOverridableDLL reports whether basename (any case) names a
// redistributable DLL that no Red4Ext mod may ship.
func IsNonOverridableDLL(basename string) bool {
	return NonOverridableDLLs[strings.ToLower(basename)]
}

// KnownJSONPaths maps a recognized config JSON's basename (case-sensitive,
// matching the game's own emitted names) to its canonical destination.
var KnownJSONPaths = map[string]string{
	"giweights.json":       `engine\config\giweights.json`,
	"bumpersSettings.json": `engine\config\bumpersSettings.json`,
	"tweakdb.str.json":     `engine\config\tweakdb.str.json`,
	"viewsettings.json":    `engine\config\viewsettings.json`,
	"localization.json":    `engine\config\localization.json`,
}

// OptionsJSONPrefix is the only permitted parent directory for an
// options.json file.
const OptionsJSONPrefix = `r6\config\settings`

// RideAlongExts lists extensions permitted to ride alongside a known JSON
// layout without needing their own table entry (READMEs, changelogs).
var RideAlongExts = []string{".txt", ".md"}

// REDmod subtype directory names, relative to a module root.
const (
	REDmodArchivesDir      = "archives"
	REDmodCustomSoundsDir  = "customSounds"
	REDmodScriptsDir       = "scripts"
	REDmodTweaksDir        = "tweaks"
	REDmodModdedScriptsDir = `r6\scripts\modmodded`
)

// REDmodSubtypeDirs is the full recognized subtype directory set under a
// module root; anything else is an "extra file".
var REDmodSubtypeDirs = map[string]bool{
	REDmodArchivesDir:     true,
	REDmodCustomSoundsDir: true,
	REDmodScriptsDir:      true,
	REDmodTweaksDir:       true,
}

// REDmodArchiveExts are the extensions recognized under a module's
// archives\ subtype directory.
var REDmodArchiveExts = []string{ArchiveExt, XLExt}

// REDmodSoundExts are the extensions recognized under a module's
// customSounds\ subtype directory.
var REDmodSoundExts = []string{".wav", ".mp3", ".ogg", ".flac"}

// AutoconvertMarker tags a REDmod name synthesized by the archive
// autoconversion path, so it never collides with a hand-authored module.
const AutoconvertMarker = "_autoconverted"
