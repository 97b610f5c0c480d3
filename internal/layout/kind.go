package layout

// Kind is the discriminated tag identifying which layout a detector chose.
// Keeping it a closed string enum (rather than an open class hierarchy)
// lets callers exhaustively switch on it.
type Kind string

const (
	KindCETCanon Kind = "cet.canon"

	KindRedscriptCanon     Kind = "redscript.canon"
	KindRedscriptBasedir   Kind = "redscript.basedir"
	KindRedscriptToplevel  Kind = "redscript.toplevel"

	KindRed4ExtCanon     Kind = "red4ext.canon"
	KindRed4ExtBasedir   Kind = "red4ext.basedir"
	KindRed4ExtModnamed  Kind = "red4ext.modnamed"
	KindRed4ExtToplevel  Kind = "red4ext.toplevel"

	KindArchiveCanon    Kind = "archive.canon"
	KindArchiveHeritage Kind = "archive.heritage"
	KindArchiveOther    Kind = "archive.other"
	KindArchiveXL       Kind = "archive.xl"

	KindINIReshade Kind = "ini.reshade"
	KindINIIni     Kind = "ini.ini"

	KindJSONCanon Kind = "json.canon"

	KindTweakXLCanon   Kind = "tweakxl.canon"
	KindTweakXLBasedir Kind = "tweakxl.basedir"

	KindREDmodCanon    Kind = "redmod.canon"
	KindREDmodNamed    Kind = "redmod.named"
	KindREDmodToplevel Kind = "redmod.toplevel"

	KindREDmodTransformedArchive Kind = "redmod-transformed.archive"

	KindCoreCET         Kind = "core.cet"
	KindCoreRedscript   Kind = "core.redscript"
	KindCoreRed4Ext     Kind = "core.red4ext"
	KindCoreCSVMerge    Kind = "core.csvmerge"
	KindCoreTweakXL     Kind = "core.tweakxl"
	KindCoreWolvenKitCLI Kind = "core.wolvenkitcli"

	KindMultiType Kind = "multitype"
	KindFallback  Kind = "fallback"

	KindNoMatch Kind = "no-instructions.no-match"
	KindInvalid Kind = "no-instructions.invalid"
)

// IsNoInstructions reports whether k is one of the two non-match tags.
func (k Kind) IsNoInstructions() bool {
	return k == KindNoMatch || k == KindInvalid
}
