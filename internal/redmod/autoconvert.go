package redmod

import (
	"github.com/harrison/conductor/internal/detect"
	"github.com/harrison/conductor/internal/hostapi"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/pathmatch"
)

func notifyInfo(ctx *detect.Context, title, message string) {
	if ctx == nil || ctx.UI == nil {
		return
	}
	ctx.UI.SendNotification(hostapi.Notification{
		Type:    hostapi.NotificationInfo,
		Title:   title,
		Message: message,
	})
}

// Autoconvert rewrites a canonical archive-only install into a fully
// formed REDmod module. It is only ever called when
// Features.REDmodAutoconvertArchives is enabled and the archive detector
// produced a non-XL KindArchiveCanon result; any other input is returned
// unchanged, and an XL result is explicitly skipped with an info
// notification (a known limitation: XL archives stay as canonical
// archives rather than being folded into a REDmod module).
func Autoconvert(ctx *detect.Context, modInfo hostapi.ModInfo, archive layout.Instructions) (layout.Instructions, error) {
	if archive.Kind == layout.KindArchiveXL {
		notifyInfo(ctx, "REDmod autoconvert", "XL archives are not autoconverted and remain canonical archives")
		return archive, nil
	}
	if archive.Kind != layout.KindArchiveCanon {
		return archive, nil
	}

	taggedName := modInfo.Name + layout.AutoconvertMarker
	info := &Info{Name: taggedName, Version: modInfo.Version}
	data, err := info.Marshal()
	if err != nil {
		return layout.Instructions{}, detect.StructureError("failed to synthesize info.json: " + err.Error())
	}

	destRoot := pathmatch.Join(layout.PrefixREDmodBase, taggedName)

	var instructions []layout.Instruction
	instructions = append(instructions, layout.GenerateFile(data, pathmatch.Join(destRoot, layout.InfoJSONName)))
	for _, in := range archive.Instructions {
		instructions = append(instructions, layout.RemapDestination(in, layout.PrefixArchiveMod, pathmatch.Join(destRoot, layout.REDmodArchivesDir)))
	}
	instructions = append(instructions, layout.Mkdir(layout.REDmodModdedScriptsDir))

	deduped, conflicts := layout.Dedup(instructions)
	if len(conflicts) > 0 {
		return layout.Instructions{}, detect.ConflictError("REDmod autoconversion produced conflicting destinations: " + conflicts[0])
	}

	notifyInfo(ctx, "REDmod autoconvert", "converted legacy archive-only mod \""+modInfo.Name+"\" into a REDmod module")

	return layout.Instructions{Kind: layout.KindREDmodTransformedArchive, Instructions: deduped}, nil
}
