// Package pipeline owns the ordered installer-descriptor registry: a
// fixed sequence of detectors, tried in priority order on testSupported,
// with the winning detector's Layout invoked on install.
// The pipeline itself never retries or combines installers — that
// composition already happened inside MultiType.
package pipeline

import (
	"sort"

	"github.com/harrison/conductor/internal/detect"
	"github.com/harrison/conductor/internal/filetree"
	"github.com/harrison/conductor/internal/hostapi"
	"github.com/harrison/conductor/internal/layout"
	"github.com/harrison/conductor/internal/multitype"
	"github.com/harrison/conductor/internal/pathmatch"
	"github.com/harrison/conductor/internal/redmod"
)

// InstallerType names the broad family a descriptor belongs to.
type InstallerType string

const (
	TypeCore      InstallerType = "core"
	TypeREDmod    InstallerType = "redmod"
	TypeMultiType InstallerType = "multitype"
	TypeRed4Ext   InstallerType = "red4ext"
	TypeRedscript InstallerType = "redscript"
	TypeCET       InstallerType = "cet"
	TypeTweakXL   InstallerType = "tweakxl"
	TypeINI       InstallerType = "ini"
	TypeArchive   InstallerType = "archive"
	TypeJSON      InstallerType = "json"
	TypeFallback  InstallerType = "fallback"
)

// PriorityStart is the base priority assigned to the first descriptor in
// the pipeline; each subsequent descriptor gets PriorityStart + index.
const PriorityStart = 30

// Descriptor is one entry of the pipeline's ordered registry.
type Descriptor struct {
	Type     InstallerType
	ID       string
	Priority int
	detector detect.Detector
}

// archiveWithAutoconvert wraps ArchiveOnly so a canonical result is handed
// to redmod.Autoconvert when the host has the feature enabled. Detect is
// unchanged; only Layout's post-processing differs.
type archiveWithAutoconvert struct {
	archive detect.ArchiveOnly
}

func (archiveWithAutoconvert) ID() string { return "archive-only" }

func (a archiveWithAutoconvert) Detect(tree *filetree.Tree) bool {
	return a.archive.Detect(tree)
}

func (a archiveWithAutoconvert) Layout(ctx *detect.Context, tree *filetree.Tree) (layout.Instructions, error) {
	result, err := a.archive.Layout(ctx, tree)
	if err != nil || result.IsNoMatch() || result.IsInvalid() {
		return result, err
	}
	if ctx.Features.AutoconvertEnabled() && result.Kind == layout.KindArchiveCanon {
		return redmod.Autoconvert(ctx, ctx.ModInfo, result)
	}
	return result, nil
}

var _ detect.Detector = archiveWithAutoconvert{}

// Pipeline holds the fixed-order descriptor registry and runs testSupported
// / install against it.
type Pipeline struct {
	descriptors []Descriptor
}

// New builds the pipeline in priority order: all Core installers,
// REDmod, MultiType, Red4Ext, Redscript, CET, TweakXL, INI, ArchiveOnly
// (with autoconversion), JSON, Fallback.
func New() *Pipeline {
	coreInstallers := detect.NewCoreInstallers()

	var detectors []detect.Detector
	var types []InstallerType
	for _, c := range coreInstallers {
		detectors = append(detectors, c)
		types = append(types, TypeCore)
	}
	detectors = append(detectors,
		redmod.Engine{},
		multitype.New(),
		detect.Red4Ext{},
		detect.Redscript{},
		detect.CET{},
		detect.TweakXL{},
		detect.INI{},
		archiveWithAutoconvert{},
		detect.JSON{},
		detect.Fallback{},
	)
	types = append(types,
		TypeREDmod,
		TypeMultiType,
		TypeRed4Ext,
		TypeRedscript,
		TypeCET,
		TypeTweakXL,
		TypeINI,
		TypeArchive,
		TypeJSON,
		TypeFallback,
	)

	descriptors := make([]Descriptor, len(detectors))
	for i, d := range detectors {
		descriptors[i] = Descriptor{
			Type:     types[i],
			ID:       d.ID(),
			Priority: PriorityStart + i,
			detector: d,
		}
	}

	return &Pipeline{descriptors: descriptors}
}

// Descriptors returns the registry in priority order, ascending.
func (p *Pipeline) Descriptors() []Descriptor {
	out := make([]Descriptor, len(p.descriptors))
	copy(out, p.descriptors)
	sort.Slice(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// winner returns the first descriptor, in priority order, whose detector
// claims tree.
func (p *Pipeline) winner(tree *filetree.Tree) *Descriptor {
	for i := range p.descriptors {
		if p.descriptors[i].detector.Detect(tree) {
			return &p.descriptors[i]
		}
	}
	return nil
}

// TestSupported implements the host's testSupported(files, gameId) call:
// supported is true iff some installer's detector matches the built tree
// and gameId is cyberpunk2077.
func (p *Pipeline) TestSupported(files []string, gameID string) hostapi.TestSupportedResult {
	if gameID != hostapi.CyberpunkGameID {
		return hostapi.TestSupportedResult{Supported: false}
	}
	tree := filetree.FromPaths(files)
	winner := p.winner(tree)
	if winner == nil {
		return hostapi.TestSupportedResult{Supported: false}
	}
	return hostapi.TestSupportedResult{Supported: true, RequiredFiles: tree.SourcePaths()}
}

// Install implements the host's install(files, destinationPath) call:
// re-runs detection to find the same winning installer, then invokes its
// Layout function against the provided destination.
func (p *Pipeline) Install(ctx *detect.Context, files []string, destinationPath string) (layout.Instructions, error) {
	tree := filetree.FromPaths(files)
	winner := p.winner(tree)
	if winner == nil {
		return layout.Instructions{}, detect.StructureError("no installer in the pipeline claims this file set")
	}

	installCtx := *ctx
	installCtx.DestinationPath = pathmatch.Normalize(destinationPath)

	return winner.detector.Layout(&installCtx, tree)
}

// Winner returns the descriptor that would claim files, or nil if none
// does. Exposed for callers (the explain CLI command) that need to report
// which installer was chosen, not just the resulting instructions.
func (p *Pipeline) Winner(files []string) *Descriptor {
	tree := filetree.FromPaths(files)
	w := p.winner(tree)
	if w == nil {
		return nil
	}
	cp := *w
	return &cp
}
