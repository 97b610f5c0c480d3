package layout

import (
	"sort"

	"github.com/harrison/conductor/internal/pathmatch"
)

// InstructionType discriminates the three instruction shapes the host
// understands.
type InstructionType string

const (
	InstructionCopy         InstructionType = "copy"
	InstructionGenerateFile InstructionType = "generatefile"
	InstructionMkdir        InstructionType = "mkdir"
)

// Instruction is one step of the plan handed back to the host. Only the
// fields relevant to Type are populated; the rest are zero values.
type Instruction struct {
	Type        InstructionType `json:"type"`
	Source      string          `json:"source,omitempty"`
	Data        []byte          `json:"data,omitempty"`
	Destination string          `json:"destination"`
}

// Copy builds a copy instruction: source must be a path from the original
// input file list, destination is relative to the game root.
func Copy(source, destination string) Instruction {
	return Instruction{
		Type:        InstructionCopy,
		Source:      pathmatch.Normalize(source),
		Destination: pathmatch.Normalize(destination),
	}
}

// GenerateFile builds an instruction to synthesize a file with the given
// bytes at destination (used for synthesized info.json during REDmod
// autoconversion).
func GenerateFile(data []byte, destination string) Instruction {
	return Instruction{
		Type:        InstructionGenerateFile,
		Data:        data,
		Destination: pathmatch.Normalize(destination),
	}
}

// Mkdir builds an instruction asking the host to create an empty
// directory (used by REDmod to ensure the modded-scripts directory exists).
func Mkdir(destination string) Instruction {
	return Instruction{
		Type:        InstructionMkdir,
		Destination: pathmatch.Normalize(destination),
	}
}

// Instructions is the value returned by a layout function: the chosen
// kind plus its flattened, deduplicated instruction list.
type Instructions struct {
	Kind         Kind
	Instructions []Instruction
}

// NoMatch signals that a detector's layout function was invoked but the
// tree did not, after all, match. It is not an error; Pipeline.Install
// returns it as is and does not try another installer.
func NoMatch() Instructions {
	return Instructions{Kind: KindNoMatch}
}

// InvalidLayout signals a tree shape the detector recognized but could
// not turn into a valid install (the pipeline does not continue past this).
func InvalidLayout() Instructions {
	return Instructions{Kind: KindInvalid}
}

// IsNoMatch reports whether this result carries no instructions because
// the detector does not apply.
func (i Instructions) IsNoMatch() bool { return i.Kind == KindNoMatch }

// IsInvalid reports whether this result carries no instructions because
// the detector matched but rejected the layout.
func (i Instructions) IsInvalid() bool { return i.Kind == KindInvalid }

// Dedup removes instructions that share a destination, keeping the first
// occurrence in input order (deterministic given sorted input). It also
// reports destinations where two *different* copy sources collided, which
// callers treat as a hard conflict.
func Dedup(instructions []Instruction) (deduped []Instruction, conflicts []string) {
	seen := make(map[string]Instruction, len(instructions))
	var order []string
	conflictSet := map[string]bool{}
	for _, in := range instructions {
		existing, ok := seen[in.Destination]
		if !ok {
			seen[in.Destination] = in
			order = append(order, in.Destination)
			continue
		}
		if existing.Type == InstructionCopy && in.Type == InstructionCopy && existing.Source != in.Source {
			if !conflictSet[in.Destination] {
				conflictSet[in.Destination] = true
				conflicts = append(conflicts, in.Destination)
			}
		}
	}
	deduped = make([]Instruction, 0, len(order))
	for _, d := range order {
		deduped = append(deduped, seen[d])
	}
	sort.Strings(conflicts)
	return deduped, conflicts
}

// RemapDestination returns a copy of in with its destination rewritten
// from under oldPrefix to under newPrefix, used by fix-ups that relocate
// mis-packaged files (e.g. Heritage archives, REDmod autoconversion).
func RemapDestination(in Instruction, oldPrefix, newPrefix string) Instruction {
	rest := pathmatch.TrimPrefix(oldPrefix, in.Destination)
	out := in
	out.Destination = pathmatch.Join(newPrefix, rest)
	return out
}

// AllUnderPrefix reports whether every instruction's destination lies
// under one of the permitted prefixes.
func AllUnderPrefix(instructions []Instruction, prefixes ...string) bool {
	for _, in := range instructions {
		ok := false
		for _, p := range prefixes {
			if pathmatch.PrefixOf(p, in.Destination) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
