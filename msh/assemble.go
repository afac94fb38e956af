package msh

import (
	"strings"
)

// Canonical section order for MSH 4.1. Sections not in this list are
// appended after it in discovery order.
var canonicalOrder = []string{
	SectionMeshFormat,
	SectionPhysicalNames,
	SectionEntities,
	SectionNodes,
	SectionElements,
	"Periodic",
	"GhostElements",
	"Parametrizations",
	"NodeData",
	"ElementData",
}

// Assemble interprets every section and serializes the result: canonical
// order first, unknown sections after, each wrapped in its "$Name" and
// "$EndName" markers with the configured blank-line spacing in between.
// Non-empty output always ends with a newline.
func Assemble(sections *SectionMap, o *Options) string {
	var (
		out     []string
		spacing = o.SectionSpacing
	)
	if o.CompactMode {
		spacing = 0
	}
	emit := func(name string, lines []string) {
		if len(out) > 0 {
			for s := 0; s < spacing; s++ {
				out = append(out, "")
			}
		}
		out = append(out, sectionSigil+name)
		out = append(out, FormatSection(name, lines, o)...)
		out = append(out, sectionEnd+name)
	}
	for _, name := range canonicalOrder {
		if lines, ok := sections.Get(name); ok {
			emit(name, lines)
		}
	}
	for _, name := range sections.Names() {
		if isCanonical(name) {
			continue
		}
		lines, _ := sections.Get(name)
		emit(name, lines)
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

func isCanonical(name string) bool {
	for _, c := range canonicalOrder {
		if name == c {
			return true
		}
	}
	return false
}
