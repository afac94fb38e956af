package msh

import (
	"strings"
)

/*
	$MeshFormat
	4.1 0 8
	$EndMeshFormat
	$Nodes
	1 2 1 2
	...
	$EndNodes
*/

const (
	sectionSigil  = "$"
	sectionEnd    = "$End"
	commentMarker = "#"
)

// SectionMap holds the sections of an MSH file keyed by name, preserving
// the order in which each name was first seen. A repeated section name
// replaces the earlier content in place (last write wins).
type SectionMap struct {
	order  []string
	byName map[string][]string
}

func NewSectionMap() *SectionMap {
	return &SectionMap{byName: make(map[string][]string)}
}

func (sm *SectionMap) Set(name string, lines []string) {
	if _, ok := sm.byName[name]; !ok {
		sm.order = append(sm.order, name)
	}
	sm.byName[name] = lines
}

func (sm *SectionMap) Get(name string) (lines []string, ok bool) {
	lines, ok = sm.byName[name]
	return
}

// Names returns the section names in discovery order.
func (sm *SectionMap) Names() []string {
	return sm.order
}

func (sm *SectionMap) Len() int {
	return len(sm.order)
}

// SplitSections partitions raw MSH text into named sections, dropping the
// "$Name"/"$EndName" marker lines themselves. The parse is permissive:
//   - lines outside any section are ignored, so leading junk is harmless
//   - "$End..." with no open section is ignored
//   - a new "$Name" while a section is still open abandons the open
//     section's accumulated lines
//   - an unterminated trailing section is discarded
//
// Annotation lines starting with "#" (emitted by a previous formatting
// pass) are stripped here so that re-formatting an annotated file does not
// duplicate its comments.
func SplitSections(content string) (sections *SectionMap) {
	var (
		current string
		open    bool
		accum   []string
	)
	sections = NewSectionMap()
	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, sectionEnd):
			if open {
				sections.Set(current, accum)
				open = false
				accum = nil
			}
		case strings.HasPrefix(line, sectionSigil):
			current = line[len(sectionSigil):]
			open = true
			accum = nil
		case open:
			if strings.HasPrefix(strings.TrimSpace(line), commentMarker) {
				continue
			}
			accum = append(accum, line)
		}
	}
	return
}
