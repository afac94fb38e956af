package msh

import (
	"fmt"
	"strconv"
	"strings"
)

// Known section names for the MSH 4.1 ASCII format
const (
	SectionMeshFormat    = "MeshFormat"
	SectionPhysicalNames = "PhysicalNames"
	SectionEntities      = "Entities"
	SectionNodes         = "Nodes"
	SectionElements      = "Elements"
)

// FormatSection re-renders one section's body lines according to the
// section kind. Unknown kinds pass through verbatim, optionally prefixed
// with an annotation comment.
func FormatSection(name string, lines []string, o *Options) []string {
	switch name {
	case SectionMeshFormat:
		return formatMeshFormat(lines, o)
	case SectionPhysicalNames:
		return formatPhysicalNames(lines, o)
	case SectionEntities:
		return formatEntities(lines, o)
	case SectionNodes:
		return formatNodes(lines, o)
	case SectionElements:
		return formatElements(lines, o)
	default:
		if o.AddComments {
			return append([]string{fmt.Sprintf("# Section: %s", name)}, lines...)
		}
		return lines
	}
}

// The version line is opaque to the formatter (version, file-type flag,
// data size), so it is copied unchanged.
func formatMeshFormat(lines []string, o *Options) (formatted []string) {
	if o.AddComments {
		formatted = append(formatted, "# MSH File Format Version")
	}
	formatted = append(formatted, lines...)
	return
}

/*
$PhysicalNames
2
1 1 "Left Edge"
2 2 "Domain"
$EndPhysicalNames
*/
func formatPhysicalNames(lines []string, o *Options) (formatted []string) {
	if o.AddComments {
		formatted = append(formatted, "# Physical Groups")
	}
	if len(lines) == 0 {
		return
	}
	// First line is the group count
	formatted = append(formatted, lines[0])
	for _, line := range lines[1:] {
		parts := splitRecord(line, 3)
		if len(parts) < 3 {
			formatted = append(formatted, line)
			continue
		}
		dim, err1 := strconv.Atoi(parts[0])
		tag, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			formatted = append(formatted, line)
			continue
		}
		if o.AlignColumns {
			formatted = append(formatted,
				fmt.Sprintf("%s%s %s", o.FormatInt(dim, 3), o.FormatInt(tag, 10), parts[2]))
		} else {
			formatted = append(formatted,
				fmt.Sprintf("%d %d %s", dim, tag, parts[2]))
		}
	}
	return
}

/*
$Entities
4 4 1 0
1 0 0 0 0 0 0 0
1 0 0 0 1 0 0 0 2 1 -2
$EndEntities
*/
func formatEntities(lines []string, o *Options) (formatted []string) {
	if o.AddComments {
		formatted = append(formatted, "# Geometric Entities")
	}
	if len(lines) == 0 {
		return
	}
	// First line holds the aggregate entity counts
	formatted = append(formatted, lines[0])
	for _, line := range lines[1:] {
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 7 {
			formatted = append(formatted, line)
			continue
		}
		tag, err := strconv.Atoi(parts[0])
		if err != nil {
			formatted = append(formatted, line)
			continue
		}
		bbox, err := parseFloats(parts[1:7])
		if err != nil {
			formatted = append(formatted, line)
			continue
		}
		rest := strings.Join(parts[7:], " ")
		formatted = append(formatted,
			strings.TrimRight(fmt.Sprintf("%s %s %s", o.FormatInt(tag, 10), o.FormatCoordinates(bbox), rest), " "))
	}
	return
}

/*
$Nodes
1 2 1 2      <- numBlocks numNodes minTag maxTag
2 5 0 2      <- block: dim entityTag parametric numNodes
1            <- node tags, one per line
2
0.1 0.2 0.3  <- coordinates, one triple per line
0.4 0.5 0.6
$EndNodes
*/
func formatNodes(lines []string, o *Options) (formatted []string) {
	if len(lines) == 0 {
		return
	}
	if o.AddComments {
		parts := strings.Fields(lines[0])
		if len(parts) >= 4 {
			formatted = append(formatted,
				fmt.Sprintf("# Nodes: %s entity blocks, %s total nodes", parts[0], parts[1]))
		} else {
			formatted = append(formatted, "# Node Definitions")
		}
	}
	formatted = append(formatted, lines[0])
	var (
		i         = 1
		nodeCount = 0
	)
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if len(line) == 0 {
			i++
			continue
		}
		parts := strings.Fields(line)
		dim, tag, parametric, numNodes, ok := parseBlockHeader(parts)
		if !ok {
			// Fallback for unexpected format
			formatted = append(formatted, line)
			i++
			continue
		}
		if o.AddComments {
			formatted = append(formatted, fmt.Sprintf("# Entity %s: %d nodes", parts[1], numNodes))
		}
		formatted = append(formatted, o.formatBlockHeader(dim, tag, parametric, 3, numNodes))
		i++
		// First run: one node tag per line
		for n := 0; n < numNodes && i < len(lines); n++ {
			nodeTag, err := strconv.Atoi(strings.TrimSpace(lines[i]))
			if err != nil {
				formatted = append(formatted, lines[i])
			} else {
				formatted = append(formatted, o.FormatInt(nodeTag, 10))
			}
			i++
		}
		// Second run: one coordinate line per node in the same order
		for n := 0; n < numNodes && i < len(lines); n++ {
			coords, err := parseFloats(strings.Fields(strings.TrimSpace(lines[i])))
			if err != nil {
				formatted = append(formatted, lines[i])
			} else {
				formatted = append(formatted, o.FormatCoordinates(coords))
			}
			i++
			nodeCount++
			if o.NodeCommentFreq > 0 && nodeCount%o.NodeCommentFreq == 0 {
				formatted = append(formatted, fmt.Sprintf("# ... %d nodes processed", nodeCount))
			}
		}
	}
	return
}

/*
$Elements
1 2 1 2      <- numBlocks numElements minTag maxTag
2 1 2 2      <- block: dim entityTag elementType numElements
1 1 2 3      <- elementTag node1 node2 ... nodeN
2 3 2 4
$EndElements
*/
func formatElements(lines []string, o *Options) (formatted []string) {
	if len(lines) == 0 {
		return
	}
	if o.AddComments {
		parts := strings.Fields(lines[0])
		if len(parts) >= 4 {
			formatted = append(formatted,
				fmt.Sprintf("# Elements: %s entity blocks, %s total elements", parts[0], parts[1]))
		} else {
			formatted = append(formatted, "# Element Definitions")
		}
	}
	formatted = append(formatted, lines[0])
	var (
		i            = 1
		elementCount = 0
	)
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if len(line) == 0 {
			i++
			continue
		}
		parts := strings.Fields(line)
		dim, tag, elType, numElements, ok := parseBlockHeader(parts)
		if !ok {
			// Fallback for unexpected format
			formatted = append(formatted, line)
			i++
			continue
		}
		if o.AddComments {
			formatted = append(formatted,
				fmt.Sprintf("# Entity %s: %d elements of type %s", parts[1], numElements, parts[2]))
		}
		formatted = append(formatted, o.formatBlockHeader(dim, tag, elType, 5, numElements))
		i++
		// Connectivity: elementTag followed by a type-dependent number of
		// node tags. The node count is not validated against the type.
		for n := 0; n < numElements && i < len(lines); n++ {
			elemParts := strings.Fields(strings.TrimSpace(lines[i]))
			if rendered, ok := o.formatConnectivity(elemParts); ok {
				formatted = append(formatted, rendered)
			} else if len(elemParts) > 0 {
				formatted = append(formatted, strings.TrimSpace(lines[i]))
			}
			i++
			elementCount++
			if o.ElementCommentFreq > 0 && elementCount%o.ElementCommentFreq == 0 {
				formatted = append(formatted, fmt.Sprintf("# ... %d elements processed", elementCount))
			}
		}
	}
	return
}

// A line with exactly four integer tokens at a block boundary is always a
// block header. This is the format's sole disambiguation rule; a
// legitimate 4-token data line at that position cannot be told apart.
func parseBlockHeader(parts []string) (dim, tag, discr, count int, ok bool) {
	var err error
	if len(parts) != 4 {
		return
	}
	if dim, err = strconv.Atoi(parts[0]); err != nil {
		return
	}
	if tag, err = strconv.Atoi(parts[1]); err != nil {
		return
	}
	if discr, err = strconv.Atoi(parts[2]); err != nil {
		return
	}
	if count, err = strconv.Atoi(parts[3]); err != nil {
		return
	}
	ok = true
	return
}

// formatBlockHeader renders "dim entityTag discr count". When columns are
// aligned the first three fields are concatenated (the padding supplies
// the separation) with a single space before the count.
func (o *Options) formatBlockHeader(dim, tag, discr, discrWidth, count int) string {
	if !o.AlignColumns {
		return fmt.Sprintf("%d %d %d %d", dim, tag, discr, count)
	}
	return fmt.Sprintf("%s%s%s %s",
		o.FormatInt(dim, 3), o.FormatInt(tag, 10), o.FormatInt(discr, discrWidth), o.FormatInt(count, 10))
}

func (o *Options) formatConnectivity(parts []string) (line string, ok bool) {
	if len(parts) == 0 {
		return
	}
	rendered := make([]string, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return
		}
		rendered[i] = o.FormatInt(v, 10)
	}
	return strings.Join(rendered, " "), true
}

func parseFloats(parts []string) (vals []float64, err error) {
	vals = make([]float64, len(parts))
	for i, p := range parts {
		if vals[i], err = strconv.ParseFloat(p, 64); err != nil {
			return nil, err
		}
	}
	return
}

// splitRecord splits a line on whitespace into at most n fields, the last
// field keeping the remainder of the line verbatim (quoted names may hold
// spaces).
func splitRecord(line string, n int) (fields []string) {
	rest := strings.TrimSpace(line)
	for len(fields) < n-1 {
		i := strings.IndexAny(rest, " \t")
		if i < 0 {
			break
		}
		fields = append(fields, rest[:i])
		rest = strings.TrimLeft(rest[i:], " \t")
	}
	if len(rest) > 0 {
		fields = append(fields, rest)
	}
	return
}
