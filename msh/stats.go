package msh

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// MeshStats is a read-only summary of a mesh file: section inventory,
// block and record counts, and the coordinate bounding box. It performs no
// transformation of the mesh.
type MeshStats struct {
	Sections                   []string
	NodeBlocks, NumNodes       int
	ElementBlocks, NumElements int
	XMin, XMax                 float64
	YMin, YMax                 float64
	ZMin, ZMax                 float64
	HaveCoords                 bool
}

// ComputeStats walks the same block structure the formatter does, but only
// counts records and accumulates coordinates.
func ComputeStats(content string) (stats MeshStats) {
	sections := SplitSections(content)
	stats.Sections = sections.Names()
	var vx, vy, vz []float64
	if lines, ok := sections.Get(SectionNodes); ok {
		i := 1
		for i < len(lines) {
			line := strings.TrimSpace(lines[i])
			if len(line) == 0 {
				i++
				continue
			}
			_, _, _, numNodes, ok := parseBlockHeader(strings.Fields(line))
			if !ok {
				i++
				continue
			}
			stats.NodeBlocks++
			i++
			for n := 0; n < numNodes && i < len(lines); n++ { // node tags
				i++
			}
			for n := 0; n < numNodes && i < len(lines); n++ {
				coords, err := parseFloats(strings.Fields(strings.TrimSpace(lines[i])))
				if err == nil && len(coords) >= 3 {
					vx = append(vx, coords[0])
					vy = append(vy, coords[1])
					vz = append(vz, coords[2])
				}
				stats.NumNodes++
				i++
			}
		}
	}
	if lines, ok := sections.Get(SectionElements); ok {
		i := 1
		for i < len(lines) {
			line := strings.TrimSpace(lines[i])
			if len(line) == 0 {
				i++
				continue
			}
			_, _, _, numElements, ok := parseBlockHeader(strings.Fields(line))
			if !ok {
				i++
				continue
			}
			stats.ElementBlocks++
			i++
			for n := 0; n < numElements && i < len(lines); n++ {
				stats.NumElements++
				i++
			}
		}
	}
	if len(vx) != 0 {
		stats.HaveCoords = true
		stats.XMin, stats.XMax = floats.Min(vx), floats.Max(vx)
		stats.YMin, stats.YMax = floats.Min(vy), floats.Max(vy)
		stats.ZMin, stats.ZMax = floats.Min(vz), floats.Max(vz)
	}
	return
}

func (stats *MeshStats) Print() {
	fmt.Printf("Sections: %s\n", strings.Join(stats.Sections, ", "))
	fmt.Printf("Nodes: %d blocks, %d nodes\n", stats.NodeBlocks, stats.NumNodes)
	fmt.Printf("Elements: %d blocks, %d elements\n", stats.ElementBlocks, stats.NumElements)
	if stats.HaveCoords {
		fmt.Printf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\nZMin/ZMax = %5.3f, %5.3f\n",
			stats.XMin, stats.XMax, stats.YMin, stats.YMax, stats.ZMin, stats.ZMax)
	}
}
