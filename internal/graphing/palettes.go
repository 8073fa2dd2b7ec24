//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package graphing

import (
	"sort"
	"strings"
)

//
// COLOR PALETTES
//

// the charts need one color per topic; the palettes cycle if asked for more
// colors than they carry

var palettes = map[string][]string{
	"spectral": {"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf",
		"#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2"},
	"set3": {"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
		"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f"},
	"tableau": {"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f", "#edc948",
		"#b07aa1", "#ff9da7", "#9c755f", "#bab0ac"},
	"viridis": {"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89",
		"#35b779", "#6ece58", "#b5de2b", "#fde725"},
}

// Palette - n colors from the named palette; unknown names fall back to "spectral"
func Palette(name string, n int) []string {
	base, ok := palettes[strings.ToLower(name)]
	if !ok {
		base = palettes["spectral"]
	}

	if n < 1 {
		n = 1
	}

	cc := make([]string, n)
	for i := 0; i < n; i++ {
		cc[i] = base[i%len(base)]
	}
	return cc
}

// PaletteNames - the known palette names, alphabetized, for the help text
func PaletteNames() string {
	nn := make([]string, 0, len(palettes))
	for n := range palettes {
		nn = append(nn, n)
	}
	sort.Strings(nn)
	return strings.Join(nn, ", ")
}
