package mipmap

import (
	"fmt"
	"path/filepath"
)

// Density is a screen density bucket and the edge length, in pixels,
// of the square launcher icon used for it.
type Density struct {
	Name string
	Size int
}

// densities is ordered from the lowest to the highest screen density.
var densities = [...]Density{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}

// Densities returns a copy of the density table in ascending order.
func Densities() []Density {
	d := make([]Density, len(densities))
	copy(d, densities[:])
	return d
}

// LookupDensity returns the density bucket with the provided name.
func LookupDensity(name string) (Density, bool) {
	for _, d := range densities {
		if d.Name == name {
			return d, true
		}
	}
	return Density{}, false
}

// Dir returns the resource directory name of the density bucket.
func (d Density) Dir() string {
	return "mipmap-" + d.Name
}

// Kind is the launcher icon variant.
type Kind int

const (
	Standard Kind = iota
	Round
)

var kinds = [...]Kind{Standard, Round}

// Kinds returns the icon variants in the order they are generated.
func Kinds() []Kind {
	k := make([]Kind, len(kinds))
	copy(k, kinds[:])
	return k
}

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case Standard:
		return "standard"
	case Round:
		return "round"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// FileName returns the file name the Android build system expects for the variant.
func (k Kind) FileName() string {
	if k == Round {
		return "ic_launcher_round.webp"
	}
	return "ic_launcher.webp"
}

// Artifact identifies one generated icon file.
type Artifact struct {
	Density Density
	Kind    Kind
}

// Path returns the location of the artifact under the resource root.
func (a Artifact) Path(root string) string {
	return filepath.Join(root, a.Density.Dir(), a.Kind.FileName())
}

// Artifacts enumerates every (density, kind) pair, standard before round
// within each density bucket.
func Artifacts() []Artifact {
	arts := make([]Artifact, 0, len(densities)*len(kinds))
	for _, d := range densities {
		for _, k := range kinds {
			arts = append(arts, Artifact{Density: d, Kind: k})
		}
	}
	return arts
}
