package tilemap

import (
	"strconv"
	"strings"

	"github.com/bodgit/tilemap/asm"
)

const objectGfxPrefix = "MAP_OBJ_GFX_"

// SongNames returns the name of every song constant.
func (p *Project) SongNames() []string {
	var names []string
	for _, c := range p.pool(p.layout.Songs).Constants(asm.Equiv) {
		names = append(names, c.Name)
	}
	return names
}

// SongName returns the name of the song constant with the given value, or an
// empty string if there isn't one.
func (p *Project) SongName(value int) string {
	for _, c := range p.pool(p.layout.Songs).Constants(asm.Equiv) {
		if asm.Int(c.Value) == value {
			return c.Name
		}
	}
	return ""
}

// ObjectGfxConstants returns the value of every object graphics constant.
func (p *Project) ObjectGfxConstants() map[string]int {
	constants := make(map[string]int)
	for _, c := range p.pool(p.layout.ObjectConstants).Constants(asm.Set) {
		if strings.HasPrefix(c.Name, objectGfxPrefix) {
			constants[c.Name] = asm.Int(c.Value)
		}
	}
	return constants
}

func numbers(n int) []string {
	s := make([]string, n)
	for i := range s {
		s[i] = strconv.Itoa(i)
	}
	return s
}

// Locations returns the choices for a map header location.
func Locations() []string { return numbers(88) }

// Visibilities returns the choices for a map header visibility.
func Visibilities() []string { return numbers(16) }

// Weathers returns the choices for a map header weather.
func Weathers() []string { return numbers(16) }

// MapTypes returns the choices for a map header type.
func MapTypes() []string { return numbers(16) }

// BattleScenes returns the choices for a map header battle scene.
func BattleScenes() []string { return numbers(16) }
