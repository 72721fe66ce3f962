package tilemap

import "github.com/bodgit/tilemap/asm"

// GroupTableLabel labels the table of map group pointers.
const GroupTableLabel = "gMapGroups"

// GroupIndex lists the maps of a project by group.
type GroupIndex struct {
	// Groups holds the label of each group, in table order
	Groups []string
	// Maps holds the maps of each group, parallel to Groups
	Maps [][]string
	// Names holds every map, in the order encountered
	Names []string
}

// ReadGroups builds a GroupIndex from the parsed group table file. The
// groups are the .4byte entries under gMapGroups and each map is a .4byte
// entry under the label of its group.
func ReadGroups(cmds asm.Commands) GroupIndex {
	var g GroupIndex

	inTable := false
	for _, cmd := range cmds {
		if cmd.IsLabel() {
			if inTable {
				break
			}
			inTable = cmd.Param(0) == GroupTableLabel
			continue
		}
		if inTable && cmd.Name == asm.Byte4 {
			g.Groups = append(g.Groups, cmd.Params...)
		}
	}

	g.Maps = make([][]string, len(g.Groups))
	group := -1
	for _, cmd := range cmds {
		switch {
		case cmd.IsLabel():
			group = g.index(cmd.Param(0))
		case cmd.Name == asm.Byte4 && group != -1:
			g.Maps[group] = append(g.Maps[group], cmd.Params...)
			g.Names = append(g.Names, cmd.Params...)
		}
	}

	return g
}

func (g *GroupIndex) index(label string) int {
	for i, name := range g.Groups {
		if name == label {
			return i
		}
	}
	return -1
}

// Group returns the index of the group containing map name, or -1.
func (g *GroupIndex) Group(name string) int {
	for i, maps := range g.Maps {
		for _, m := range maps {
			if m == name {
				return i
			}
		}
	}
	return -1
}

// Groups returns the map group index, reading it on first use.
func (p *Project) Groups() *GroupIndex {
	if p.groups == nil {
		g := ReadGroups(p.pool(p.layout.MapGroups))
		p.groups = &g
	}
	return p.groups
}
