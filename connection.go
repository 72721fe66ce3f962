package tilemap

import "github.com/bodgit/tilemap/asm"

const connectionMacro = "connection"

// Connection links one edge of a map to a neighbouring map.
type Connection struct {
	Direction string
	Offset    string
	Map       string
}

// DecodeConnections reads the connection table labelled label. The table
// holds a count, which is ignored, and the label of the list of connection
// macros.
func DecodeConnections(cmds asm.Commands, label string) []Connection {
	if label == "" {
		return nil
	}

	list := asm.Value(cmds.LabelValues(label), 1)

	var connections []Connection
	for _, cmd := range cmds.LabelMacros(list) {
		if cmd.Name == connectionMacro {
			connections = append(connections, Connection{
				Direction: cmd.Param(0),
				Offset:    cmd.Param(1),
				Map:       cmd.Param(2),
			})
		}
	}
	return connections
}
