package asm

// LabelMacros returns the run of commands following the definition of label,
// up to the next label definition. Several labels stacked directly on top of
// each other all resolve to the block that follows the last of them.
func (c Commands) LabelMacros(label string) Commands {
	if label == "" {
		return nil
	}

	var block Commands
	inLabel := false
	for _, cmd := range c {
		if cmd.IsLabel() {
			if cmd.Param(0) == label {
				inLabel = true
			} else if inLabel && len(block) > 0 {
				break
			}
			continue
		}
		if inLabel {
			block = append(block, cmd)
		}
	}
	return block
}

// LabelValues flattens every parameter of every command in the block for
// label into one list, ignoring any .align directives.
func (c Commands) LabelValues(label string) []string {
	var values []string
	for _, cmd := range c.LabelMacros(label) {
		if cmd.Name == Align {
			continue
		}
		values = append(values, cmd.Params...)
	}
	return values
}

// Value returns the i'th entry of values or an empty string.
func Value(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	return values[i]
}
