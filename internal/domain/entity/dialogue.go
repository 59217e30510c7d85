package entity

// Dialogue is the conversation an entity can hold.
// AltLines is used instead of Lines while the player is in the alternate form.
type Dialogue struct {
	Lines    []string
	AltLines []string
	Stage    int
	LastForm Form
}

// Clone returns a deep copy, nil for a nil dialogue
func (d *Dialogue) Clone() *Dialogue {
	if d == nil {
		return nil
	}
	c := &Dialogue{Stage: d.Stage, LastForm: d.LastForm}
	c.Lines = append([]string(nil), d.Lines...)
	c.AltLines = append([]string(nil), d.AltLines...)
	return c
}

func (d *Dialogue) lines(form Form) []string {
	if form == FormAlternate && len(d.AltLines) > 0 {
		return d.AltLines
	}
	return d.Lines
}

// Current returns the line for the current stage, "" if there is none
func (d *Dialogue) Current(form Form) string {
	lines := d.lines(form)
	if len(lines) == 0 {
		return ""
	}
	return lines[min(d.Stage, len(lines)-1)]
}

// Advance moves to the next line, staying on the last one
func (d *Dialogue) Advance(form Form) {
	if d.Stage < len(d.lines(form))-1 {
		d.Stage++
	}
	d.LastForm = form
}
