package arpalette

import "github.com/yourusername/arpalette/core"

const infoKey = "u"

// AddToInfo adds human-readable entries to the "u" object of the info
// document. Each entry is an array of label/value items, the shape the
// info page renders as one row.
func (u *Usermod) AddToInfo(root core.Document) {
	if root == nil {
		return
	}
	user := root.CreateObject(infoKey)
	p := u.params

	user["Bass Threshold"] = []any{p.BassThreshold}
	user["Red Range"] = []any{
		"Min:", p.RedMin,
		"Mid:", p.RedMid,
		"Max:", p.RedMax,
	}
	user["Accent Color"] = []any{
		"R:", p.AccentR,
		"G:", p.AccentG,
		"B:", p.AccentB,
		"Intensity:", p.AccentAmount,
	}
	user["Smoothing Factor:"] = []any{p.SmoothingFactor}
	user["Interpolation Speed:"] = []any{p.FractionControl}
}

// ConfigInfo returns the settings-page help, one entry per field, keyed
// "<name>:<field>".
func (u *Usermod) ConfigInfo() []core.HelpEntry {
	return u.schema.Help(u.name)
}
