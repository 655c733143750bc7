package arpalette

import "github.com/yourusername/arpalette/core"

// Params is the live Parameter Set of the palette.
type Params struct {
	// Bass level above which the palette reacts.
	BassThreshold uint8

	// Red component ranges of the palette.
	RedMin uint8
	RedMid uint8
	RedMax uint8

	// Accent color and its intensity.
	AccentR      uint8
	AccentG      uint8
	AccentB      uint8
	AccentAmount uint8

	SmoothingFactor float64
	FractionControl float64
}

// DefaultParams returns the compiled defaults.
func DefaultParams() Params {
	return Params{
		BassThreshold:   128,
		RedMin:          0,
		RedMid:          127,
		RedMax:          255,
		AccentR:         0,
		AccentG:         0,
		AccentB:         255,
		AccentAmount:    128,
		SmoothingFactor: 0.5,
		FractionControl: 1.0,
	}
}

// Schema keys, in persistence order.
const (
	KeyBassThreshold   = "bass_threshold"
	KeyRedMin          = "red_min"
	KeyRedMid          = "red_mid"
	KeyRedMax          = "red_max"
	KeyAccentR         = "accent_r"
	KeyAccentG         = "accent_g"
	KeyAccentB         = "accent_b"
	KeyAccentAmount    = "accent_amount"
	KeySmoothingFactor = "smoothingFactor"
	KeyFractionControl = "fractionControl"
)

// bind builds the schema table over p. The table is the single source of
// truth for keys, order, defaults and help text.
func (p *Params) bind() *core.Schema {
	d := DefaultParams()
	return core.MustSchema(
		core.Bind(KeyBassThreshold, &p.BassThreshold, d.BassThreshold, "0-255", "Threshold for bass detection (0-255)"),
		core.Bind(KeyRedMin, &p.RedMin, d.RedMin, "0-255", "Minimum red value in palette (0-255)"),
		core.Bind(KeyRedMid, &p.RedMid, d.RedMid, "0-255", "Middle red value in palette (0-255)"),
		core.Bind(KeyRedMax, &p.RedMax, d.RedMax, "0-255", "Maximum red value in palette (0-255)"),
		core.Bind(KeyAccentR, &p.AccentR, d.AccentR, "0-255", "Red component of accent color (0-255)"),
		core.Bind(KeyAccentG, &p.AccentG, d.AccentG, "0-255", "Green component of accent color (0-255)"),
		core.Bind(KeyAccentB, &p.AccentB, d.AccentB, "0-255", "Blue component of accent color (0-255)"),
		core.Bind(KeyAccentAmount, &p.AccentAmount, d.AccentAmount, "0-255", "Intensity of accent color (0-255)"),
		core.Bind(KeySmoothingFactor, &p.SmoothingFactor, d.SmoothingFactor, ".2-.8", "Smoothing Factor .2-.8"),
		core.Bind(KeyFractionControl, &p.FractionControl, d.FractionControl, ".2-1.8", "Interpolation speed .2 - 1.8"),
	)
}
