// Package arpalette provides the parameter store behind an audio-reactive
// color palette.
//
// The store holds ten tunable values (a bass threshold, a red range, an accent
// color with its intensity, a smoothing factor and an interpolation speed) and
// keeps them consistent across three surfaces:
//
//   - the persisted configuration document (LoadWithDefaults / Persist)
//   - the live JSON state API (ExportSnapshot / ApplyPatch)
//   - in-process readers (BassThreshold, RedMin, ... and Params)
//
// # Quick Start
//
//	mod, err := arpalette.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reg := registry.New()
//	_ = reg.Register(mod)
//
//	mod.LoadWithDefaults(cfg) // at boot, before Setup
//	mod.Setup()
//
//	// anywhere else in the process
//	if p, ok := arpalette.Instance(reg); ok {
//	    threshold := p.BassThreshold()
//	}
//
// # Documents
//
// Every operation takes the host-wide root document and works on the object
// stored under the module name ("AR Palette" by default):
//
//	{
//	  "AR Palette": {
//	    "bass_threshold": 128,
//	    "red_min": 0,
//	    "red_mid": 127,
//	    "red_max": 255,
//	    "accent_r": 0,
//	    "accent_g": 0,
//	    "accent_b": 255,
//	    "accent_amount": 128,
//	    "smoothingFactor": 0.5,
//	    "fractionControl": 1.0
//	  }
//	}
//
// LoadWithDefaults reports false when any key is missing or mistyped; the
// affected fields keep their current value. ApplyPatch only touches the keys a
// client sent.
//
// # Ranges
//
// The ranges in the help text ("0-255", ".2-.8", ".2-1.8") are descriptive.
// Out-of-range floats are stored as given. Integer fields reject values that
// do not fit in a byte, since those cannot be represented at all.
//
// # Lifecycle
//
// A Usermod starts uninitialized. Setup moves it to initialized, once.
// ApplyPatch and ExportSnapshot do nothing before that; ExportSnapshot also
// does nothing while the module is disabled.
//
// # Concurrency
//
// A Usermod does no locking. The host serializes all calls (see package host).
package arpalette
