package arpalette

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yourusername/arpalette/core"
	"github.com/yourusername/arpalette/registry"
)

const (
	// ID is the stable identifier of the palette module in a registry.
	ID uint16 = 90

	// DefaultName is the namespace used in the configuration and state
	// documents.
	DefaultName = "AR Palette"
)

// Usermod is the palette Parameter Store. It owns one Params value and keeps
// it in sync with the configuration document, the live-state document and
// in-process readers.
//
// A Usermod is not safe for concurrent use. The host is expected to serialize
// every call.
type Usermod struct {
	name     string
	enabled  bool
	initDone bool

	params Params
	schema *core.Schema
	logger *zap.Logger
}

// Ensure Usermod implements registry.Module
var _ registry.Module = (*Usermod)(nil)

// New creates a Usermod seeded with the compiled defaults.
//
// Example:
//
//	mod, err := arpalette.New(
//	    arpalette.WithEnabled(true),
//	    arpalette.WithLogger(logger),
//	)
func New(opts ...Option) (*Usermod, error) {
	u := &Usermod{
		name:    DefaultName,
		enabled: true,
		params:  DefaultParams(),
		logger:  zap.NewNop(),
	}
	u.schema = u.params.bind()

	for _, opt := range opts {
		if err := opt(u); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	u.logger = u.logger.With(zap.String("usermod", u.name))
	return u, nil
}

// ID returns the registry identifier.
func (u *Usermod) ID() uint16 { return ID }

// Name returns the document namespace.
func (u *Usermod) Name() string { return u.name }

// Setup marks the store initialized. It is the host's boot hook and is
// one-way: there is no transition back.
func (u *Usermod) Setup() {
	u.initDone = true
}

// Initialized reports whether Setup has run.
func (u *Usermod) Initialized() bool { return u.initDone }

// Loop is the periodic hook. The palette keeps no running state.
func (u *Usermod) Loop() {}

// Enabled reports the capability gate.
func (u *Usermod) Enabled() bool { return u.enabled }

// SetEnabled sets the capability gate. Only ExportSnapshot and Loop honor it.
func (u *Usermod) SetEnabled(enabled bool) { u.enabled = enabled }

// LoadWithDefaults reads root[Name()] into the Parameter Set. Values are
// adopted as-is without range checks. A missing namespace, missing key or
// mistyped value keeps the field's current value and makes the result false.
func (u *Usermod) LoadWithDefaults(root core.Document) bool {
	complete := u.schema.Load(root.Object(u.name))
	u.logger.Debug("configuration loaded", zap.Bool("complete", complete))
	return complete
}

// Persist writes every field into root[Name()], creating the namespace when
// needed. A nil root is ignored.
func (u *Usermod) Persist(root core.Document) {
	if root == nil {
		return
	}
	u.schema.Save(root.CreateObject(u.name))
}

// ExportSnapshot writes every field into the live-state root. It leaves root
// untouched before Setup or while disabled.
func (u *Usermod) ExportSnapshot(root core.Document) {
	if !u.initDone || !u.enabled || root == nil {
		return
	}
	u.schema.Save(root.CreateObject(u.name))
}

// ApplyPatch merges root[Name()] into the Parameter Set and returns the keys
// it adopted, in schema order. Keys that are absent or mistyped leave their
// field unchanged. Patches before Setup are dropped.
func (u *Usermod) ApplyPatch(root core.Document) []string {
	if !u.initDone {
		return nil
	}
	patch := root.Object(u.name)
	if patch == nil {
		return nil
	}
	applied := u.schema.Patch(patch)
	if len(applied) > 0 {
		u.logger.Debug("state patched", zap.Strings("fields", applied))
	}
	return applied
}

// DescribeField returns the static help text for key.
func (u *Usermod) DescribeField(key string) (string, bool) {
	return u.schema.Describe(key)
}

// Fields returns the schema in persistence order.
func (u *Usermod) Fields() []core.Field { return u.schema.Fields() }

// Params returns a copy of the current Parameter Set.
func (u *Usermod) Params() Params { return u.params }

func (u *Usermod) BassThreshold() uint8 { return u.params.BassThreshold }
func (u *Usermod) RedMin() uint8 { return u.params.RedMin }
func (u *Usermod) RedMid() uint8 { return u.params.RedMid }
func (u *Usermod) RedMax() uint8 { return u.params.RedMax }
func (u *Usermod) AccentR() uint8 { return u.params.AccentR }
func (u *Usermod) AccentG() uint8 { return u.params.AccentG }
func (u *Usermod) AccentB() uint8 { return u.params.AccentB }
func (u *Usermod) AccentAmount() uint8 { return u.params.AccentAmount }
func (u *Usermod) SmoothingFactor() float64 { return u.params.SmoothingFactor }
func (u *Usermod) FractionControl() float64 { return u.params.FractionControl }
