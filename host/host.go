// Package host drives registered modules through their lifecycle: boot-time
// configuration load, setup, periodic ticks, configuration saves and the live
// JSON state API.
//
// Modules do no locking of their own. Host funnels every call into a module
// through a single mutex, so handlers, the tick loop and in-process readers
// never run module code at the same time.
package host

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/arpalette/core"
	"github.com/yourusername/arpalette/registry"
	"github.com/yourusername/arpalette/store"
)

const (
	// ConfigKey is the storage key of the host-wide configuration document.
	ConfigKey = "cfg"

	// UsermodsKey is the object inside the configuration document that holds
	// one namespace per module.
	UsermodsKey = "um"

	// InfoKey is the object inside the info document that modules add to.
	InfoKey = "u"
)

// Recorder counts configuration traffic.
type Recorder interface {
	RecordConfigLoad(complete bool)
	RecordConfigSave()
}

// Host owns the registry of modules and the configuration storage.
type Host struct {
	mu       sync.Mutex
	registry *registry.Registry
	store    store.Store
	logger   *zap.Logger
	recorder Recorder
	debounce time.Duration

	busy    atomic.Bool
	booting atomic.Bool
	booted  atomic.Bool
}

// New creates a Host over the modules in reg, keeping configuration in st.
func New(reg *registry.Registry, st store.Store, opts ...Option) *Host {
	h := &Host{
		registry: reg,
		store:    st,
		logger:   zap.NewNop(),
		debounce: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Registry returns the module registry.
func (h *Host) Registry() *registry.Registry { return h.registry }

// Booted reports whether Boot has completed.
func (h *Host) Booted() bool { return h.booted.Load() }

// Boot loads the configuration document, hands each module its namespace and
// then runs every module's Setup. When any module reports an incomplete
// configuration the document is saved straight away so the defaults it fell
// back to are persisted. Boot runs once; later and concurrent calls do
// nothing. A Boot that fails to read the configuration may be retried.
func (h *Host) Boot(ctx context.Context) error {
	if !h.booting.CompareAndSwap(false, true) {
		return nil
	}

	doc, err := h.loadDocument(ctx)
	if err != nil {
		h.booting.Store(false)
		return err
	}

	h.mu.Lock()
	complete := h.loadModules(doc)
	for _, m := range h.registry.Modules() {
		m.Setup()
	}
	h.mu.Unlock()
	h.booted.Store(true)

	h.logger.Info("boot complete",
		zap.Int("modules", h.registry.Len()),
		zap.Bool("config_complete", complete))

	if !complete {
		if err := h.Save(ctx); err != nil {
			return fmt.Errorf("persist defaults: %w", err)
		}
	}
	return nil
}

// Reload reads the configuration document again and applies it to every
// module. Setup is not repeated.
func (h *Host) Reload(ctx context.Context) error {
	doc, err := h.loadDocument(ctx)
	if err != nil {
		return err
	}

	h.mu.Lock()
	complete := h.loadModules(doc)
	h.mu.Unlock()

	h.logger.Info("configuration reloaded", zap.Bool("config_complete", complete))
	return nil
}

func (h *Host) loadDocument(ctx context.Context) (core.Document, error) {
	doc, err := h.store.Get(ctx, ConfigKey)
	if errors.Is(err, store.ErrNotFound) {
		h.logger.Info("no saved configuration, using defaults")
		return core.Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if doc == nil {
		doc = core.Document{}
	}
	return doc, nil
}

// loadModules must be called with h.mu held.
func (h *Host) loadModules(doc core.Document) bool {
	um := doc.Object(UsermodsKey)
	complete := true
	for _, m := range h.registry.Modules() {
		ok := m.LoadWithDefaults(um)
		if !ok {
			h.logger.Warn("configuration incomplete, defaults kept for missing fields",
				zap.String("usermod", m.Name()))
		}
		if h.recorder != nil {
			h.recorder.RecordConfigLoad(ok)
		}
		complete = complete && ok
	}
	return complete
}

// Save writes every module's namespace into the stored configuration
// document. Keys the modules do not own are preserved.
func (h *Host) Save(ctx context.Context) error {
	doc, err := h.loadDocument(ctx)
	if err != nil {
		return err
	}

	h.mu.Lock()
	um := doc.CreateObject(UsermodsKey)
	for _, m := range h.registry.Modules() {
		m.Persist(um)
	}
	h.mu.Unlock()

	if err := h.store.Set(ctx, ConfigKey, doc); err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}
	if h.recorder != nil {
		h.recorder.RecordConfigSave()
	}
	h.logger.Debug("configuration saved")
	return nil
}

// Config returns the document Save would write, without touching storage.
func (h *Host) Config() core.Document {
	h.mu.Lock()
	defer h.mu.Unlock()

	doc := core.Document{}
	um := doc.CreateObject(UsermodsKey)
	for _, m := range h.registry.Modules() {
		m.Persist(um)
	}
	return doc
}

// State builds a fresh live-state document from every module.
func (h *Host) State() core.Document {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stateLocked()
}

func (h *Host) stateLocked() core.Document {
	doc := core.Document{}
	for _, m := range h.registry.Modules() {
		m.ExportSnapshot(doc)
	}
	return doc
}

// ApplyState hands a client-submitted live-state document to every module
// and returns the state that results, along with the fields the modules
// accepted as "<name>:<key>".
func (h *Host) ApplyState(doc core.Document) (core.Document, []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var applied []string
	for _, m := range h.registry.Modules() {
		for _, key := range m.ApplyPatch(doc) {
			applied = append(applied, m.Name()+":"+key)
		}
	}
	return h.stateLocked(), applied
}

// Info builds the informational document.
func (h *Host) Info() core.Document {
	h.mu.Lock()
	defer h.mu.Unlock()

	doc := core.Document{InfoKey: core.Document{}}
	for _, m := range h.registry.Modules() {
		m.AddToInfo(doc)
	}
	return doc
}

// ConfigInfo collects the settings-page help of every module.
func (h *Host) ConfigInfo() []core.HelpEntry {
	var out []core.HelpEntry
	for _, m := range h.registry.Modules() {
		out = append(out, m.ConfigInfo()...)
	}
	return out
}

// SetEnabled flips the capability gate of the module with the given name.
func (h *Host) SetEnabled(name string, enabled bool) error {
	m, ok := h.registry.LookupName(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownModule, name)
	}

	h.mu.Lock()
	m.SetEnabled(enabled)
	h.mu.Unlock()

	h.logger.Info("usermod gate changed", zap.String("usermod", name), zap.Bool("enabled", enabled))
	return nil
}

// SetBusy marks the host busy. Ticks are skipped while busy.
func (h *Host) SetBusy(busy bool) { h.busy.Store(busy) }

// Busy reports the busy flag.
func (h *Host) Busy() bool { return h.busy.Load() }

// Do runs fn while holding the host lock. In-process readers use it to call
// module getters without racing the API or the tick loop.
func (h *Host) Do(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn()
}

// Tick runs the periodic hook of every enabled module, unless the host is
// busy or has not booted.
func (h *Host) Tick() {
	if h.busy.Load() || !h.booted.Load() {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, m := range h.registry.Modules() {
		if m.Enabled() {
			m.Loop()
		}
	}
}

// Run calls Tick every interval until ctx is done. An interval of zero
// disables ticking; Run then just waits for ctx.
func (h *Host) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.Tick()
		case <-ctx.Done():
			return
		}
	}
}
