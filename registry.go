package winui

import (
	"fmt"
	"sync"
)

// binding is one registered callback under an event key. Bindings are
// kept in registration order and addressed by name for removal.
type binding struct {
	name string
	cb   Callback
}

// controlData is the per-control record: identity, control type and
// the callback table. It is owned by the Registry; dispatch only
// borrows it for the duration of one message.
type controlData struct {
	id        Id
	typ       ControlType
	handle    Handle
	callbacks map[Event][]binding
}

// Registry owns the control records of every managed control, looked
// up by native handle. The dispatch core receives it by reference and
// never retains anything out of it past a single dispatch.
type Registry struct {
	mu      sync.RWMutex
	sys     System
	handles map[Handle]*controlData
	ids     map[Id]Handle
}

func NewRegistry(sys System) *Registry {
	return &Registry{
		sys:     sys,
		handles: make(map[Handle]*controlData),
		ids:     make(map[Id]Handle),
	}
}

// System returns the host system surface the registry was built over.
func (r *Registry) System() System { return r.sys }

// Register adds a control record for handle. The id and the handle
// must both be unused.
func (r *Registry) Register(id Id, typ ControlType, handle Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ids[id]; ok {
		return fmt.Errorf("winui: control id %q already registered", id)
	}
	if _, ok := r.handles[handle]; ok {
		return fmt.Errorf("winui: handle %#x already registered", uintptr(handle))
	}
	r.handles[handle] = &controlData{
		id:        id,
		typ:       typ,
		handle:    handle,
		callbacks: make(map[Event][]binding),
	}
	r.ids[id] = handle
	return nil
}

// Unregister drops the control record for handle. Unknown handles are
// ignored; teardown races a control may lose are not errors.
func (r *Registry) Unregister(handle Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.handles[handle]
	if !ok {
		return
	}
	delete(r.ids, data.id)
	delete(r.handles, handle)
}

func (r *Registry) lookup(handle Handle) *controlData {
	r.mu.RLock()
	data := r.handles[handle]
	r.mu.RUnlock()
	return data
}

func (r *Registry) lookupId(id Id) *controlData {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.ids[id]
	if !ok {
		return nil
	}
	return r.handles[h]
}

// Bind registers cb under its event for the control id. name
// identifies the binding for Unbind. Callbacks fire in the order they
// were bound.
func (r *Registry) Bind(id Id, name string, cb Callback) error {
	if err := cb.valid(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.ids[id]
	if !ok {
		return fmt.Errorf("winui: bind %s: no control %q", cb.Event(), id)
	}
	data := r.handles[h]
	if !supportsEvent(data.typ, cb.Event()) {
		return fmt.Errorf("winui: %s control %q does not raise %s", data.typ, id, cb.Event())
	}
	data.callbacks[cb.Event()] = append(data.callbacks[cb.Event()], binding{name: name, cb: cb})
	return nil
}

// Unbind removes the named binding registered under event for the
// control id.
func (r *Registry) Unbind(id Id, event Event, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.ids[id]
	if !ok {
		return fmt.Errorf("winui: unbind %s: no control %q", event, id)
	}
	data := r.handles[h]
	list := data.callbacks[event]
	for i, b := range list {
		if b.name == name {
			data.callbacks[event] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("winui: unbind %s: no binding %q on %q", event, name, id)
}

// supportsEvent reports whether a control family ever raises event.
// Binding outside this set would register a callback that can never
// fire.
func supportsEvent(typ ControlType, event Event) bool {
	switch event {
	case MouseUp, MouseDown, Focus, Removed, Resize:
		return typ != ControlUnknown
	case Click:
		return typ == ControlButton || typ == ControlCheckBox ||
			typ == ControlGroupBox || typ == ControlRadioButton || typ == ControlLabel
	case ValueChanged:
		return typ == ControlTextInput || typ == ControlComboBox
	case MaxValue:
		return typ == ControlTextInput
	case MenuOpen, MenuClose, SelectionChanged:
		return typ == ControlComboBox
	}
	return false
}
