package view

import "sync"

// Modal tracks the open state of named dialogs. Closing drops the "active"
// class from the rendered element, which is all the dashboard ever did.
type Modal struct {
	mu     sync.Mutex
	active map[string]bool
}

func NewModal() *Modal {
	return &Modal{active: make(map[string]bool)}
}

func (m *Modal) Open(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active[name] = true
}

func (m *Modal) Close(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.active, name)
}

func (m *Modal) IsOpen(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active[name]
}

// Node renders the modal shell for oob swapping after a state change.
func (m *Modal) Node(name string) *Node {
	n := Elem("div").
		AddClass("modal").
		SetAttr("id", name+"Modal").
		SetAttr("hx-swap-oob", "true")
	if m.IsOpen(name) {
		n.AddClass("active")
	}
	return n
}
