package vobj

import "strings"

// Component is a named BEGIN/END block: an ordered list of properties
// and an ordered list of nested components. A component exclusively
// owns its children; there are no parent back-references, so a finished
// tree is acyclic and can be shared read-only across goroutines.
type Component struct {
	Name       string
	Properties []*Property
	Components []*Component
}

// Prop returns the first property with the given name, or nil.
// The lookup is case-insensitive.
func (c *Component) Prop(name string) *Property {
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// Props returns all properties with the given name, in input order.
func (c *Component) Props(name string) []*Property {
	var out []*Property
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, name) {
			out = append(out, p)
		}
	}
	return out
}

// Child returns the first nested component with the given name, or nil.
func (c *Component) Child(name string) *Component {
	for _, sub := range c.Components {
		if strings.EqualFold(sub.Name, name) {
			return sub
		}
	}
	return nil
}

// Children returns all nested components with the given name, in input order.
func (c *Component) Children(name string) []*Component {
	var out []*Component
	for _, sub := range c.Components {
		if strings.EqualFold(sub.Name, name) {
			out = append(out, sub)
		}
	}
	return out
}

// Document is a complete parse result: the root components of one
// input stream. iCalendar streams normally hold a single VCALENDAR,
// vCard streams one VCARD per contact; the model tolerates zero or
// more roots either way.
type Document struct {
	Components []*Component
}

// Root returns the first root component with the given name, or nil.
func (d *Document) Root(name string) *Component {
	for _, c := range d.Components {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}
