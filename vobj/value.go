package vobj

// ValueDecoder turns a property's textual value into a typed one,
// typically guided by the VALUE and TZID parameters. The core parser
// has no date or timezone dependency of its own; implementations are
// injected with govobj.WithValueDecoder. The vtype package provides
// the standard implementation.
//
// DecodeValue returns (nil, nil) for properties it does not interpret.
// A non-nil error never aborts the surrounding parse: the property
// keeps its raw textual value and the caller may retry interpretation
// later with different context (for example another default timezone).
type ValueDecoder interface {
	DecodeValue(p *Property) (any, error)
}
