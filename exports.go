package govobj

import "github.com/govobj/govobj/vobj"

// Type aliases for the public API - all types come from the vobj subpackage.

// Document is the parse result: the ordered root components of one stream.
type Document = vobj.Document

// Component is a named BEGIN/END block of properties and sub-components.
type Component = vobj.Component

// Property is a single content line inside a component.
type Property = vobj.Property

// Param is a named, possibly multi-valued property parameter.
type Param = vobj.Param

// Profile is the per-format parse policy (root name, list properties).
type Profile = vobj.Profile

// ValueDecoder is the optional semantic value capability.
type ValueDecoder = vobj.ValueDecoder

// LineError carries the source line number of a parse failure.
type LineError = vobj.LineError
