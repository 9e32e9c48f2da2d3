// Package vehicle merges a compiled microcontroller document into the
// microprocessor_definition blocks of a vehicle's XML save file: compiled
// property values replace the saved ones, except on properties the file
// itself flags force_property="true", which keep their saved value.
//
// This is the one place in the module that reaches for the standard
// library's encoding/xml instead of a third-party codec: the real parsing
// and pretty-printing of the host simulator's vehicle schema is explicitly
// out of scope as an external interface this module does not own, and no
// third-party XML library fits better — encoding/xml's generic any-element
// node is the standard idiom for round-tripping a schema this package does
// not otherwise need to understand.
package vehicle
