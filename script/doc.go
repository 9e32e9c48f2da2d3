// Package script defines the external verification contract embedded Lua
// source must satisfy before builder.LuaScript will construct a
// component around it.
//
// Parsing and minifying Lua with a full dependency resolver is out of
// scope and treated purely as an external interface. PassthroughVerifier
// is a minimal stand-in a caller can replace with a real verifier without
// touching builder.
package script
