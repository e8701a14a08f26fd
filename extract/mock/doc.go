// Package mock provides test double implementations of the document
// decoder interfaces.
//
// The mocks let tests exercise the extraction router and the scan
// scheduler without real PDF or Word payloads. Behavior is injected via
// function fields; unset fields fall back to a simple default that echoes
// the input bytes as text.
package mock
