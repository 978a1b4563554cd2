// Package marsnap collects a snapshot of Mars news, imagery and facts from a
// fixed set of web pages rendered in a headless browser.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package marsnap
