// Package icondeck provides a local gallery for SVG icon sets hosted in
// remote repositories. It discovers icon files using a pipeline of ordered
// fallback strategies (index manifest, hosting API, directory listing),
// serves a searchable gallery web UI, and generates index manifests so
// later loads can skip live discovery.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, etree/).
package icondeck
