// Package invoicekit implements the core of an invoice document-layout
// editor: the document/element data model, the field-binding template
// resolver, the derived-totals calculator, the copy-on-write mutation
// protocol, and the direct-manipulation geometry engine.
//
// A Document is never mutated in place. Every edit produces a new Document
// value, and the editing Session replaces its current document wholesale on
// each mutation. Rendering, persistence, and the visual chrome are
// collaborators layered on top (see the render, store, and httpapi
// packages).
package invoicekit
