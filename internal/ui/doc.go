// Package ui provides the colour palette used by styled output.
// It honours the NO_COLOR convention and the -no-color flag so that styled
// reporters degrade to plain text.
package ui
