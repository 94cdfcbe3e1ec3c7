// Package ui provides the interactive fuzzy picker used by rerun -i.
package ui
