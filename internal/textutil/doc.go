// Package textutil provides small text helpers for filenames and display.
package textutil
