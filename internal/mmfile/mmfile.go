// SPDX-License-Identifier: EPL-2.0

// Package mmfile exposes a file's contents as a byte slice, memory-mapped
// where the platform allows it.
package mmfile

func noop() error { return nil }
