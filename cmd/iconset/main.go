// iconset writes the extension icons into the current directory.
// Usage: iconset
package main

import "github.com/wayne214/iconset"

func main() {
	// Failures are reported per icon; the run itself always completes.
	iconset.NewEmitter(".").Emit()
}
