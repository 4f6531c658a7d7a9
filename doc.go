/*
Package iconset writes the browser extension icons (16x16, 32x32, 48x48 and 128x128 pixels)
into a directory. The PNG payloads are embedded in the package as base64 text, so the icons
can be regenerated without any image tooling.

The package ships with a command line tool which writes the icons into the current directory:

	$ iconset
	created icon16.png
	created icon32.png
	created icon48.png
	created icon128.png

The emitter can also be used directly:

	package main

	import (
		"fmt"
		"github.com/wayne214/iconset"
	)

	func main() {
		e := iconset.NewEmitter("assets")
		for _, res := range e.Emit() {
			if res.Err != nil {
				fmt.Printf("Error writing %s: %v", res.Name, res.Err)
			}
		}
	}
*/
package iconset
