package iconset

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/exp/slices"
)

// Icon describes one icon file: the name it is written under, the declared
// edge length in pixels and the base64 encoded PNG payload.
type Icon struct {
	Name string
	Size int
	Data string
}

// Decode returns the raw PNG bytes of the icon.
func (ic Icon) Decode() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(ic.Data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ic.Name, err)
	}
	return b, nil
}

// The extension icons, smallest first.
var icons = []Icon{
	{
		Name: "icon16.png",
		Size: 16,
		Data: "iVBORw0KGgoAAAANSUhEUgAAABAAAAAQCAYAAAAf8/9hAAAABHNCSVQICAgIfAhkiAAAAAlwSFlzAAAAdgAAAHYBTnsmCAAAABdJREFUOI1jZGBg+M9AAWBhGDVg1ABSA1QAAIB2AAF7UNDwAAAAAElFTkSuQmCC",
	},
	{
		Name: "icon32.png",
		Size: 32,
		Data: "iVBORw0KGgoAAAANSUhEUgAAACAAAAAgCAYAAABzenr0AAAABHNCSVQICAgIfAhkiAAAAAlwSFlzAAAAdgAAAHYBTnsmCAAAABdJREFUWIXt1EERACAIQEG2/6VBwGQ8nM4DAAD8jwYOOOCAAw444IADDjjggAP+nwEAAAAAAAAAAAAAAAAAAHjRAKQTAAGE9+OyAAAAAElFTkSuQmCC",
	},
	{
		Name: "icon48.png",
		Size: 48,
		Data: "iVBORw0KGgoAAAANSUhEUgAAADAAAAAwCAYAAABXAvmHAAAABHNCSVQICAgIfAhkiAAAAAlwSFlzAAAAdgAAAHYBTnsmCAAAABdJREFUaIHt1kERAAAIA6H939pQwGQ8nPYAAAD8jwYOOOCAAw444IADDjjggAP+nwEAAAAAAAAAAAAAAAAAAHjRAKQTAAGE9+OyAAAAAElFTkSuQmCC",
	},
	{
		Name: "icon128.png",
		Size: 128,
		Data: "iVBORw0KGgoAAAANSUhEUgAAAIAAAACACAYAAADDPmHLAAAABHNCSVQICAgIfAhkiAAAAAlwSFlzAAAAdgAAAHYBTnsmCAAAABdJREFUeJztwQEBAAAAgiD/r25IQAEAAAAAAAAAAAAAAAAAAAAAAAAAwKsGJ8QAAQ4EhTQAAAAASUVORK5CYII=",
	},
}

// Icons returns a copy of the built-in icon table.
func Icons() []Icon {
	return slices.Clone(icons)
}

// Lookup returns the built-in icon declared with the given size.
func Lookup(size int) (Icon, bool) {
	i := slices.IndexFunc(icons, func(ic Icon) bool { return ic.Size == size })
	if i < 0 {
		return Icon{}, false
	}
	return icons[i], true
}
