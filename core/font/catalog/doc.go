/*
Package catalog manages a directory of font files imported by the user.

A catalog is a flat folder, by default located in the user's configuration
directory. Fonts are imported by copying them into the folder, either from
an arbitrary path or by the file name of a font installed on the system.
Catalog entries are named the same way the font registry names loaded
fonts, i.e. by their file name without extension, which makes it easy to
load the whole catalog into a registry at startup.

Only files with extensions ".ttf" and ".otf" are catalog members.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package catalog

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'rendertext.catalog'
func tracer() tracing.Trace {
	return tracing.Select("rendertext.catalog")
}
