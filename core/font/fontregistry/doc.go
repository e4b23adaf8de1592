/*
Package fontregistry manages a registry for loaded fonts.

A Registry maps font names to parsed fonts. It is created once at
application startup and handed to everyone who needs to load or look up
fonts; there is no package level singleton. Lookups take a read lock
only, loads take the write lock for the insert itself.

Storing a font under a name already present replaces the previous font.
Clients which have looked up the previous font keep using it until they
are done.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'rendertext.font'
func tracer() tracing.Trace {
	return tracing.Select("rendertext.font")
}
