/*
Package commands is the command surface a front end talks to.

Front ends (a GUI shell, an IPC bridge or the interactive shell of this
module) call the methods of a Backend. Errors returned carry a
core.ErrorCode; Message renders them for transports which can only carry
strings.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package commands

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'rendertext.commands'
func tracer() tracing.Trace {
	return tracing.Select("rendertext.commands")
}
