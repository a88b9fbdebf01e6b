package encio

import (
	"io"
	"os"
)

// Warnings is where warnings are sent to.
// Write will carry on with an io.Writer that writes short without an error,
// but it says so here.
var Warnings io.Writer = os.Stderr
