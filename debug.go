package hamt

import (
	"log"
	"os"
)

// Logger is the package's diagnostic logger, off by default (nil): a
// single prefixed *log.Logger constructed with log.New, rather than
// pulling in a structured logging library the core map has no other use
// for. Set Logger to trace promotion (leaf/collision -> bitmapped) and
// contraction (bitmapped -> surviving child) events while developing
// against this package; leave it nil in production, where it costs
// nothing beyond the nil check.
var Logger *log.Logger

// EnableDebugLogging points Logger at os.Stderr with a prefixed,
// file-annotated format suitable for tracing trie restructuring during
// development.
func EnableDebugLogging() {
	Logger = log.New(os.Stderr, "[hamt] ", log.Lshortfile)
}

func debugf(format string, args ...any) {
	if Logger != nil {
		Logger.Printf(format, args...)
	}
}
