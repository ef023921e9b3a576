package lexr

// Version is the library version reported by the CLI.
const Version = "0.1.0"

// BuildDate can be stamped at link time with
// -ldflags "-X github.com/JENebel/lexr-parsr.BuildDate=...".
var BuildDate = "unknown"
