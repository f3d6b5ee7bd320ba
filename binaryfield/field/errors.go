package gf127

// ErrorPrefix is the prefix used by the (few) panic messages this package
// produces. The kernel has no recoverable error conditions: malformed
// operands (degree > 126) are caller bugs the library does not check, per
// spec.md §7. The zero-input panics of InvEuclid and InvBinary exist only
// because they're essentially free to check relative to the loop they
// protect against spinning forever; MulLRCombWindow also panics on an
// unsupported window width.
const ErrorPrefix = "gf127: "
