// Provide handler types for control characters and sequences.
//
// Since a stream consumer might not implement every handler, callers to
// stream.Stream only need to implement the interfaces they want. The stream
// detects them with type assertions and logs anything left unhandled.
package handler
