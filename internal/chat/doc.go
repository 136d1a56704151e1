// Package chat implements the room and session engine behind the Talkeu
// relay: the session registry with its room membership index, the typing
// debounce coordinator, the broadcast router, and the lifecycle coordinator
// that ties them together.
//
// The package is transport-agnostic. Connections appear only as opaque IDs
// paired with a Sink for delivery, so the engine can be exercised directly in
// tests without a network.
package chat
