package lsp

// Due to unexported methods on the jsonrpc2.Request interface, the
// request handlers cannot be unit tested directly. The analysis they
// delegate to is covered by internal/tooling's tests; integration
// testing of the protocol itself needs a real LSP client.
