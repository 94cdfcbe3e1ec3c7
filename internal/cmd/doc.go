// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// It wraps [os/exec.Cmd] to capture stderr and include it in error messages,
// making failures of the wrapped tools more informative for users.
//
// # Design Notes
//
// clx shells out to the cl and q CLIs rather than talking to a server
// directly. This keeps the tool transparent: authentication, server
// selection and output formatting stay exactly what the user's cl
// installation does.
package cmd
