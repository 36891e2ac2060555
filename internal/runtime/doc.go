// Package runtime provides the execution context for treekit commands.
//
// It encapsulates shared dependencies needed by commands, such as the
// logger, command runner, and repository root path.
package runtime
