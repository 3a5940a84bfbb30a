package main

import (
	"sync"

	"github.com/spf13/cobra"
)

// commandExecutionContext records which command is running so fatal-path
// error reporting can match that command's output style.
type commandExecutionContext struct {
	CommandPath       string
	UsesStructuredLog bool
}

var (
	commandExecMu  sync.Mutex
	commandExecCtx commandExecutionContext
)

func currentCommandExecutionContext() commandExecutionContext {
	commandExecMu.Lock()
	defer commandExecMu.Unlock()
	return commandExecCtx
}

func setCommandExecutionContext(ctx commandExecutionContext) {
	commandExecMu.Lock()
	defer commandExecMu.Unlock()
	commandExecCtx = ctx
}

func resetCommandExecutionContext() {
	setCommandExecutionContext(commandExecutionContext{})
}

// commandUsesStructuredLogging: long-running and operational commands log
// structured; interactive user management prints plain text.
func commandUsesStructuredLogging(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "serve", "refresh", "migrate":
		return true
	default:
		return false
	}
}
