package script

import (
	"context"
	"strings"
)

// ExeFunc executes one parsed line against the deque held by ctx.
type ExeFunc func(c context.Context, ctx *CommandContext) error

var cmdTable = make(map[string]*command)

type command struct {
	cmdName string
	exeFunc ExeFunc
	// arity 0 不带参数, 1 表示该行剩余部分就是参数
	arity int
}

func registerCmd(cmdName string, exeFunc ExeFunc, arity int) {
	lower := strings.ToLower(cmdName)
	cmdTable[lower] = &command{
		cmdName: lower,
		exeFunc: exeFunc,
		arity:   arity,
	}
}

func getCommand(cmdName string) *command {
	cmd, ok := cmdTable[strings.ToLower(cmdName)]
	if ok {
		return cmd
	}
	return nil
}

// Commands lists the registered verbs.
func Commands() []string {
	names := make([]string, 0, len(cmdTable))
	for name := range cmdTable {
		names = append(names, name)
	}
	return names
}
