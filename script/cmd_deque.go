package script

import (
	"context"

	"github.com/samber/mo"
	"github.com/xuning888/godeque/datastruct/deque"
)

// CommandContext carries one line's arguments and the shared state a command
// works on.
type CommandContext struct {
	cmdName string
	arg     string
	lineNo  int
	deque   deque.Dequeue[mo.Option[string]]
	stats   *Stats
	reply   string
}

func (ctx *CommandContext) GetCmdName() string {
	return ctx.cmdName
}

func (ctx *CommandContext) GetArg() string {
	return ctx.arg
}

func (ctx *CommandContext) GetLineNo() int {
	return ctx.lineNo
}

func (ctx *CommandContext) GetDeque() deque.Dequeue[mo.Option[string]] {
	return ctx.deque
}

func (ctx *CommandContext) Reply(reply string) {
	ctx.reply = reply
}

// execAddBeg addbeg value
func execAddBeg(c context.Context, ctx *CommandContext) error {
	ctx.GetDeque().AddBeg(parseValue(ctx.GetArg()))
	ctx.stats.Adds++
	ctx.Reply(okReply)
	return nil
}

// execAddEnd addend value
func execAddEnd(c context.Context, ctx *CommandContext) error {
	ctx.GetDeque().AddEnd(parseValue(ctx.GetArg()))
	ctx.stats.Adds++
	ctx.Reply(okReply)
	return nil
}

func execRemBeg(c context.Context, ctx *CommandContext) error {
	value, err := ctx.GetDeque().RemBeg()
	if err != nil {
		return err
	}
	ctx.stats.Removes++
	ctx.Reply(valueReply(value))
	return nil
}

func execRemEnd(c context.Context, ctx *CommandContext) error {
	value, err := ctx.GetDeque().RemEnd()
	if err != nil {
		return err
	}
	ctx.stats.Removes++
	ctx.Reply(valueReply(value))
	return nil
}

func execPeekBeg(c context.Context, ctx *CommandContext) error {
	value, err := ctx.GetDeque().PeekBeg()
	if err != nil {
		return err
	}
	ctx.Reply(valueReply(value))
	return nil
}

func execPeekEnd(c context.Context, ctx *CommandContext) error {
	value, err := ctx.GetDeque().PeekEnd()
	if err != nil {
		return err
	}
	ctx.Reply(valueReply(value))
	return nil
}

func execCount(c context.Context, ctx *CommandContext) error {
	ctx.Reply(intReply(ctx.GetDeque().Count()))
	return nil
}

func execIsEmpty(c context.Context, ctx *CommandContext) error {
	ctx.Reply(boolReply(ctx.GetDeque().IsEmpty()))
	return nil
}

func execClear(c context.Context, ctx *CommandContext) error {
	ctx.GetDeque().Clear()
	ctx.Reply(okReply)
	return nil
}

func init() {
	registerCmd("addbeg", execAddBeg, 1)
	registerCmd("addend", execAddEnd, 1)
	registerCmd("rembeg", execRemBeg, 0)
	registerCmd("remend", execRemEnd, 0)
	registerCmd("peekbeg", execPeekBeg, 0)
	registerCmd("peekend", execPeekEnd, 0)
	registerCmd("count", execCount, 0)
	registerCmd("isempty", execIsEmpty, 0)
	registerCmd("clear", execClear, 0)
}
