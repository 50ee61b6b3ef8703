package script

import (
	"strconv"

	"github.com/samber/mo"
)

const (
	okReply    = "ok"
	nilReply   = "(nil)"
	nilLiteral = "nil"
)

func errReply(err error) string {
	return "(error) " + err.Error()
}

func valueReply(value mo.Option[string]) string {
	return value.OrElse(nilReply)
}

func intReply(n int) string {
	return strconv.Itoa(n)
}

func boolReply(b bool) string {
	return strconv.FormatBool(b)
}

// parseValue 字面量 nil 表示空值, 其余原样保存
func parseValue(arg string) mo.Option[string] {
	if arg == nilLiteral {
		return mo.None[string]()
	}
	return mo.Some(arg)
}
