package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
	"github.com/xuning888/godeque/datastruct/deque"
	"github.com/xuning888/godeque/logger"
)

var ErrorSyntax = errors.New("syntax error")

// Stats summarises one Run.
type Stats struct {
	Lines   int
	Adds    int
	Removes int
	Failed  int
}

func (s Stats) String() string {
	return fmt.Sprintf("lines=%d adds=%d removes=%d failed=%d", s.Lines, s.Adds, s.Removes, s.Failed)
}

// Runner replays operation scripts against a single deque. A Runner is not
// safe for concurrent use.
type Runner struct {
	deque deque.Dequeue[mo.Option[string]]
	// strict 为 true 时, 空队列错误会终止执行
	strict bool
}

func NewRunner(d deque.Dequeue[mo.Option[string]], strict bool) *Runner {
	return &Runner{
		deque:  d,
		strict: strict,
	}
}

func (r *Runner) Deque() deque.Dequeue[mo.Option[string]] {
	return r.deque
}

// Run executes src line by line and writes one reply line per operation to
// w. Syntax errors always stop the run; empty-deque errors stop it only in
// strict mode. The returned Stats are valid even when err is non-nil.
func (r *Runner) Run(c context.Context, src io.Reader, w io.Writer) (stats Stats, err error) {
	out := bufio.NewWriter(w)
	defer func() {
		if flushErr := out.Flush(); flushErr != nil && err == nil {
			err = errors.Wrap(flushErr, "flush replies")
		}
	}()

	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err = c.Err(); err != nil {
			return stats, errors.Wrapf(err, "line %d", lineNo)
		}
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		reply, execErr := r.exec(c, line, lineNo, &stats)
		stats.Lines++
		if execErr != nil {
			if !errors.Is(execErr, deque.ErrorEmpty) {
				return stats, execErr
			}
			stats.Failed++
			logger.WithFields(logrus.Fields{"line": lineNo, "cmd": line}).Warn(execErr.Error())
			if r.strict {
				return stats, errors.Wrapf(execErr, "line %d", lineNo)
			}
			reply = errReply(execErr)
		}
		if _, err = fmt.Fprintln(out, reply); err != nil {
			return stats, errors.Wrap(err, "write reply")
		}
	}
	if err = scanner.Err(); err != nil {
		return stats, errors.Wrap(err, "read script")
	}
	logger.DebugF("script finished: %s", stats)
	return stats, nil
}

func (r *Runner) exec(c context.Context, line string, lineNo int, stats *Stats) (string, error) {
	name, arg := line, ""
	if pivot := strings.IndexAny(line, " \t"); pivot > 0 {
		name, arg = line[:pivot], strings.TrimSpace(line[pivot+1:])
	}
	cmd := getCommand(name)
	if cmd == nil {
		return "", errors.Wrapf(ErrorSyntax, "line %d: unknown command %q", lineNo, name)
	}
	if cmd.arity == 1 && arg == "" {
		return "", errors.Wrapf(ErrorSyntax, "line %d: %s needs a value", lineNo, cmd.cmdName)
	}
	if cmd.arity == 0 && arg != "" {
		return "", errors.Wrapf(ErrorSyntax, "line %d: %s takes no value", lineNo, cmd.cmdName)
	}
	if logger.IsEnabledDebug() {
		logger.DebugF("line %d: %s %s", lineNo, cmd.cmdName, arg)
	}
	ctx := &CommandContext{
		cmdName: cmd.cmdName,
		arg:     arg,
		lineNo:  lineNo,
		deque:   r.deque,
		stats:   stats,
	}
	if err := cmd.exeFunc(c, ctx); err != nil {
		return "", err
	}
	return ctx.reply, nil
}
