package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/xuning888/godeque/config"
	"github.com/xuning888/godeque/datastruct/deque"
	"github.com/xuning888/godeque/logger"
	"github.com/xuning888/godeque/pkg/util"
	"github.com/xuning888/godeque/script"
)

type runOptions struct {
	cfgPath  string
	impl     string
	capacity int
	strict   bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Replay an operation script, reading stdin when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.cfgPath, "config", "c", "", "properties file")
	cmd.Flags().StringVar(&opts.impl, "impl", "ring", "storage strategy: ring or block")
	cmd.Flags().IntVar(&opts.capacity, "cap", 16, "initial capacity of the ring deque")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "stop at the first empty-deque error")
	return cmd
}

// loadProperties reads the config file and lets explicitly set flags win.
func loadProperties(cmd *cobra.Command, opts *runOptions) (*config.Properties, error) {
	props, err := config.Load(opts.cfgPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("impl") {
		props.Impl = opts.impl
	}
	if flags.Changed("cap") {
		props.Capacity = opts.capacity
	}
	if flags.Changed("strict") {
		props.Strict = opts.strict
	}
	return props, nil
}

func runScript(cmd *cobra.Command, opts *runOptions, args []string) error {
	props, err := loadProperties(cmd, opts)
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(props.LogLevel)
	if err != nil {
		return err
	}
	err = logger.Configure(&logger.Configuration{
		Level:         level,
		LogPath:       props.LogPath,
		EnableFileLog: props.EnableFileLog,
		Output:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	impl, err := deque.ParseImpl(props.Impl)
	if err != nil {
		return err
	}
	d, err := deque.NewDequeue[mo.Option[string]](impl, props.Capacity)
	if err != nil {
		return err
	}

	var src io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "open script %s", args[0])
		}
		defer util.Close(file)
		src, name = file, args[0]
	}

	logger.DebugF("running %s with impl=%s capacity=%d strict=%v", name, impl, props.Capacity, props.Strict)
	stats, err := script.NewRunner(d, props.Strict).Run(cmd.Context(), src, cmd.OutOrStdout())
	if err != nil {
		return errors.Wrapf(err, "run %s", name)
	}
	logger.InfoF("%s: %s", name, stats)
	return nil
}
