package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xnetkit/pkg/config/xconf"
	"github.com/omeyang/xnetkit/pkg/observability/xlog"
	"github.com/omeyang/xnetkit/pkg/util/xaddr"
)

// env 是一次命令执行的运行环境：配置、解析器、日志和输出。
type env struct {
	settings xconf.Settings
	parser   *xaddr.Parser
	logger   xlog.Logger
	out      *printer
	cleanup  func() error
}

// loadEnv 依次加载配置文件、应用命令行覆盖、构建 Logger 和输出器。
// 返回的 env 使用完后必须调用 close。
func loadEnv(cmd *cli.Command) (*env, error) {
	root := cmd.Root()

	out, err := newPrinter(root.String("format"), stdout(root))
	if err != nil {
		return nil, err
	}

	var cfg xconf.Config
	if path := root.String("config"); path != "" {
		cfg, err = xconf.New(path)
		if err != nil {
			return nil, err
		}
	}
	s, err := xconf.LoadSettings(cfg)
	if err != nil {
		return nil, err
	}
	if root.IsSet("log-level") {
		v := root.String("log-level")
		if _, err := xlog.ParseLevel(v); err != nil {
			return nil, &usageError{msg: err.Error()}
		}
		s.Log.Level = v
	}
	if root.IsSet("log-format") {
		v := strings.ToLower(root.String("log-format"))
		if v != "text" && v != "json" {
			return nil, usagef("未知日志格式 %q", v)
		}
		s.Log.Format = v
	}
	if root.IsSet("log-file") {
		s.Log.File = root.String("log-file")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	parser, err := xaddr.NewParser(s.ParserOptions()...)
	if err != nil {
		return nil, err
	}

	b := xlog.New().
		SetOutput(stderr(root)).
		SetLevelString(s.Log.Level).
		SetFormat(s.Log.Format)
	if s.Log.File != "" {
		b = b.SetRotation(s.Log.File)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return nil, err
	}

	return &env{
		settings: s,
		parser:   parser,
		logger:   logger.With(xlog.Component(cmd.Name)),
		out:      out,
		cleanup:  cleanup,
	}, nil
}

func (e *env) close() error {
	return errors.Join(e.out.close(), e.cleanup())
}

func stdout(root *cli.Command) io.Writer {
	if root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

func stderr(root *cli.Command) io.Writer {
	if root.ErrWriter != nil {
		return root.ErrWriter
	}
	return os.Stderr
}

func stdin(root *cli.Command) io.Reader {
	if root.Reader != nil {
		return root.Reader
	}
	return os.Stdin
}

// setupSignalHandler 第一次信号取消 ctx，第二次信号以 130 强制退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
