// xaddrctl 解析和校验服务监听地址。
//
// 用法:
//
//	xaddrctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config       配置文件（.yaml/.yml/.json）
//	-o, --format       输出格式 text|json|yaml (默认: text)
//	    --log-level    日志级别 debug|info|warn|error
//	    --log-format   日志格式 text|json
//	    --log-file     日志文件，按大小轮转（默认输出到 stderr）
//
// 命令:
//
//	parse <addr>...           解析地址，输出 tcp host:port 或 unix 路径
//	check ipv4|ipv6|port <v>  校验单个值
//	scan                      逐行解析标准输入或 --file 指定的文件
//
// 退出码:
//
//	0: 全部有效
//	1: 存在无效或不允许的地址、check 校验失败、没有输入
//	2: 参数错误（未知命令、缺少参数、无效选项值）
//
// 示例:
//
//	xaddrctl parse 127.0.0.1:9000 80 '[::1]' /tmp/app.sock
//	xaddrctl -o json parse --allow 10.0.0.0/8 10.1.2.3:80
//	xaddrctl check port 65535
//	xaddrctl scan --file addrs.txt --skip 10 --limit 100
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// 版本信息，通过 -ldflags "-X main.Version=..." 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// usageError 表示参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// exitError 表示命令已完成输出，只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func createApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xaddrctl",
		Usage:     "解析和校验 host:port / unix socket 地址",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "输出格式 text|json|yaml",
				Value:   formatText,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别，覆盖配置文件中的 log.level",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 text|json，覆盖配置文件中的 log.format",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件，覆盖配置文件中的 log.file",
			},
		},
		Commands: []*cli.Command{
			createParseCommand(),
			createCheckCommand(),
			createScanCommand(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return usagef("未知命令 %q", cmd.Args().First())
			}
			return cli.ShowAppHelp(cmd)
		},
		// 由 run 统一映射退出码，禁止 urfave/cli 直接 os.Exit。
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := createApp(stdin, stdout, stderr)
	err := app.Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	if isCLIUsageError(err) {
		fmt.Fprintf(stderr, "参数错误: %v\n", err)
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}

// isCLIUsageError 识别 urfave/cli 和 flag 包产生的参数错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
		"No help topic for",
	} {
		if strings.Contains(msg, prefix) {
			return true
		}
	}
	return false
}
