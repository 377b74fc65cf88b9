package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xnetkit/pkg/observability/xlog"
	"github.com/omeyang/xnetkit/pkg/util/xaddr"
	"github.com/omeyang/xnetkit/pkg/util/xiter"
)

// withEnv 为 action 加载运行环境，并在结束时释放。
func withEnv(fn func(ctx context.Context, cmd *cli.Command, e *env) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) (err error) {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := e.close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		return fn(ctx, cmd, e)
	}
}

func createParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "解析地址",
		ArgsUsage: "<addr>...",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "allow",
				Usage: "允许的主机范围（单 IP、CIDR 或 start-end），可重复，覆盖 policy.allow",
			},
		},
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *env) error {
			if !cmd.Args().Present() {
				return usagef("parse 需要至少一个地址")
			}
			cfg := e.settings.PolicyConfig()
			if cmd.IsSet("allow") {
				cfg.Allow = cmd.StringSlice("allow")
			}
			policy, err := xaddr.NewPolicy(cfg)
			if err != nil {
				return &usageError{msg: err.Error()}
			}
			return cmdParse(ctx, e, policy, cmd.Args().Slice())
		}),
	}
}

// cmdParse 解析每个参数，任一无效或不被允许时退出码为 1。
func cmdParse(ctx context.Context, e *env, policy *xaddr.Policy, inputs []string) error {
	bad := 0
	for _, in := range inputs {
		spec, err := resolve(e.parser.ParseAddress, policy, in)
		if err != nil {
			bad++
			e.logger.Debug(ctx, "rejected", xlog.Input(in), xlog.Err(err))
		} else {
			e.logger.Debug(ctx, "parsed", xlog.Input(in), xlog.Network(spec.Network()))
		}
		if err := e.out.record(newRecord(in, spec, err)); err != nil {
			return err
		}
	}
	if bad > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// resolve 解析 in 并检查允许列表。
func resolve(parse func(string) (xaddr.Spec, error), policy *xaddr.Policy, in string) (xaddr.Spec, error) {
	spec, err := parse(in)
	if err != nil {
		return nil, err
	}
	if err := policy.Check(spec); err != nil {
		return nil, err
	}
	return spec, nil
}

// validators 是 check 支持的校验项。
var validators = []struct {
	name  string
	usage string
	fn    func(string) bool
}{
	{"ipv4", "校验点分十进制 IPv4 地址", xaddr.IsValidIPv4},
	{"ipv6", "校验 IPv6 地址（不带 zone）", xaddr.IsValidIPv6},
	{"port", "校验端口号（0-65535）", xaddr.IsValidPort},
}

func createCheckCommand() *cli.Command {
	cmds := make([]*cli.Command, 0, len(validators))
	for _, v := range validators {
		cmds = append(cmds, &cli.Command{
			Name:      v.name,
			Usage:     v.usage,
			ArgsUsage: "<value>",
			Action: withEnv(func(_ context.Context, cmd *cli.Command, e *env) error {
				if cmd.Args().Len() != 1 {
					return usagef("check %s 需要且只需要一个参数", v.name)
				}
				return cmdCheck(e, v.name, cmd.Args().First(), v.fn)
			}),
		})
	}
	return &cli.Command{
		Name:     "check",
		Aliases:  []string{"c"},
		Usage:    "校验 IPv4/IPv6/端口",
		Commands: cmds,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return usagef("未知校验项 %q，可选 ipv4|ipv6|port", cmd.Args().First())
			}
			return usagef("check 需要指定校验项 ipv4|ipv6|port")
		},
	}
}

// cmdCheck 输出校验结果，无效时退出码为 1。
func cmdCheck(e *env, kind, value string, valid func(string) bool) error {
	ok := valid(value)
	if err := e.out.check(checkResult{Kind: kind, Value: value, Valid: ok}); err != nil {
		return err
	}
	if !ok {
		return &exitError{code: 1}
	}
	return nil
}

func createScanCommand() *cli.Command {
	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"s"},
		Usage:   "逐行解析地址（空行和 # 开头的行被忽略）",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "输入文件，默认读标准输入",
			},
			&cli.IntFlag{
				Name:  "skip",
				Usage: "跳过前 N 个地址",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "最多输出 N 个结果，0 表示不限",
			},
		},
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *env) error {
			skip, limit := cmd.Int("skip"), cmd.Int("limit")
			if skip < 0 || limit < 0 {
				return usagef("--skip 和 --limit 不能为负数")
			}
			var src io.Reader = stdin(cmd.Root())
			var closer io.Closer
			if path := cmd.String("file"); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				src, closer = f, f
			}
			return cmdScan(ctx, e, newLineProducer(src, closer), stderr(cmd.Root()), skip, limit)
		}),
	}
}

// line 是输入中的一个地址及其行号（从 1 开始）。
type line struct {
	no   int
	text string
}

// lineProducer 逐行产出非空、非注释行。
type lineProducer struct {
	sc     *bufio.Scanner
	closer io.Closer
	no     int
	err    error
}

func newLineProducer(r io.Reader, closer io.Closer) *lineProducer {
	return &lineProducer{sc: bufio.NewScanner(r), closer: closer}
}

func (p *lineProducer) Next() (line, bool) {
	for p.sc.Scan() {
		p.no++
		text := strings.TrimSpace(p.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return line{no: p.no, text: text}, true
	}
	p.err = p.sc.Err()
	return line{}, false
}

// Stop 关闭输入文件。
func (p *lineProducer) Stop() {
	if p.closer != nil {
		_ = p.closer.Close()
		p.closer = nil
	}
}

// cmdScan 跳过前 skip 个地址后逐个解析，最多 limit 个（0 不限）。
// 没有可解析的输入时向 errw 输出 "no input"，退出码为 1。
func cmdScan(ctx context.Context, e *env, p *lineProducer, errw io.Writer, skip, limit int) error {
	lines := xiter.New[line](p)
	defer lines.Close()

	if !lines.NonEmpty() {
		if p.err != nil {
			return fmt.Errorf("read input: %w", p.err)
		}
		fmt.Fprintln(errw, "no input")
		return &exitError{code: 1}
	}

	first, err := lines.At(skip)
	if err != nil {
		if p.err != nil {
			return fmt.Errorf("read input: %w", p.err)
		}
		if errors.Is(err, xiter.ErrIndexExhausted) {
			fmt.Fprintf(errw, "no input after skipping %d addresses\n", skip)
			return &exitError{code: 1}
		}
		return err
	}

	cache, err := xaddr.NewCache(e.parser, e.settings.Cache.Size)
	if err != nil {
		return err
	}
	policy, err := xaddr.NewPolicy(e.settings.PolicyConfig())
	if err != nil {
		return err
	}

	total, bad := 0, 0
	handle := func(i int, l line) error {
		total++
		spec, err := resolve(cache.Parse, policy, l.text)
		if err != nil {
			bad++
			e.logger.Debug(ctx, "rejected", xlog.Index(i), xlog.Input(l.text), xlog.Err(err))
		}
		r := newRecord(l.text, spec, err)
		r.Line = l.no
		return e.out.record(r)
	}

	if err := handle(skip, first); err != nil {
		return err
	}
	// 先判断 limit 再取下一行，达到上限后不再读取输入。
	for limit == 0 || total < limit {
		if err := ctx.Err(); err != nil {
			return err
		}
		i := lines.Consumed()
		l, ok := lines.Next()
		if !ok {
			break
		}
		if err := handle(i, l); err != nil {
			return err
		}
	}
	if p.err != nil {
		return fmt.Errorf("read input: %w", p.err)
	}

	e.logger.Info(ctx, "scan finished",
		xlog.Count(total), slog.Int("invalid", bad), slog.Int("cached", cache.Len()))
	if bad > 0 {
		return &exitError{code: 1}
	}
	return nil
}
