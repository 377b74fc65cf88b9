// Package xlog 基于 log/slog 的结构化日志。
//
// 通过 [New] 返回的 [Builder] 配置输出、级别、格式和文件轮转（lumberjack），
// [Builder.Build] 返回 Logger 与 cleanup：
//
//	logger, cleanup, err := xlog.New().
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    SetRotation("/var/log/xaddrctl.log", xlog.WithMaxSize(50)).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
// Builder 采用 first-error-wins：第一个配置错误之后的 Set 调用被忽略，
// 错误由 Build 返回。
//
// 所有日志方法都接收 context.Context，属性只接受 slog.Attr。
// 常用属性构造函数：[Err]、[Input]、[Network]、[Index]、[Count]、[Component]。
//
// [Default] 和包级 [Debug]/[Info]/[Warn]/[Error] 供命令行工具使用。
package xlog
