package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/omeyang/xnetkit/pkg/util/xaddr"
)

// 输出格式。
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// record 是 parse/scan 的一条输出。
type record struct {
	Line  int             `json:"line,omitempty" yaml:"line,omitempty"`
	Input string          `json:"input" yaml:"input"`
	Spec  *xaddr.WireSpec `json:"spec,omitempty" yaml:"spec,omitempty"`
	Class string          `json:"class,omitempty" yaml:"class,omitempty"`
	Error string          `json:"error,omitempty" yaml:"error,omitempty"`
}

func newRecord(input string, spec xaddr.Spec, err error) record {
	r := record{Input: input}
	if err != nil {
		r.Error = err.Error()
		return r
	}
	w := xaddr.WireSpecFrom(spec)
	r.Spec = &w
	if hp, ok := spec.(xaddr.HostPort); ok {
		r.Class = hp.Classify().String()
	}
	return r
}

// checkResult 是 check 的输出。
type checkResult struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
	Valid bool   `json:"valid" yaml:"valid"`
}

// printer 按格式输出结果。json 每行一个对象，yaml 每个结果一个文档。
type printer struct {
	format string
	w      io.Writer
	json   *json.Encoder
	yaml   *yaml.Encoder
}

func newPrinter(format string, w io.Writer) (*printer, error) {
	p := &printer{format: strings.ToLower(strings.TrimSpace(format)), w: w}
	switch p.format {
	case formatText:
	case formatJSON:
		p.json = json.NewEncoder(w)
		p.json.SetEscapeHTML(false)
	case formatYAML:
		p.yaml = yaml.NewEncoder(w)
		p.yaml.SetIndent(2)
	default:
		return nil, usagef("未知输出格式 %q，可选 text|json|yaml", format)
	}
	return p, nil
}

func (p *printer) record(r record) error {
	switch p.format {
	case formatJSON:
		return p.json.Encode(r)
	case formatYAML:
		return p.yaml.Encode(r)
	}

	var b strings.Builder
	if r.Line > 0 {
		fmt.Fprintf(&b, "%d\t", r.Line)
	}
	b.WriteString(r.Input)
	b.WriteByte('\t')
	switch {
	case r.Error != "":
		b.WriteString("error: ")
		b.WriteString(r.Error)
	case r.Spec.Network == xaddr.NetworkUnix:
		fmt.Fprintf(&b, "unix %s", r.Spec.Path)
	default:
		hostport := net.JoinHostPort(r.Spec.Host, strconv.Itoa(int(r.Spec.Port)))
		fmt.Fprintf(&b, "tcp %s %s", hostport, r.Class)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *printer) check(c checkResult) error {
	switch p.format {
	case formatJSON:
		return p.json.Encode(c)
	case formatYAML:
		return p.yaml.Encode(c)
	}
	_, err := fmt.Fprintln(p.w, c.Valid)
	return err
}

func (p *printer) close() error {
	if p.yaml != nil {
		return p.yaml.Close()
	}
	return nil
}
