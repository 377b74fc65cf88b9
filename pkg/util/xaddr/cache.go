package xaddr

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// cached 保存一次解析的完整结果，失败结果也会被缓存。
type cached struct {
	spec Spec
	err  error
}

// Cache 对 [Parser.ParseAddress] 结果做 LRU 缓存。
// 解析是确定性的，条目不需要过期。所有方法都是并发安全的，
// 同一输入的并发未命中只解析一次。
type Cache struct {
	parser *Parser
	lru    *lru.Cache[string, cached]
	group  singleflight.Group
}

// NewCache 创建最多保存 size 个条目的缓存。
// parser 为 nil 时使用默认值（"0.0.0.0", 8080）。
// size <= 0 时返回 [ErrInvalidCacheSize]。
func NewCache(parser *Parser, size int) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidCacheSize
	}
	if parser == nil {
		parser = defaultParser
	}
	l, err := lru.New[string, cached](size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCacheSize, err)
	}
	return &Cache{parser: parser, lru: l}, nil
}

// Parse 返回 s 的解析结果，命中缓存时不重复解析。
func (c *Cache) Parse(s string) (Spec, error) {
	if r, ok := c.lru.Get(s); ok {
		return r.spec, r.err
	}
	v, _, _ := c.group.Do(s, func() (any, error) {
		spec, err := c.parser.ParseAddress(s)
		r := cached{spec: spec, err: err}
		c.lru.Add(s, r)
		return r, nil
	})
	r := v.(cached)
	return r.spec, r.err
}

// Len 返回当前缓存条目数。
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge 清空缓存。
func (c *Cache) Purge() {
	c.lru.Purge()
}
