package protodecl

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"

	lru "github.com/hashicorp/golang-lru"
)

const defaultCacheSize = 64

// Config tunes an Engine.
type Config struct {
	// CacheSize bounds how many distinct sources keep their resolved
	// tokens. Zero selects the default; a negative value disables caching.
	CacheSize int
}

// Engine runs the scan and resolve stages and memoizes results per source
// text. It is safe for concurrent use.
type Engine struct {
	cache *lru.ARCCache
}

// NewEngine builds an engine from cfg.
func NewEngine(cfg Config) (*Engine, error) {
	size := cfg.CacheSize
	if size == 0 {
		size = defaultCacheSize
	}
	engine := &Engine{}
	if size > 0 {
		cache, err := lru.NewARC(size)
		if err != nil {
			return nil, fmt.Errorf("protodecl: token cache: %w", err)
		}
		engine.cache = cache
	}
	return engine, nil
}

// MustNewEngine is NewEngine for configurations known to be valid.
func MustNewEngine(cfg Config) *Engine {
	engine, err := NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	return engine
}

// Lex tokenizes src and resolves number literals. Any failure discards the
// whole token sequence.
func (e *Engine) Lex(src string) ([]Token, error) {
	if e.cache != nil {
		if cached, ok := e.cache.Get(src); ok {
			return slices.Clone(cached.([]Token)), nil
		}
	}

	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	tokens, err = Resolve(tokens)
	if err != nil {
		return nil, withSource(err, src)
	}

	if e.cache != nil {
		e.cache.Add(src, tokens)
	}
	return slices.Clone(tokens), nil
}

// LexFile reads path and lexes its contents. Errors carry the path.
func (e *Engine) LexFile(path string) ([]Token, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	tokens, err := e.Lex(src)
	if err != nil {
		return nil, withPath(err, path)
	}
	return tokens, nil
}

// Check scans all of src and resolves every literal it can. Characters that
// start no token and malformed number literals are both reported in diags,
// ordered by position; scanning continues past each of them.
func (e *Engine) Check(src string) (tokens []Token, diags []*Error) {
	l := NewLexer(src)
	var scanned []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *Error
			if !errors.As(err, &perr) {
				perr = &Error{Kind: ErrUnexpectedChar, Pos: tok.Pos, Err: err}
			}
			diags = append(diags, perr)
			continue
		}
		scanned = append(scanned, tok)
	}

	tokens, numberDiags := ResolveEach(scanned)
	diags = append(diags, numberDiags...)
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Pos.Offset < diags[j].Pos.Offset
	})
	for _, diag := range diags {
		diag.source = src
	}
	return tokens, diags
}

// CheckFile is Check for the file at path. Only an unreadable source is
// returned as err.
func (e *Engine) CheckFile(path string) ([]Token, []*Error, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, nil, err
	}
	tokens, diags := e.Check(src)
	for _, diag := range diags {
		diag.Path = path
	}
	return tokens, diags, nil
}

func withPath(err error, path string) error {
	if perr, ok := err.(*Error); ok {
		perr.Path = path
	}
	return err
}
