package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"lox/internal/diag"
	"lox/internal/source"
	"lox/internal/token"
)

// Current schema version - increment when tokenPayload format changes.
const tokenCacheSchemaVersion uint16 = 2

// TokenCache stores scan results on disk keyed by source content hash, so
// repeated runs over unchanged files skip the scan entirely.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// tokenPayload is the serialized form of one scan. Tokens carry their
// leading trivia so a hit reproduces every rendering, pretty included.
type tokenPayload struct {
	Schema      uint16
	Path        string
	ContentHash []byte

	Tokens []cachedToken
	Diags  []cachedDiag
}

type cachedToken struct {
	Kind    uint8
	Start   uint32
	End     uint32
	Text    string
	Literal string
	Line    uint32
	Leading []cachedTrivia
}

type cachedTrivia struct {
	Kind  uint8
	Start uint32
	End   uint32
	Text  string
}

type cachedDiag struct {
	Code     uint16
	Severity uint8
	Start    uint32
	End      uint32
	Message  string
}

// OpenTokenCache initializes and returns a token cache at the standard
// location ($XDG_CACHE_HOME/<app>/tokens, falling back to ~/.cache).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "tokens")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// OpenTokenCacheAt initializes a token cache rooted at an explicit directory.
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// Dir returns the cache root directory.
func (c *TokenCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *TokenCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// put serializes and atomically writes one scan result.
func (c *TokenCache) put(key [32]byte, payload *tokenPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := msgpack.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode token cache payload: %w", err)
	}

	p := c.pathFor(key)
	tmp, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}

// get loads a payload for key; ok is false on miss or schema mismatch.
func (c *TokenCache) get(key [32]byte) (*tokenPayload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var payload tokenPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		// Corrupt entries behave like misses; the scan rewrites them.
		return nil, false, nil
	}
	if payload.Schema != tokenCacheSchemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// Clear removes every cached entry.
func (c *TokenCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.RemoveAll(c.dir); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// TokenizeCached scans path, consulting the cache first. The bool result
// reports whether the scan was served from the cache. A nil cache degrades
// to a plain Tokenize.
func TokenizeCached(path string, maxDiagnostics int, cache *TokenCache) (*TokenizeResult, bool, error) {
	if cache == nil {
		res, err := Tokenize(path, maxDiagnostics)
		return res, false, err
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, false, err
	}
	file := fileSet.Get(fileID)

	if payload, ok, err := cache.get(file.Hash); err != nil {
		return nil, false, err
	} else if ok {
		return rebuild(fileSet, file, payload, maxDiagnostics), true, nil
	}

	res := scan(fileSet, fileID, maxDiagnostics)
	if err := cache.put(file.Hash, snapshot(res)); err != nil {
		return nil, false, err
	}
	return res, false, nil
}

func snapshot(res *TokenizeResult) *tokenPayload {
	payload := &tokenPayload{
		Schema:      tokenCacheSchemaVersion,
		Path:        res.File.Path,
		ContentHash: res.File.Hash[:],
		Tokens:      make([]cachedToken, 0, len(res.Tokens)),
		Diags:       make([]cachedDiag, 0, res.Bag.Len()),
	}
	for _, tok := range res.Tokens {
		ct := cachedToken{
			Kind:    uint8(tok.Kind),
			Start:   tok.Span.Start,
			End:     tok.Span.End,
			Text:    tok.Text,
			Literal: tok.Literal,
			Line:    tok.Line,
		}
		for _, tr := range tok.Leading {
			ct.Leading = append(ct.Leading, cachedTrivia{
				Kind:  uint8(tr.Kind),
				Start: tr.Span.Start,
				End:   tr.Span.End,
				Text:  tr.Text,
			})
		}
		payload.Tokens = append(payload.Tokens, ct)
	}
	for _, d := range res.Bag.Items() {
		payload.Diags = append(payload.Diags, cachedDiag{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		})
	}
	return payload
}

func rebuild(fileSet *source.FileSet, file *source.File, payload *tokenPayload, maxDiagnostics int) *TokenizeResult {
	tokens := make([]token.Token, 0, len(payload.Tokens))
	for _, ct := range payload.Tokens {
		tok := token.Token{
			Kind:    token.Kind(ct.Kind),
			Span:    source.Span{File: file.ID, Start: ct.Start, End: ct.End},
			Text:    ct.Text,
			Literal: ct.Literal,
			Line:    ct.Line,
		}
		for _, tr := range ct.Leading {
			tok.Leading = append(tok.Leading, token.Trivia{
				Kind: token.TriviaKind(tr.Kind),
				Span: source.Span{File: file.ID, Start: tr.Start, End: tr.End},
				Text: tr.Text,
			})
		}
		tokens = append(tokens, tok)
	}

	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range payload.Diags {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: file.ID, Start: cd.Start, End: cd.End},
		})
	}

	return &TokenizeResult{
		FileSet: fileSet,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
