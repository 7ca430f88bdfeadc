// Package script converts Chinese text between traditional and simplified
// character forms.
package script

import (
	"fmt"
	"strings"

	"github.com/longbridgeapp/opencc"
)

// Normalizer rewrites text into a canonical script form.
type Normalizer interface {
	Normalize(text string) (string, error)
}

// Chinese language codes as reported by the recognition engine.
var chineseCodes = map[string]bool{
	"zh":  true,
	"zho": true,
	"chi": true,
	"yue": true,
}

// IsChinese returns true if the language code represents a Chinese variant.
func IsChinese(langCode string) bool {
	code := strings.ToLower(langCode)
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	return chineseCodes[code]
}

// Simplifier converts traditional Chinese to simplified using OpenCC t2s
// tables. Safe for concurrent use.
type Simplifier struct {
	cc *opencc.OpenCC
}

// NewSimplifier loads the t2s conversion tables.
func NewSimplifier() (*Simplifier, error) {
	cc, err := opencc.New("t2s")
	if err != nil {
		return nil, fmt.Errorf("opencc init: %w", err)
	}
	return &Simplifier{cc: cc}, nil
}

// Normalize converts text to simplified Chinese. Blank text passes through.
func (s *Simplifier) Normalize(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	return s.cc.Convert(text)
}
