// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package emoji

import (
	"bufio"
	"io"
	"slices"
	"strings"

	"github.com/samber/oops"
)

// Dictionary is the token → glyph mapping built once per load.
// Tokens iterate in ascending lexical order, which fixes substitution
// precedence when one token is a substring of another.
type Dictionary struct {
	glyphs map[string]rune
	tokens []string // sorted ascending
}

// BuildDictionary assigns each non-comment line from r the next code
// point in the variant's run: the k-th token line gets start + (k-1).
// Lines starting with '#' and blank lines are skipped and do not
// consume a code point. Building is deterministic for identical input.
func BuildDictionary(variant Variant, r io.Reader) (*Dictionary, error) {
	d := &Dictionary{glyphs: make(map[string]rune)}

	next := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, dup := d.glyphs[line]; !dup {
			d.tokens = append(d.tokens, line)
		}
		d.glyphs[line] = variant.glyphAt(next)
		next++
	}
	if err := scanner.Err(); err != nil {
		return d, oops.With("tokens_loaded", next).Wrap(err)
	}

	slices.Sort(d.tokens)
	return d, nil
}

// Glyph returns the code point assigned to token.
func (d *Dictionary) Glyph(token string) (rune, bool) {
	g, ok := d.glyphs[token]
	return g, ok
}

// Tokens returns the tokens in ascending lexical order.
// The returned slice is a copy and safe to modify.
func (d *Dictionary) Tokens() []string {
	return slices.Clone(d.tokens)
}

// Len returns the number of tokens in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.glyphs)
}

// remove deletes token from the dictionary and returns its glyph.
// Used while carving out the disabled set before the dictionary is
// published; never called on a published dictionary.
func (d *Dictionary) remove(token string) (rune, bool) {
	g, ok := d.glyphs[token]
	if !ok {
		return 0, false
	}
	delete(d.glyphs, token)
	if i, found := slices.BinarySearch(d.tokens, token); found {
		d.tokens = slices.Delete(d.tokens, i, i+1)
	}
	return g, true
}
