// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package emoji

// Variant identifies which contiguous run of Unicode code points glyphs
// are assigned from. Resource packs ship one texture set per variant, so
// the variant also carries the pack download metadata.
//
// The zero value is the unresolved variant; callers must check Resolved
// before using the start code point.
type Variant struct {
	ID       int
	Name     string
	PackURL  string
	PackSHA1 string

	start rune
}

// Built-in glyph pack variants.
var (
	// VariantKorean assigns glyphs from the Hangul syllable block,
	// starting at U+AC00. This is the original, default variant.
	VariantKorean = Variant{
		ID:       1,
		Name:     "korean",
		PackURL:  "https://github.com/DougDougDevDev/DougDougEmojiChat/releases/download/v1.0.0/emoji-pack-korean.zip",
		PackSHA1: "3c4f1a9be2d0c75a8e6f01b2a94d8c3e5f7a1b90",
		start:    '가', // U+AC00
	}

	// VariantChinese assigns glyphs from a CJK ideograph run starting
	// at U+5A00, for clients whose fonts shadow the Hangul block.
	VariantChinese = Variant{
		ID:       2,
		Name:     "chinese",
		PackURL:  "https://github.com/DougDougDevDev/DougDougEmojiChat/releases/download/v1.0.0/emoji-pack-chinese.zip",
		PackSHA1: "b81d2f70c3a64e95d1072c8ab45e6f90134da2c7",
		start:    '娀', // U+5A00
	}
)

// variants lists every built-in variant for id lookup.
var variants = []Variant{VariantKorean, VariantChinese}

// ResolveVariant returns the variant with the given id. The second
// return value is false when no variant has that id; the returned
// Variant is then the unresolved zero value.
func ResolveVariant(id int) (Variant, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Resolved reports whether v is one of the built-in variants.
func (v Variant) Resolved() bool {
	return v.start != 0
}

// glyphAt returns the code point assigned to the k-th non-comment token
// (0-indexed). No upper bound is enforced: a token list longer than the
// variant's safe range keeps incrementing past it.
func (v Variant) glyphAt(k int) rune {
	return v.start + rune(k)
}
