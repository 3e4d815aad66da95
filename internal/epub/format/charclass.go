// Package format はEPubの書誌情報をファイル名として安全な文字列に整形します
package format

import "strings"

// widthOffset は半角文字と対応する全角文字のコードポイント差
const widthOffset = 0xFEE0

// unsafeSymbols はNTFSのファイル名で使用できない、または問題を起こす記号
var unsafeSymbols = map[rune]bool{
	'<':  true,
	'>':  true,
	':':  true,
	'"':  true,
	'/':  true,
	'\\': true,
	'|':  true,
	'!':  true,
	'?':  true,
	'*':  true,
}

// rewriteRunes は条件に一致したルーンだけを変換し、それ以外はそのまま返します
func rewriteRunes(text string, match func(rune) bool, conv func(rune) rune) string {
	return strings.Map(func(r rune) rune {
		if match(r) {
			return conv(r)
		}
		return r
	}, text)
}

// isFullwidthAlphaNumeral は全角英数字（Ａ-Ｚａ-ｚ０-９）かどうかを判定します
func isFullwidthAlphaNumeral(r rune) bool {
	return (r >= 'Ａ' && r <= 'Ｚ') || (r >= 'ａ' && r <= 'ｚ') || (r >= '０' && r <= '９')
}

// FullwidthToHalfwidth は全角英数字を半角英数字に変換します
func FullwidthToHalfwidth(text string) string {
	return rewriteRunes(text, isFullwidthAlphaNumeral, func(r rune) rune {
		return r - widthOffset
	})
}

// UnsafeToFullwidth はファイル名に使えない記号を対応する全角記号に変換します
//
// 例:
//
//	`<` -> `＜`
//	`:` -> `：`
//	`?` -> `？`
//
// `!` 自体は有効な文字だが、`?` と揃えて全角に寄せています。
func UnsafeToFullwidth(text string) string {
	return rewriteRunes(text, func(r rune) bool {
		return unsafeSymbols[r]
	}, func(r rune) rune {
		return r + widthOffset
	})
}

// FullwidthBracketsToHalfwidth は全角丸括弧（）を半角丸括弧()に変換します
func FullwidthBracketsToHalfwidth(text string) string {
	return rewriteRunes(text, func(r rune) bool {
		return r == '（' || r == '）'
	}, func(r rune) rune {
		return r - widthOffset
	})
}
