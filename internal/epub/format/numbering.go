package format

import (
	"fmt"
	"regexp"
	"strings"
)

// extPattern は拡張子を正規表現に埋め込むためのエスケープ済みパターン
var extPattern = regexp.QuoteMeta(Extension)

var (
	// 丸括弧で囲まれた数字（後ろに空白が続く場合）
	reBracketNumberMid = regexp.MustCompile(`\s*\(\s*(\d+)\s*\)\s+`)
	reBracketNumberAll = regexp.MustCompile(`\s*\(\s*\d+\s*\)\s*`)

	// 丸括弧で囲まれた数字（直後に拡張子が続く場合）
	reBracketNumberExt = regexp.MustCompile(`\s*\(\s*(\d+)\s*\)\s*` + extPattern)

	// 大字の漢数字（任意で巻表記が続く）
	reKanjiNumber = regexp.MustCompile(`\s*([壱弐参肆伍陸漆捌玖拾什])\s*巻?\s*`)

	// 拡張子直前の数字列（任意で巻表記が続く）
	reTrailingNumber = regexp.MustCompile(`(\d+)巻?\s*` + extPattern)
	reTrailingAll    = regexp.MustCompile(`\s*\d+巻?\s*` + extPattern)
)

// kanjiNumbers は大字の漢数字から十進表記への対応表。拾と什はどちらも10。
var kanjiNumbers = map[string]string{
	"壱": "1",
	"弐": "2",
	"参": "3",
	"肆": "4",
	"伍": "5",
	"陸": "6",
	"漆": "7",
	"捌": "8",
	"玖": "9",
	"拾": "10",
	"什": "10",
}

// circledNumberRange は丸数字のUnicode部分範囲と数値へ戻すためのオフセット
type circledNumberRange struct {
	re     *regexp.Regexp
	offset rune
}

// circledNumberRanges は対応する丸数字の部分範囲。いずれも1〜9を表します。
var circledNumberRanges = []circledNumberRange{
	{regexp.MustCompile(`\s*([①-⑨])\s*巻?\s*`), 0x242F},
	{regexp.MustCompile(`\s*([⑴-⑼])\s*巻?\s*`), 0x2443},
	{regexp.MustCompile(`\s*([⒈-⒐])\s*巻?\s*`), 0x2457},
	{regexp.MustCompile(`\s*([⓵-⓽])\s*巻?\s*`), 0x24C4},
}

// zeroPad は数字列を最小2桁になるようゼロ埋めします。
// 先頭のゼロは取り除くため "007" は "07" に、"123" はそのまま "123" になります。
func zeroPad(digits string) string {
	n := strings.TrimLeft(digits, "0")
	if n == "" {
		n = "0"
	}
	if len(n) < 2 {
		n = "0" + n
	}
	return n
}

// padRoundBracketNumber は丸括弧で囲まれた数字をゼロ埋めした数字に置き換えます
//
// 例:
//
//	xxx (1) yyy.epub -> xxx 01 yyy.epub
//	xxx(1) yyy.epub  -> xxx 01 yyy.epub
//	xxx (1).epub     -> xxx 01.epub
func padRoundBracketNumber(text string) (string, bool) {
	fired := false

	if m := reBracketNumberMid.FindStringSubmatch(text); m != nil {
		text = reBracketNumberAll.ReplaceAllString(text, " "+zeroPad(m[1])+" ")
		fired = true
	}

	if m := reBracketNumberExt.FindStringSubmatch(text); m != nil {
		text = reBracketNumberExt.ReplaceAllString(text, " "+zeroPad(m[1])+Extension)
		fired = true
	}

	return text, fired
}

// padKanjiNumber は大字の漢数字を十進表記に置き換えます。巻表記は取り除きます。
func padKanjiNumber(text string) (string, bool) {
	m := reKanjiNumber.FindStringSubmatch(text)
	if m == nil {
		return text, false
	}
	return reKanjiNumber.ReplaceAllString(text, " "+kanjiNumbers[m[1]]+" "), true
}

// padCircledNumber は丸数字をゼロ埋めした数字に置き換えます。巻表記は取り除きます。
// 部分範囲ごとに独立して置換します。
func padCircledNumber(text string) (string, bool) {
	fired := false
	for _, cr := range circledNumberRanges {
		m := cr.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		digit := []rune(m[1])[0] - cr.offset
		text = cr.re.ReplaceAllString(text, fmt.Sprintf(" 0%c ", digit))
		fired = true
	}
	return text, fired
}

// padTrailingNumber は拡張子直前の数字列をゼロ埋めした数字に置き換えます
//
// 例:
//
//	xxx1巻.epub -> xxx 01.epub
//	xxx1.epub   -> xxx 01.epub
func padTrailingNumber(text string) string {
	m := reTrailingNumber.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	return reTrailingAll.ReplaceAllString(text, " "+zeroPad(m[1])+Extension)
}
