package format

import "regexp"

// Extension は整形対象とするEPubファイルの拡張子。
// 整形パターンはこの拡張子を前提に組み立てられています。
const Extension = ".epub"

var (
	// 隅付き括弧で囲まれた宣伝・特典表記（例: 【電子版限定特典付き】）
	reAnnotationBrackets = regexp.MustCompile(`【.+?(付き|増量版|無料版?|出版|誌版|特別版?|特典付き?|漫画付き?)】`)

	// 括弧・山括弧で囲まれたレーベル・出版表記（例: (角川スニーカー文庫)）
	reLabelBrackets = regexp.MustCompile(`[(＜〈].*?(BOOKS|Creative|DX版?|GAMES|JOKER|Network|NOVELS|NOVEL 0|Publishing|エイジ|エクストラ|コミック|シリーズ|ス|ノベルズ|ラノベ|限定版|小説|新装版|電子版|特典付き|特別版|文芸|文庫J?|編集部)[〉＞)]`)

	// コロン（全角・半角）
	reColon = regexp.MustCompile(`[：:]`)

	// 連続する空白
	reSpaces = regexp.MustCompile(`\s+`)

	// 拡張子直前の空白
	reSpacesBeforeExt = regexp.MustCompile(`\s+` + extPattern)
)

// FormatBookTitle は書籍のタイトルをファイル名として安全な文字列に整形します。
// タイトルは拡張子付きで渡します（例: "タイトル.epub"）。
//
// 整形は次の順で適用されます。
//  1. 全角英数字を半角に変換
//  2. ファイル名に使えない記号を全角に変換
//  3. 全角丸括弧を半角に変換
//  4. 宣伝・レーベル表記の除去
//  5. コロンを空白に変換し、連続する空白を1つにまとめる
//  6. 巻数表記のゼロ埋め正規化
//  7. 拡張子直前の空白を除去
//
// どの段階もパターンに一致しなければ何もしません。常に結果を返し、失敗しません。
func FormatBookTitle(title string) string {
	title = FullwidthToHalfwidth(title)
	title = UnsafeToFullwidth(title)
	title = FullwidthBracketsToHalfwidth(title)

	// 不要な表記の除去
	title = reAnnotationBrackets.ReplaceAllString(title, "")
	title = reLabelBrackets.ReplaceAllString(title, "")
	title = reColon.ReplaceAllString(title, " ")
	title = reSpaces.ReplaceAllString(title, " ")

	// 巻数表記の正規化。各ルールはこの固定順で評価し、パターンに一致した
	// ものだけが適用される。拡張子直前の裸の数字は、先行ルールがどれも
	// 巻数を処理していない場合にのみ対象とする。
	var numbered bool
	title, numbered = padRoundBracketNumber(title)

	if t, ok := padKanjiNumber(title); ok {
		title, numbered = t, true
	}

	if t, ok := padCircledNumber(title); ok {
		title, numbered = t, true
	}

	if !numbered {
		title = padTrailingNumber(title)
	}

	// 空白の後始末
	title = reSpaces.ReplaceAllString(title, " ")
	title = reSpacesBeforeExt.ReplaceAllString(title, Extension)

	return title
}
