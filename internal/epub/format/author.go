package format

// FormatBookAuthor は著者名をファイル名として安全な文字列に整形します。
// 全角英数字の半角化と記号の全角化のみを行います。常に結果を返し、失敗しません。
func FormatBookAuthor(author string) string {
	author = FullwidthToHalfwidth(author)
	author = UnsafeToFullwidth(author)

	return author
}
