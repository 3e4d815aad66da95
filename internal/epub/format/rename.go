package format

import (
	"fmt"

	"github.com/ikota3/images-utility/internal/epub/models"
)

// BuildRenameCommand は書誌情報からWindowsのrenameコマンド文字列を組み立てます。
// リネーム先は `[整形済み著者名]整形済みタイトル.epub` の形式になります。
// showGenre が真の場合はジャンルのラベルを先頭に付けます。
func BuildRenameCommand(originalFilename string, info models.BookInfo, showGenre bool) string {
	prefix := ""
	if showGenre {
		prefix = "Genre: " + info.Genre + " "
	}

	return fmt.Sprintf(`%srename "%s" "[%s]%s"`,
		prefix,
		originalFilename,
		FormatBookAuthor(info.Author),
		FormatBookTitle(info.Title+Extension),
	)
}
