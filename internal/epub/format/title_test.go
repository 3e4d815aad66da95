package format

import "testing"

func TestFormatBookTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "全角英数字の半角化",
			input: "Ｔｉｔｌｅ２.epub",
			want:  "Title 02.epub",
		},
		{
			name:  "使用できない記号の全角化",
			input: "Title Sub*.epub",
			want:  "Title Sub＊.epub",
		},
		{
			name:  "半角コロンは記号の全角化後に空白になる",
			input: "Title: Sub.epub",
			want:  "Title Sub.epub",
		},
		{
			name:  "全角コロンも空白になる",
			input: "Title：Sub.epub",
			want:  "Title Sub.epub",
		},
		{
			name:  "丸括弧の数字（後ろに空白）",
			input: "Title (1) Sub.epub",
			want:  "Title 01 Sub.epub",
		},
		{
			name:  "丸括弧の数字（括弧の前に空白なし）",
			input: "Title(1) Sub.epub",
			want:  "Title 01 Sub.epub",
		},
		{
			name:  "丸括弧の数字（直後に拡張子）",
			input: "Title(12).epub",
			want:  "Title 12.epub",
		},
		{
			name:  "丸括弧の数字は3桁のまま",
			input: "Title (123) Sub.epub",
			want:  "Title 123 Sub.epub",
		},
		{
			name:  "丸括弧の数字の先頭ゼロは詰める",
			input: "Title (007).epub",
			want:  "Title 07.epub",
		},
		{
			name:  "全角丸括弧も半角化してから処理する",
			input: "Title（3） Sub.epub",
			want:  "Title 03 Sub.epub",
		},
		{
			name:  "漢数字はゼロ埋めしない",
			input: "Title 参 巻.epub",
			want:  "Title 3.epub",
		},
		{
			name:  "漢数字の拾は10になる",
			input: "Title 拾巻 Sub.epub",
			want:  "Title 10 Sub.epub",
		},
		{
			name:  "丸数字",
			input: "Title①.epub",
			want:  "Title 01.epub",
		},
		{
			name:  "括弧付き数字",
			input: "Title⑵.epub",
			want:  "Title 02.epub",
		},
		{
			name:  "ピリオド付き数字と巻表記",
			input: "Title⒊巻.epub",
			want:  "Title 03.epub",
		},
		{
			name:  "二重丸数字",
			input: "Title⓷.epub",
			want:  "Title 03.epub",
		},
		{
			name:  "拡張子直前の数字と巻表記",
			input: "Title 5巻.epub",
			want:  "Title 05.epub",
		},
		{
			name:  "拡張子直前の数字のみ",
			input: "Title1.epub",
			want:  "Title 01.epub",
		},
		{
			name:  "隅付き括弧の特典表記の除去",
			input: "【電子版限定特典付き】Title.epub",
			want:  "Title.epub",
		},
		{
			name:  "隅付き括弧の増量表記の除去",
			input: "【期間限定 試し読み増量版】Title.epub",
			want:  "Title.epub",
		},
		{
			name:  "丸括弧のレーベル表記の除去",
			input: "Title(角川コミックス・エース).epub",
			want:  "Title.epub",
		},
		{
			name:  "山括弧のレーベル表記の除去",
			input: "Title＜電撃文庫＞ Sub.epub",
			want:  "Title Sub.epub",
		},
		{
			name:  "連続する空白は1つにまとめる",
			input: "Title   Sub .epub",
			want:  "Title Sub.epub",
		},
		{
			name:  "拡張子なしでも文字変換は行われる",
			input: "Ｔｉｔｌｅ (1) Sub",
			want:  "Title 01 Sub",
		},
		{
			name:  "空文字列",
			input: "",
			want:  "",
		},
		{
			name:  "パターンに一致しなければそのまま",
			input: "Title Sub.epub",
			want:  "Title Sub.epub",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBookTitle(tt.input)
			if got != tt.want {
				t.Errorf("FormatBookTitle(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestFormatBookTitle_MixedNumbering は複数の巻数表記が混在する場合の
// 振る舞いを固定するための回帰テストです。ルールの評価順がそのまま結果になります。
func TestFormatBookTitle_MixedNumbering(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// 丸括弧の数字と漢数字: 両方のルールが順に適用される
		{"Title (2) 参.epub", "Title 02 3.epub"},
		// 漢数字と丸数字: 両方のルールが順に適用される
		{"Title 弐 ①.epub", "Title 2 01.epub"},
		// 先行ルールが巻数を処理した場合、拡張子直前の数字ルールは適用されない
		{"Title① 2.epub", "Title 01 2.epub"},
	}

	for _, tt := range tests {
		got := FormatBookTitle(tt.input)
		if got != tt.want {
			t.Errorf("FormatBookTitle(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

// TestFormatBookTitle_Idempotent は正規化済みのタイトルに対して
// 再度適用しても結果が変わらないことを確認します。
func TestFormatBookTitle_Idempotent(t *testing.T) {
	inputs := []string{
		"Title.epub",
		"Title 01.epub",
		"Title 01 Sub.epub",
		"Title 12.epub",
	}

	for _, input := range inputs {
		once := FormatBookTitle(input)
		twice := FormatBookTitle(once)
		if once != twice {
			t.Errorf("FormatBookTitle is not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}
