package compress

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Response はユーザーの確認入力の結果を表します
type Response int

const (
	// ResponseYes は実行を承諾した場合の応答
	ResponseYes Response = iota
	// ResponseNo は実行を拒否した場合の応答
	ResponseNo
)

// Ask は実行してよいかをユーザーに確認します。
// y/yes/空入力は承諾、n/noは拒否として扱い、それ以外は再入力を求めます。
// 入力が尽きた場合は拒否として扱います。
func Ask(r io.Reader, w io.Writer) Response {
	scanner := bufio.NewScanner(r)

	for {
		fmt.Fprint(w, "Continue? [Y/n]: ")
		if !scanner.Scan() {
			return ResponseNo
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "y", "yes":
			return ResponseYes
		case "n", "no":
			return ResponseNo
		}
	}
}
