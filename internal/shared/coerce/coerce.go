// Package coerce は外部入力の数値セルを許容的にfloat64へ変換するヘルパーを提供します。
package coerce

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Float は上流APIやプッシュペイロードのセル値をfloat64に変換します。
// 数値そのもの、桁区切りカンマ・前後空白付きの数値文字列を受け付けます。
// 変換できない場合はエラーを返し、スキップするか失敗させるかは呼び出し側が決めます。
func Float(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case json.Number:
		return Float(string(x))
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(x, ",", ""))
		if s == "" {
			return 0, fmt.Errorf("coerce: empty numeric cell")
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("coerce: %q is not a number", x)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("coerce: nil cell")
	default:
		return 0, fmt.Errorf("coerce: unsupported cell type %T", v)
	}
}
