// FILE: lixenwraith/dailylog/format.go
package dailylog

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// spewConfig renders composite arguments inline, without addresses or capacities
var spewConfig = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// composeMessage joins log call arguments into the message text.
// A lone string is used verbatim.
func composeMessage(args []any) string {
	if len(args) == 1 {
		if s, ok := args[0].(string); ok {
			return s
		}
	}

	buf := make([]byte, 0, 64)
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendValue(buf, arg)
	}
	return string(buf)
}

// appendValue converts any value to its text representation
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case int32:
		return strconv.AppendInt(buf, int64(val), 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, time.RFC3339)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	case []byte:
		return hex.AppendEncode(buf, val)
	default:
		// Structs, maps, slices and pointers go through spew for stable, sorted output
		return append(buf, spewConfig.Sprintf("%v", val)...)
	}
}

// formatLine builds "- HH:MM:SS [Level] - message\n"
func formatLine(now time.Time, level Level, msg string) []byte {
	buf := make([]byte, 0, len(msg)+32)
	buf = append(buf, "- "...)
	buf = now.AppendFormat(buf, lineLayout)
	buf = append(buf, " ["...)
	buf = append(buf, level.String()...)
	buf = append(buf, "] - "...)
	buf = append(buf, msg...)
	buf = append(buf, '\n')
	return buf
}
