package codec

import (
	"strconv"
	"strings"
)

// BytesToHex 将字节渲染为以空格分隔的大写十六进制字符串，如 "00 FF 0A"
func BytesToHex(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	const digits = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(data)*3 - 1)
	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[v>>4])
		b.WriteByte(digits[v&0x0F])
	}
	return b.String()
}

// HexToBytes 解析以空白分隔的十六进制字符串
// Tokens that are not a valid base-16 byte are dropped without error.
func HexToBytes(s string) []byte {
	tokens := strings.Fields(s)
	result := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) > 2 && (tok[:2] == "0x" || tok[:2] == "0X") {
			tok = tok[2:]
		}
		val, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			continue
		}
		result = append(result, byte(val))
	}
	return result
}
