// render/format.go
package render

import (
	"encoding/base64"
	"sort"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// FormatValue devolve a representação textual estável de um AttributeValue:
// S("x"), N("42"), B("<base64>"), BOOL(true), NULL, SS([...]), NS([...]),
// BS([...]), L([...]) e M({...}) com chaves ordenadas.
func FormatValue(v types.AttributeValue) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v types.AttributeValue) {
	switch tv := v.(type) {
	case *types.AttributeValueMemberS:
		b.WriteString("S(")
		b.WriteString(strconv.Quote(tv.Value))
		b.WriteByte(')')
	case *types.AttributeValueMemberN:
		b.WriteString("N(")
		b.WriteString(strconv.Quote(tv.Value))
		b.WriteByte(')')
	case *types.AttributeValueMemberB:
		b.WriteString("B(")
		b.WriteString(strconv.Quote(base64.StdEncoding.EncodeToString(tv.Value)))
		b.WriteByte(')')
	case *types.AttributeValueMemberBOOL:
		b.WriteString("BOOL(")
		b.WriteString(strconv.FormatBool(tv.Value))
		b.WriteByte(')')
	case *types.AttributeValueMemberNULL:
		b.WriteString("NULL")
	case *types.AttributeValueMemberSS:
		writeStrings(b, "SS", tv.Value)
	case *types.AttributeValueMemberNS:
		writeStrings(b, "NS", tv.Value)
	case *types.AttributeValueMemberBS:
		enc := make([]string, len(tv.Value))
		for i, raw := range tv.Value {
			enc[i] = base64.StdEncoding.EncodeToString(raw)
		}
		writeStrings(b, "BS", enc)
	case *types.AttributeValueMemberL:
		b.WriteString("L([")
		for i, el := range tv.Value {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, el)
		}
		b.WriteString("])")
	case *types.AttributeValueMemberM:
		b.WriteString("M({")
		for i, k := range sortedKeys(tv.Value) {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(k))
			b.WriteString(": ")
			writeValue(b, tv.Value[k])
		}
		b.WriteString("})")
	default:
		b.WriteString("UNKNOWN")
	}
}

func writeStrings(b *strings.Builder, tag string, values []string) {
	b.WriteString(tag)
	b.WriteString("([")
	for i, s := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(s))
	}
	b.WriteString("])")
}

func sortedKeys(m map[string]types.AttributeValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FormatItem formata um item inteiro como um M, útil em logs
func FormatItem(item map[string]types.AttributeValue) string {
	return FormatValue(&types.AttributeValueMemberM{Value: item})
}
