// render/verbose.go
package render

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"gopkg.in/yaml.v3"
)

// Verbose escreve um item como bloco YAML no formato tipado do DynamoDB
// (`attr: {S: x}`), seguido de uma linha em branco.
func Verbose(w io.Writer, item map[string]types.AttributeValue) error {
	doc := make(map[string]any, len(item))
	for k, v := range item {
		doc[k] = typedValue(v)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("render: yaml: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// typedValue converte o AttributeValue para a forma {TIPO: valor}
func typedValue(v types.AttributeValue) map[string]any {
	switch tv := v.(type) {
	case *types.AttributeValueMemberS:
		return map[string]any{"S": tv.Value}
	case *types.AttributeValueMemberN:
		return map[string]any{"N": tv.Value}
	case *types.AttributeValueMemberB:
		return map[string]any{"B": base64.StdEncoding.EncodeToString(tv.Value)}
	case *types.AttributeValueMemberBOOL:
		return map[string]any{"BOOL": tv.Value}
	case *types.AttributeValueMemberNULL:
		return map[string]any{"NULL": tv.Value}
	case *types.AttributeValueMemberSS:
		return map[string]any{"SS": tv.Value}
	case *types.AttributeValueMemberNS:
		return map[string]any{"NS": tv.Value}
	case *types.AttributeValueMemberBS:
		enc := make([]string, len(tv.Value))
		for i, raw := range tv.Value {
			enc[i] = base64.StdEncoding.EncodeToString(raw)
		}
		return map[string]any{"BS": enc}
	case *types.AttributeValueMemberL:
		list := make([]any, len(tv.Value))
		for i, el := range tv.Value {
			list[i] = typedValue(el)
		}
		return map[string]any{"L": list}
	case *types.AttributeValueMemberM:
		m := make(map[string]any, len(tv.Value))
		for k, el := range tv.Value {
			m[k] = typedValue(el)
		}
		return map[string]any{"M": m}
	default:
		return map[string]any{"UNKNOWN": fmt.Sprintf("%T", v)}
	}
}
