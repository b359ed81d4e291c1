// render/table.go
package render

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type Item = map[string]types.AttributeValue

var (
	csvEscaper = strings.NewReplacer(`"`, `""`, "\n", `\n`)
	tsvEscaper = strings.NewReplacer("\t", `\t`, "\n", `\n`)
)

// EscapeCSV dobra aspas, troca quebra de linha pelos caracteres `\n` e
// envolve o resultado em aspas. Não é RFC 4180: a saída fica em uma linha.
func EscapeCSV(s string) string {
	return `"` + csvEscaper.Replace(s) + `"`
}

// EscapeTSV troca tab e quebra de linha por `\t` e `\n`
func EscapeTSV(s string) string {
	return tsvEscaper.Replace(s)
}

// Headers retorna a união ordenada dos nomes de atributo de todos os itens
func Headers(items []Item) []string {
	set := make(map[string]struct{})
	for _, it := range items {
		for k := range it {
			set[k] = struct{}{}
		}
	}
	headers := make([]string, 0, len(set))
	for k := range set {
		headers = append(headers, k)
	}
	sort.Strings(headers)
	return headers
}

// CSV escreve cabeçalho e uma linha por item; célula ausente vira "".
func CSV(w io.Writer, items []Item) error {
	return writeTable(w, items, ",", EscapeCSV)
}

// TSV escreve cabeçalho e uma linha por item, sem aspas.
func TSV(w io.Writer, items []Item) error {
	return writeTable(w, items, "\t", EscapeTSV)
}

func writeTable(w io.Writer, items []Item, sep string, escape func(string) string) error {
	headers := Headers(items)
	bw := bufio.NewWriter(w)

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = escape(h)
	}
	writeRow(bw, cells, sep)

	for _, it := range items {
		for i, h := range headers {
			val := ""
			if v, ok := it[h]; ok {
				val = FormatValue(v)
			}
			cells[i] = escape(val)
		}
		writeRow(bw, cells, sep)
	}
	return bw.Flush()
}

func writeRow(bw *bufio.Writer, cells []string, sep string) {
	bw.WriteString(strings.Join(cells, sep))
	bw.WriteByte('\n')
}
