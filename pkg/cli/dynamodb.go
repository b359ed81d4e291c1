package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/raywall/cloud-admin-toolkit/dyndb"
	"github.com/raywall/cloud-admin-toolkit/pkg/metrics"
	"github.com/raywall/cloud-admin-toolkit/render"
	"github.com/spf13/cobra"
)

// tableMissing imprime a mensagem de tabela inexistente; o comando termina com sucesso
func (a *App) tableMissing(err error, table string) bool {
	if !dyndb.IsTableNotFound(err) {
		return false
	}
	fmt.Fprintf(a.stdout, "Table '%s' not found.\n", table)
	return true
}

func (a *App) describeTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe-table <table>",
		Short: "Mostra as definições de atributos e o key schema",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printDescribe(cmd, args[0])
		},
	}
}

func (a *App) printDescribe(cmd *cobra.Command, table string) error {
	desc, err := a.tables.Describe(cmd.Context(), table)
	if err != nil {
		if a.tableMissing(err, table) {
			return nil
		}
		return err
	}

	fmt.Fprintf(a.stdout, "\nDynamoDB table: %s\n", table)
	if len(desc.Attributes) > 0 {
		fmt.Fprintln(a.stdout, "AttributeDefinitions:")
		for _, ad := range desc.Attributes {
			fmt.Fprintf(a.stdout, "  - name: %s, type: %s\n", ad.Name, ad.Type)
		}
	}
	if len(desc.KeySchema) > 0 {
		fmt.Fprintln(a.stdout, "KeySchema:")
		for _, k := range desc.KeySchema {
			fmt.Fprintf(a.stdout, "  - name: %s, key_type: %s\n", k.Name, k.Role)
		}
	}
	return nil
}

func (a *App) scanTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan-table <table>",
		Short: "Imprime todos os itens da tabela, um bloco YAML por item",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := args[0]
			count, err := a.tables.Scan(cmd.Context(), table, func(item dyndb.Item) error {
				return render.Verbose(a.stdout, item)
			})
			a.record(metrics.EventItemsScanned, count, "table:"+table)
			if err != nil {
				if a.tableMissing(err, table) {
					return nil
				}
				return err
			}
			fmt.Fprintf(a.stdout, "\nTotal: %d item(s)\n", count)
			return nil
		},
	}
}

func (a *App) scanTableCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan-table-csv <table>",
		Short: "Exporta a tabela como CSV (cabeçalho = união dos atributos)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.exportTable(cmd, args[0], "CSV", render.CSV)
		},
	}
}

func (a *App) scanTableTSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan-table-tsv <table>",
		Short: "Exporta a tabela como TSV (cabeçalho = união dos atributos)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.exportTable(cmd, args[0], "TSV", render.TSV)
		},
	}
}

// exportTable lê a tabela inteira antes de escrever: o cabeçalho depende de
// todos os itens. O resumo vai para stderr para não poluir a exportação.
func (a *App) exportTable(cmd *cobra.Command, table, format string, write func(w io.Writer, items []render.Item) error) error {
	items, err := a.tables.ScanAll(cmd.Context(), table)
	if err != nil {
		if a.tableMissing(err, table) {
			return nil
		}
		return err
	}
	a.record(metrics.EventItemsScanned, len(items), "table:"+table, "format:"+format)

	if len(items) == 0 {
		fmt.Fprintln(a.stdout, "(no items)")
	} else if err := write(a.stdout, items); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	fmt.Fprintf(a.stderr, "\nWrote %d item(s) as %s\n", len(items), format)
	return nil
}

func (a *App) listTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-tables",
		Short: "Lista as tabelas DynamoDB da conta",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := a.tables.ListTables(cmd.Context())
			if err != nil {
				return err
			}
			a.record(metrics.EventTablesTotal, len(names))
			if len(names) == 0 {
				fmt.Fprintln(a.stdout, "No DynamoDB tables found.")
				return nil
			}
			fmt.Fprintln(a.stdout, "DynamoDB tables:")
			for _, n := range names {
				fmt.Fprintf(a.stdout, "  %s\n", n)
			}
			return nil
		},
	}
}

func (a *App) deleteAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-all <table>",
		Short: "Remove todos os itens da tabela (não atômico)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := args[0]
			deleted, err := a.tables.DeleteAll(cmd.Context(), table)
			a.record(metrics.EventItemsDeleted, deleted, "table:"+table)
			switch {
			case err == nil:
			case a.tableMissing(err, table):
			case errors.Is(err, dyndb.ErrNoKeySchema):
				fmt.Fprintf(a.stdout, "Table '%s' has no key schema.\n", table)
			default:
				a.log.Warn().Int("deleted", deleted).Str("table", table).Msg("delete-all interrupted")
				return err
			}
			fmt.Fprintf(a.stdout, "Deleted %d item(s)\n", deleted)
			return nil
		},
	}
}

// reportSkipped recebe do DeleteAll os registros sem chave completa
func (a *App) reportSkipped(item dyndb.Item) {
	fmt.Fprintf(a.stdout, "Skipping item missing full key: %s\n", render.FormatItem(item))
}

// parseKeyArgs converte os tokens nome=valor; nenhum par válido é erro de uso
func parseKeyArgs(args []string) (dyndb.Item, error) {
	key, err := dyndb.ParseKey(args)
	if err != nil {
		return nil, err
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: no key provided (expected name=value)", ErrUsage)
	}
	return key, nil
}

func (a *App) itemExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "item-exists <table> <key1=value1> [key2=value2 ...]",
		Short: "Indica se existe um item com a chave informada",
		Args:  minimumArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseKeyArgs(args[1:])
			if err != nil {
				return err
			}
			exists, err := a.tables.Exists(cmd.Context(), args[0], key)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, exists)
			return nil
		},
	}
}

func (a *App) setAttrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-attr <table> <attribute> <value> <key1=value1> [key2=value2 ...]",
		Short: "Define um atributo do item; o tipo (BOOL, N ou S) é inferido do valor",
		Args:  minimumArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, attr, raw := args[0], args[1], args[2]
			key, err := parseKeyArgs(args[3:])
			if err != nil {
				return err
			}
			if err := a.tables.SetAttribute(cmd.Context(), table, key, attr, dyndb.InferValue(raw)); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, "OK")
			return nil
		},
	}
}
