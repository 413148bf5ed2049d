package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/modler/internal/cli/ui"
	"github.com/conduit-lang/modler/internal/orm/collection/mysql"
)

type fetchOptions struct {
	params []string
	single bool
	json   bool
	driver string
	dsn    string
}

// NewFetchCommand creates the fetch command
func NewFetchCommand() *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch <sql>",
		Short: "Run a query and print the result rows",
		Long: `Prepare and execute a query against the configured database and print
every row it returns.

Positional placeholders are bound from --param flags in order.`,
		Example: `  # Print every user
  modler fetch "SELECT id, name FROM users"

  # Bind parameters
  modler fetch "SELECT * FROM users WHERE id = ?" --param 42 --single

  # JSON output against a SQLite file
  modler fetch "SELECT * FROM users" --driver sqlite3 --dsn app.db --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.params, "param", "p", nil, "Query parameter (repeatable)")
	cmd.Flags().BoolVar(&opts.single, "single", false, "Only print the first row")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print rows as JSON")
	cmd.Flags().StringVar(&opts.driver, "driver", "", "Override database.driver")
	cmd.Flags().StringVar(&opts.dsn, "dsn", "", "Override database.dsn")

	return cmd
}

func runFetch(cmd *cobra.Command, query string, opts *fetchOptions) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if opts.driver != "" {
		cfg.Database.Driver = opts.driver
	}
	if opts.dsn != "" {
		cfg.Database.DSN = opts.dsn
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	params := make([]any, len(opts.params))
	for i, p := range opts.params {
		params[i] = p
	}

	logger.Debug("fetching",
		zap.String("driver", cfg.Database.Driver),
		zap.String("query", query),
		zap.Int("params", len(params)),
	)

	rows := mysql.New(db, mysql.WithLogger(logger))
	out := cmd.OutOrStdout()

	if opts.single {
		row, ok := rows.FetchOne(cmd.Context(), query, params)
		if !ok {
			return errors.New(rows.LastError())
		}
		if opts.json {
			return writeJSON(out, row)
		}
		if row == nil {
			fmt.Fprintln(out, "No rows")
			return nil
		}
		renderRow(out, row, noColor(cmd))
		return nil
	}

	results, ok := rows.Fetch(cmd.Context(), query, params)
	if !ok {
		return errors.New(rows.LastError())
	}
	if opts.json {
		return writeJSON(out, results)
	}
	if len(results) == 0 {
		fmt.Fprintln(out, "No rows")
		return nil
	}

	ui.NewRowTable(out, results, &ui.TableOptions{NoColor: noColor(cmd)}).Render()
	fmt.Fprintf(out, "\n%d row(s)\n", len(results))
	return nil
}

func renderRow(w io.Writer, row mysql.Row, noColor bool) {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := ui.NewKeyValueTable(w, noColor)
	for _, k := range keys {
		kv.AddRow(k, ui.FormatCell(row[k]))
	}
	kv.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode rows: %w", err)
	}
	return nil
}
