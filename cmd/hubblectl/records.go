package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	shareddomain "hubble-workspace/internal/shared_kernel/domain"
	"hubble-workspace/internal/workspace/usecases"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func (a *app) viewsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the views of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				StyleFunc(styleCell).
				Headers("VIEW", "TITLE", "RESOURCE", "ROWS")
			for _, view := range a.catalog.Views() {
				t.Row(view.Name, view.Title, view.Resource.String(), strconv.Itoa(view.RowsPerPage))
			}
			fmt.Fprintln(a.out, t.Render())
			return nil
		},
	}
}

func (a *app) listCommand() *cobra.Command {
	var (
		page   int
		limit  int
		params []string
	)

	cmd := &cobra.Command{
		Use:   "list VIEW",
		Short: "Render one page of a view",
		Example: `  hubblectl list plans --limit 5
  hubblectl list invoices --param date_range=last_3_months --param order_by=created`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseParams(params)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("page") {
				values[usecases.PageParam] = strconv.Itoa(page)
			}
			if cmd.Flags().Changed("limit") {
				values[usecases.LimitParam] = strconv.Itoa(limit)
			}

			rendered, err := a.views().RenderView(cmd.Context(), args[0], values)
			if err != nil {
				return err
			}
			a.log.Debugw("rendered view", "view", args[0], "total", rendered.Table.TotalRows)

			fmt.Fprintln(a.out, renderPage(rendered))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number, starting at 0")
	cmd.Flags().IntVar(&limit, "limit", 0, "rows per page")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "view parameter as key=value, repeatable")
	return cmd
}

func (a *app) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get RESOURCE IDENTIFIER",
		Short: "Print one record as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource, err := shareddomain.ParseResource(args[0])
			if err != nil {
				return err
			}

			record, err := a.records.Get(cmd.Context(), resource, shareddomain.ID(args[1]))
			if err != nil {
				return err
			}
			return a.printJSON(record)
		},
	}
}

func (a *app) createCommand() *cobra.Command {
	var data, file string

	cmd := &cobra.Command{
		Use:     "create RESOURCE",
		Short:   "Create a record from a JSON object",
		Example: `  hubblectl create plans --data '{"name":"Gold","price":120}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource, err := shareddomain.ParseResource(args[0])
			if err != nil {
				return err
			}
			body, err := readBody(data, file)
			if err != nil {
				return err
			}

			created, err := a.records.Create(cmd.Context(), resource, body)
			if err != nil {
				return err
			}
			a.log.Infow("record created", "resource", resource.String(), "identifier", created.Identifier().String())
			return a.printJSON(created)
		},
	}

	bodyFlags(cmd, &data, &file)
	return cmd
}

func (a *app) updateCommand() *cobra.Command {
	var data, file string

	cmd := &cobra.Command{
		Use:   "update RESOURCE IDENTIFIER",
		Short: "Replace a record with a JSON object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource, err := shareddomain.ParseResource(args[0])
			if err != nil {
				return err
			}
			body, err := readBody(data, file)
			if err != nil {
				return err
			}

			updated, err := a.records.Update(cmd.Context(), resource, shareddomain.ID(args[1]), body)
			if err != nil {
				return err
			}
			return a.printJSON(updated)
		},
	}

	bodyFlags(cmd, &data, &file)
	return cmd
}

func bodyFlags(cmd *cobra.Command, data, file *string) {
	cmd.Flags().StringVarP(data, "data", "d", "", "record as a JSON object")
	cmd.Flags().StringVarP(file, "file", "f", "", "read the record from a JSON file")
	cmd.MarkFlagsOneRequired("data", "file")
	cmd.MarkFlagsMutuallyExclusive("data", "file")
}

func readBody(data, file string) (shareddomain.Record, error) {
	raw := []byte(data)
	if file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		raw = content
	}

	var body shareddomain.Record
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("record must be a JSON object: %w", err)
	}
	if body == nil {
		return nil, fmt.Errorf("record must be a JSON object")
	}
	return body, nil
}

func parseParams(params []string) (map[string]string, error) {
	values := make(map[string]string, len(params))
	for _, param := range params {
		key, value, ok := strings.Cut(param, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", param)
		}
		values[key] = value
	}
	return values, nil
}

func (a *app) printJSON(record shareddomain.Record) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(record)
}

func renderPage(page usecases.ViewPage) string {
	labels := make([]string, 0, len(page.Table.Headers))
	for _, header := range page.Table.Headers {
		labels = append(labels, strings.ToUpper(header.Label))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Headers(labels...)

	shown := 0
	for _, row := range page.Table.Rows {
		if row.Filler {
			continue
		}
		cells := make([]string, 0, len(page.Table.Headers))
		for _, header := range page.Table.Headers {
			cells = append(cells, page.View.FormatCell(row.Record, header.ID))
		}
		t.Row(cells...)
		shown++
	}

	if shown == 0 {
		return page.View.EmptyMessage
	}
	footer := fmt.Sprintf("page %d, %d of %d records", page.Table.Page, shown, page.Table.TotalRows)
	return t.Render() + "\n" + footer
}

func styleCell(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}
