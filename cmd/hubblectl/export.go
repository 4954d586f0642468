package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (a *app) exportCommand() *cobra.Command {
	var (
		output string
		params []string
	)

	cmd := &cobra.Command{
		Use:   "export VIEW",
		Short: "Export the rendered page of a view to an XLSX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseParams(params)
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0] + ".xlsx"
			}

			file, err := os.Create(output)
			if err != nil {
				return err
			}

			if err := a.views().ExportView(cmd.Context(), args[0], values, file); err != nil {
				file.Close()
				os.Remove(output)
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}

			a.log.Infow("view exported", "view", args[0], "path", output)
			fmt.Fprintf(a.out, "exported %s to %s\n", args[0], output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (default VIEW.xlsx)")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "view parameter as key=value, repeatable")
	return cmd
}
