package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"assetflow/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (a *app) printStructured(cmd *cobra.Command, v interface{}) error {
	out := cmd.OutOrStdout()
	if a.outputFmt == "yaml" {
		return printYAML(out, v)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(out io.Writer, v interface{}) error {
	// Round-trip through JSON so keys follow the json tags.
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

func printTable(out io.Writer, headers []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
	}
	fmt.Fprintln(w, strings.Join(upper, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// render prints v as json or yaml, or builds table rows from it.
func (a *app) render(cmd *cobra.Command, v interface{}, headers []string, rows func() [][]string) error {
	if a.outputFmt != "table" {
		return a.printStructured(cmd, v)
	}
	printTable(cmd.OutOrStdout(), headers, rows())
	return nil
}

func (a *app) printIdentities(cmd *cobra.Command, identities ...models.Identity) error {
	var v interface{} = identities
	if len(identities) == 1 {
		v = identities[0]
	}
	return a.render(cmd, v, []string{"ID", "Username", "Email", "Role", "Department", "Active"}, func() [][]string {
		rows := make([][]string, 0, len(identities))
		for _, u := range identities {
			rows = append(rows, []string{
				fmtID(u.ID), u.Username, u.Email, string(u.Role), str(u.Department), strconv.FormatBool(u.IsActive),
			})
		}
		return rows
	})
}

func fmtID(v int64) string { return strconv.FormatInt(v, 10) }

func optID(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmtID(*v)
}

func str(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func date(v *time.Time) string {
	if v == nil {
		return "-"
	}
	return v.Format("2006-01-02")
}

func money(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
