package main

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sectionkit/sectionkit/internal/component"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available section components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	components := component.List()
	if len(components) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No components registered.")
		return nil
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, components)
	}

	return renderListTable(cmd, components)
}

func renderListTable(cmd *cobra.Command, components []component.Component) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "TYPE\tNAME\tVERSION\tAPI\tFIELDS")

	marker := "-"
	if supportsUnicode(cmd.OutOrStdout()) {
		marker = "•"
	}

	for _, c := range components {
		meta := c.Metadata()
		fmt.Fprintf(writer, "%s %s\t%s\t%s\t%s\t%s\n",
			marker,
			meta.Type,
			meta.Name,
			meta.Version,
			meta.APIVersion,
			strings.Join(schemaFields(c.Schema()), ", "),
		)
	}

	return writer.Flush()
}

type listJSONComponent struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	APIVersion  string   `json:"api_version"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

type listJSONPayload struct {
	Count      int                 `json:"count"`
	Components []listJSONComponent `json:"components"`
}

func renderListJSON(cmd *cobra.Command, components []component.Component) error {
	payload := listJSONPayload{
		Count:      len(components),
		Components: make([]listJSONComponent, len(components)),
	}

	for i, c := range components {
		meta := c.Metadata()
		payload.Components[i] = listJSONComponent{
			Type:        meta.Type,
			Name:        meta.Name,
			Version:     meta.Version,
			APIVersion:  meta.APIVersion,
			Description: meta.Description,
			Fields:      schemaFields(c.Schema()),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// schemaFields lists a component schema's YAML keys in declaration order.
func schemaFields(schema any) []string {
	t := reflect.TypeOf(schema)
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, name)
	}
	return fields
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
