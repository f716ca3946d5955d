package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/emailpro/internal/logging"
	"github.com/opencode-ai/emailpro/internal/templates"
)

var listQuery string

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(showCmd)

	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "only templates whose title, description, or category contains this text")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List email templates",
	Long:  "List templates in catalog order, optionally filtered by a case-insensitive query.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(logging.Component("templates"))
		if err != nil {
			return err
		}
		return writeTemplateList(cmd.OutOrStdout(), catalog.Filter(listQuery), IsJSONOutput())
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List template categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(logging.Component("templates"))
		if err != nil {
			return err
		}
		categories := catalog.Categories()
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), categories)
		}
		for _, category := range categories {
			fmt.Fprintln(cmd.OutOrStdout(), category)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a template",
	Long:  "Show a template's metadata, placeholders and raw body.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(logging.Component("templates"))
		if err != nil {
			return err
		}
		tmpl, err := catalog.Get(args[0])
		if err != nil {
			return err
		}
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), tmpl)
		}
		return writeTemplateDetail(cmd.OutOrStdout(), tmpl)
	},
}

type templateSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Placeholders int    `json:"placeholders"`
}

func writeTemplateList(out io.Writer, list []*templates.Template, asJSON bool) error {
	if asJSON {
		summaries := make([]templateSummary, 0, len(list))
		for _, tmpl := range list {
			summaries = append(summaries, templateSummary{
				ID:           tmpl.ID,
				Title:        tmpl.Title,
				Category:     tmpl.Category,
				Description:  tmpl.Description,
				Placeholders: len(tmpl.Placeholders),
			})
		}
		return WriteOutput(out, summaries)
	}

	if len(list) == 0 {
		_, err := fmt.Fprintln(out, "No templates found.")
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, tmpl := range list {
		rows = append(rows, []string{
			tmpl.ID,
			tmpl.Title,
			tmpl.Category,
			strconv.Itoa(len(tmpl.Placeholders)),
		})
	}
	return writeTable(out, []string{"ID", "TITLE", "CATEGORY", "FIELDS"}, rows)
}

func writeTemplateDetail(out io.Writer, tmpl *templates.Template) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", tmpl.Title)
	fmt.Fprintf(&b, "  ID:       %s\n", tmpl.ID)
	fmt.Fprintf(&b, "  Category: %s\n", tmpl.Category)
	if tmpl.Description != "" {
		fmt.Fprintf(&b, "  About:    %s\n", tmpl.Description)
	}
	if tmpl.Source != "" {
		fmt.Fprintf(&b, "  Source:   %s\n", tmpl.Source)
	}

	if len(tmpl.Placeholders) > 0 {
		b.WriteString("\nPlaceholders:\n")
		for _, name := range tmpl.Placeholders {
			kind := "line"
			if templates.IsMultiline(name) {
				kind = "text"
			}
			fmt.Fprintf(&b, "  %-24s %s\n", templates.Marker(name), kind)
		}
	}

	b.WriteString("\n")
	b.WriteString(tmpl.Body)
	b.WriteString("\n")

	_, err := io.WriteString(out, b.String())
	return err
}
