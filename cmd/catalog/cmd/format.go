package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"catalog/internal/api"
	"catalog/views/models"
)

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printSchemes(w io.Writer, schemes []api.Scheme) error {
	switch outputFormat {
	case "json":
		return writeJSON(w, schemes)
	case "table":
	default:
		return fmt.Errorf("unsupported output format %q, use 'table' or 'json'", outputFormat)
	}

	if len(schemes) == 0 {
		fmt.Fprintln(w, "No schemes found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tTITLE\tPUBLISHED\tDESCRIPTION")
	for _, s := range schemes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Category, s.Title, models.PublishedOrNA(s.PublishDate), models.Excerpt(s.Description))
	}
	return tw.Flush()
}

func printNotifications(w io.Writer, items []api.Notification) error {
	switch outputFormat {
	case "json":
		return writeJSON(w, items)
	case "table":
	default:
		return fmt.Errorf("unsupported output format %q, use 'table' or 'json'", outputFormat)
	}

	fmt.Fprintf(w, "%d notification(s)\n", len(items))
	if len(items) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tTITLE")
	for _, n := range items {
		fmt.Fprintf(tw, "%s\t%s\n", n.Category, n.Title)
	}
	return tw.Flush()
}
