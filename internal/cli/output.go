package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"oleum/internal/importer"
	"oleum/internal/search"
	"oleum/internal/validation"
)

func writeOutput(w io.Writer, format string, data any) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case "table", "":
		return writeTable(w, data)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func writeTable(w io.Writer, data any) error {
	switch v := data.(type) {
	case search.Result:
		return searchTable(w, v)
	case []importer.Report:
		return importTable(w, v)
	case validation.Result:
		return validationTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func searchTable(w io.Writer, result search.Result) error {
	if len(result.Items) == 0 {
		fmt.Fprintln(w, "No essential oils found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tESSENTIAL OIL\tMATCHES\tSCORE\tWEIGHTED\tEFFECTS")
	for i, item := range result.Items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d %%\t%s\n",
			i+1,
			item.EssentialOil.Name,
			item.MatchAmount,
			item.EffectDegreeDiscomfortValue,
			item.WeightedMatchValue,
			strings.Join(strings.Split(item.SearchEffectTextsInEssentialOil, ";@"), ", "),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d essential oils, maximum score %d\n", result.SearchEssentialOilResultsAmount, result.MaxEffectDegreeDiscomfortValue)
	return nil
}

func importTable(w io.Writer, reports []importer.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tROWS\tPARENTS\tCREATED\tASSIGNMENTS\tSTATUS")
	for _, report := range reports {
		status := "imported"
		switch {
		case report.Errors.HasErrors():
			status = "rejected"
		case report.DryRun:
			status = "dry run"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\n",
			report.Kind,
			report.Rows,
			report.Parents,
			report.ParentsCreated+report.ChildrenCreated,
			report.Assignments,
			status,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, report := range reports {
		if report.Errors.HasErrors() {
			if err := validationTable(w, report.Errors); err != nil {
				return err
			}
		}
	}
	return nil
}

func validationTable(w io.Writer, result validation.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tERROR")
	for _, key := range result.Keys() {
		fmt.Fprintf(tw, "%s\t%s\n", key, result[key])
	}
	return tw.Flush()
}
