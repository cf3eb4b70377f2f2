package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"oleum/internal/views/layout"
	"oleum/models"
)

// DashboardData lists the catalog for signed-in users.
type DashboardData struct {
	UserName      string
	EssentialOils []models.EssentialOil
	Effects       []models.Effect
	Molecules     []models.Molecule
}

// Dashboard renders the catalog overview.
func Dashboard(data DashboardData) templ.Component {
	return layout.Page("Catalog", true, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &layout.Writer{W: w}
		out.Raw(`<h1 class="mb-4 text-2xl">Catalog</h1>`)
		if data.UserName != "" {
			out.Raw(`<p class="` + layout.MutedClass + `">Signed in as `)
			out.Text(data.UserName)
			out.Raw(`</p>`)
		}

		out.Raw(`<section class="` + layout.PanelClass + `"><h2>Essential oils (` + strconv.Itoa(len(data.EssentialOils)) + `)</h2><ul>`)
		for _, oil := range data.EssentialOils {
			out.Raw(`<li>`)
			out.Text(oil.Name)
			out.Raw(` <em class="` + layout.MutedClass + `">`)
			out.Text(DefaultDash(oil.LatinName))
			out.Raw(`</em></li>`)
		}
		out.Raw(`</ul></section>`)

		writeNamedList(out, "Effects", names(data.Effects))
		writeNamedList(out, "Molecules", names(data.Molecules))
		return out.Err
	}))
}

func writeNamedList(out *layout.Writer, title string, values []string) {
	out.Raw(`<section class="mt-4 ` + layout.PanelClass + `"><h2>`)
	out.Text(title)
	out.Raw(` (` + strconv.Itoa(len(values)) + `)</h2><ul>`)
	for _, value := range values {
		out.Raw(`<li>`)
		out.Text(value)
		out.Raw(`</li>`)
	}
	out.Raw(`</ul></section>`)
}

func names[T interface{ GetName() string }](rows []T) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.GetName())
	}
	return out
}
