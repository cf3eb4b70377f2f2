package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"oleum/internal/search"
	"oleum/internal/views/layout"
)

// SearchPage is the view model of the effect search.
type SearchPage struct {
	Form        SearchForm
	EffectNames []string
	// Result is nil until a search was submitted.
	Result   *search.Result
	Message  string
	SignedIn bool
}

// Search renders the full search page.
func Search(data SearchPage) templ.Component {
	return layout.Page("Find essential oils", data.SignedIn, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &layout.Writer{W: w}
		out.Raw(`<section class="` + layout.PanelClass + `"><h1 class="mb-2 text-2xl">Find essential oils</h1>`)
		out.Raw(`<p class="` + layout.MutedClass + `">Name up to ` + strconv.Itoa(SearchFormRows) + ` effects and rate how much each one troubles you.</p>`)
		writeSearchForm(out, data)
		out.Raw(`</section>`)
		out.Render(ctx, SearchResults(data))
		return out.Err
	}))
}

func writeSearchForm(out *layout.Writer, data SearchPage) {
	out.Raw(`<form method="get" action="/search" hx-get="/search" hx-target="#results" hx-swap="outerHTML" hx-push-url="true" class="mt-4 grid gap-2">`)
	out.Raw(`<datalist id="effect-names">`)
	for _, name := range data.EffectNames {
		out.Raw(`<option value="`)
		out.Text(name)
		out.Raw(`">`)
	}
	out.Raw(`</datalist>`)
	for i := 0; i < SearchFormRows; i++ {
		var row SearchRow
		if i < len(data.Form.Rows) {
			row = data.Form.Rows[i]
		}
		out.Raw(`<div class="flex gap-2"><input type="text" name="effect" list="effect-names" class="flex-1" placeholder="Effect" value="`)
		out.Text(row.Effect)
		out.Raw(`"><select name="discomfort">`)
		for _, option := range DiscomfortOptions() {
			out.Raw(`<option value="` + strconv.Itoa(option.Value) + `"`)
			if option.Value == row.Discomfort {
				out.Raw(` selected`)
			}
			out.Raw(`>`)
			out.Text(option.Label)
			out.Raw(`</option>`)
		}
		out.Raw(`</select></div>`)
	}
	out.Raw(`<button type="submit" class="` + layout.ButtonClass + `">Search</button></form>`)
}

// SearchResults renders the ranked result table; it is also the HTMX swap target.
func SearchResults(data SearchPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &layout.Writer{W: w}
		out.Raw(`<section id="results" class="mt-6">`)
		writeMessage(out, data.Message)
		switch {
		case data.Result == nil:
		case data.Result.SearchEssentialOilResultsAmount == 0:
			out.Raw(`<p class="` + layout.MutedClass + `">No essential oil matches these effects.</p>`)
		default:
			out.Raw(`<p class="` + layout.MutedClass + `">` + strconv.Itoa(data.Result.SearchEssentialOilResultsAmount) + ` essential oils found.</p>`)
			out.Raw(`<table class="mt-2 w-full"><thead><tr><th>#</th><th>Essential oil</th><th>Matches</th><th>Weighted match</th><th>Effects</th></tr></thead><tbody>`)
			for i, item := range data.Result.Items {
				out.Raw(`<tr><td>` + strconv.Itoa(i+1) + `</td><td><strong>`)
				out.Text(item.EssentialOil.Name)
				out.Raw(`</strong><br><em class="` + layout.MutedClass + `">`)
				out.Text(DefaultDash(item.EssentialOil.LatinName))
				out.Raw(`</em></td><td>` + strconv.Itoa(item.MatchAmount) + `</td><td>`)
				out.Raw(`<div class="h-2 bg-emerald-600" style="` + MatchBarWidth(item.WeightedMatchValue) + `"></div>`)
				out.Text(WeightedLabel(item.WeightedMatchValue))
				out.Raw(`</td><td><ul>`)
				for _, effect := range MatchedEffects(item) {
					out.Raw(`<li>`)
					out.Text(effect)
					out.Raw(`</li>`)
				}
				out.Raw(`</ul></td></tr>`)
			}
			out.Raw(`</tbody></table>`)
		}
		out.Raw(`</section>`)
		return out.Err
	})
}
