package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/bwarm/internal/core"
)

const pageStyle = `body{font-family:sans-serif;margin:2rem;color:#222}` +
	`table{border-collapse:collapse}th,td{border:1px solid #ccc;padding:.3rem .6rem;text-align:left}` +
	`td.count{text-align:right}.muted{color:#777}`

// render writes c as an HTML response.
func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}

// layout wraps body in the shared page chrome.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			"<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"><title>%s</title><style>%s</style></head><body>",
			templ.EscapeString(title), pageStyle); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func snapshotURL(id string) string {
	return "/snapshots/" + url.PathEscape(id)
}

// indexPage lists the snapshots found under the base directory.
func indexPage(infos []core.SnapshotInfo) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &htmlWriter{w: w}
		b.raw("<h1>Snapshots</h1>")
		if len(infos) == 0 {
			b.raw(`<p class="muted">No snapshots found.</p>`)
			return b.err
		}
		b.raw("<table><thead><tr><th>Snapshot</th><th>Entity files</th><th>Validated</th></tr></thead><tbody>")
		for _, s := range infos {
			b.raw(`<tr><td><a href="`)
			b.text(snapshotURL(s.ID))
			b.raw(`">`)
			b.text(s.ID)
			b.raw("</a></td><td>")
			b.text(strconv.Itoa(s.Files))
			b.raw("</td><td>")
			if s.HasSummary {
				b.raw("yes")
			} else {
				b.raw(`<span class="muted">no</span>`)
			}
			b.raw("</td></tr>")
		}
		b.raw("</tbody></table>")
		return b.err
	})
	return layout("Snapshots", body)
}

// reportState is what the summary log of a snapshot says about its last run.
type reportState int

const (
	reportReady      reportState = iota
	reportMissing                // never validated
	reportRunning                // a run is writing the logs now
	reportUnfinished             // the last run ended before writing the summary
)

// reportPage shows the recurring-message summary of one snapshot.
func reportPage(snapshot string, state reportState, rows []core.SummaryRow) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &htmlWriter{w: w}
		b.raw(`<p><a href="/">All snapshots</a></p><h1>`)
		b.text(snapshot)
		b.raw("</h1>")

		switch {
		case state == reportMissing:
			b.raw(`<p class="muted">This snapshot has not been validated yet.</p>`)
			return b.err
		case state == reportRunning:
			b.raw(`<p class="muted">A validation of this snapshot is running. Reload when it has finished.</p>`)
			return b.err
		case state == reportUnfinished:
			b.raw(`<p class="muted">The last validation of this snapshot did not finish. Run it again for a summary.</p>`)
			return b.err
		case len(rows) == 0:
			b.raw("<p>No errors found.</p>")
			return b.err
		}

		total := 0
		for _, row := range rows {
			total += row.Count
		}
		b.raw("<p>")
		b.text(fmt.Sprintf("%d errors, %d distinct messages", total, len(rows)))
		b.raw("</p><table><thead><tr><th>File</th><th>Error Message</th><th>Count</th></tr></thead><tbody>")
		for _, row := range rows {
			b.raw("<tr><td>")
			b.text(row.File)
			b.raw("</td><td>")
			b.text(row.Message)
			b.raw(`</td><td class="count">`)
			b.text(strconv.Itoa(row.Count))
			b.raw("</td></tr>")
		}
		b.raw("</tbody></table>")
		return b.err
	})
	return layout(snapshot+" validation report", body)
}

// htmlWriter accumulates the first write error so component bodies can be
// written without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (b *htmlWriter) raw(s string) {
	if b.err != nil {
		return
	}
	_, b.err = io.WriteString(b.w, s)
}

func (b *htmlWriter) text(s string) {
	b.raw(templ.EscapeString(s))
}
