package cmd

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/oyster/core/history"
)

// serveCmd serves a pie chart of the most used programs over HTTP. The
// history file is re-read on every request so the chart stays current.
var serveCmd = &cobra.Command{
	Use:   "serve [HISTORY_FILE]",
	Short: "Serve a pie chart of your most used programs.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := cfg.HistoryPath
		if len(args) > 0 {
			path = args[0]
		}
		path = expandHome(path)

		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			report, err := history.LoadFile(afero.NewOsFs(), path)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "image/svg+xml")
			fmt.Fprint(w, renderPieChart(report.TopPrograms(cfg.TopN, cfg.IgnorePrograms)))
		})

		log.Printf("Serving charts of %s on http://%s", path, cfg.ListenAddr)
		return http.ListenAndServe(cfg.ListenAddr, nil)
	},
}

var pieColors = []string{
	"#b58900", "#cb4b16", "#dc322f", "#d33682", "#6c71c4",
	"#268bd2", "#2aa198", "#859900", "#657b83", "#93a1a1",
}

// renderPieChart draws the entries as an SVG pie with a legend. No charting
// dependency, the arcs are simple enough to emit directly.
func renderPieChart(entries []history.Entry) string {
	const (
		width  = 640.0
		height = 480.0
		cx     = 240.0
		cy     = 240.0
		radius = 200.0
	)

	total := 0
	for _, entry := range entries {
		total += entry.Count
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`,
		width, height, width, height)
	fmt.Fprintf(&b, `<rect width="%.0f" height="%.0f" fill="#fdf6e3"/>`, width, height)

	if total == 0 {
		fmt.Fprintf(&b, `<text x="%.0f" y="%.0f" text-anchor="middle" font-family="sans-serif">no history</text>`, cx, cy)
		b.WriteString(`</svg>`)
		return b.String()
	}

	angle := -math.Pi / 2 // start at 12 o'clock
	for i, entry := range entries {
		color := pieColors[i%len(pieColors)]
		share := float64(entry.Count) / float64(total)

		if share >= 1 {
			fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`, cx, cy, radius, color)
		} else {
			end := angle + share*2*math.Pi
			largeArc := 0
			if share > 0.5 {
				largeArc = 1
			}
			fmt.Fprintf(&b,
				`<path d="M%.1f,%.1f L%.1f,%.1f A%.1f,%.1f 0 %d 1 %.1f,%.1f Z" fill="%s"/>`,
				cx, cy,
				cx+radius*math.Cos(angle), cy+radius*math.Sin(angle),
				radius, radius, largeArc,
				cx+radius*math.Cos(end), cy+radius*math.Sin(end),
				color)
			angle = end
		}

		legendY := 40.0 + float64(i)*24
		fmt.Fprintf(&b, `<rect x="480" y="%.1f" width="16" height="16" fill="%s"/>`, legendY, color)
		fmt.Fprintf(&b, `<text x="504" y="%.1f" font-family="sans-serif" font-size="14">%s (%d)</text>`,
			legendY+13, htmlEscape(entry.Name), entry.Count)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
