//    TopicRiver
//    Copyright: S Feldkamp 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package graphing

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sfeldkamp/TopicRiver/internal/topics"
	"github.com/sfeldkamp/TopicRiver/internal/vv"
)

//
// GRAPHING
//

// see https://echarts.apache.org/en/option.html#series-bar
// and https://echarts.apache.org/en/option.html#series-themeRiver

const (
	BARTITLE    = "Topic share by decade"
	RIVERBASE   = "Topic flow"
	RIVERTITLE  = RIVERBASE + ", %d to %d"
	SAVESTR     = "Save to file..."
	SAVETYPE    = "png"
	TOOLTIPTRIG = "axis"
	STACKNAME   = "shares"
	RIVERDATE   = "%d/01/01"
)

// ChartSettings - what a rendered chart needs to know beyond its data
type ChartSettings struct {
	Palette     string
	PaletteSize int
	Subtitle    string
}

// WriteBarChart - render the stacked per-decade bar chart into a standalone html file
func WriteBarChart(shares []topics.DecadeShare, labels []string, cs ChartSettings, outdir string) (string, error) {
	g := buildbarchart(shares, labels, cs)
	return writechartpage(g, filepath.Join(outdir, vv.BARCHARTFILE))
}

// WriteStreamgraph - render the themeriver/streamgraph into a standalone html file
func WriteStreamgraph(shares []topics.DecadeShare, labels []string, cs ChartSettings, outdir string) (string, error) {
	g := buildstreamgraph(shares, cs)
	return writechartpage(g, filepath.Join(outdir, vv.STREAMGRAPHFILE))
}

// buildbarchart - one stacked bar series per topic, decades along the x axis
func buildbarchart(shares []topics.DecadeShare, labels []string, cs ChartSettings) *charts.Bar {
	decades := topics.Decades(shares)

	xaxis := make([]string, len(decades))
	decidx := make(map[int]int, len(decades))
	for i, d := range decades {
		xaxis[i] = fmt.Sprintf("%d", d)
		decidx[d] = i
	}

	// one value column per decade for every topic
	series := make([][]opts.BarData, len(labels))
	for t := range labels {
		series[t] = make([]opts.BarData, len(decades))
	}
	for _, s := range shares {
		series[s.Topic][decidx[s.Decade]] = opts.BarData{Value: s.Share}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:     vv.DEFAULTCHRTWIDTH,
			Height:    vv.DEFAULTCHRTHEIGHT,
			PageTitle: BARTITLE,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    BARTITLE,
			Subtitle: cs.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: TOOLTIPTRIG}),
		charts.WithLegendOpts(opts.Legend{Show: true, Bottom: "0"}),
		charts.WithColorsOpts(opts.Colors(Palette(cs.Palette, cs.PaletteSize))),
		charts.WithToolboxOpts(savetoolbox(BARTITLE)),
		charts.WithXAxisOpts(opts.XAxis{Name: "decade"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "mean topic share"}),
	)

	bar.SetXAxis(xaxis)
	for t, label := range labels {
		bar.AddSeries(label, series[t],
			charts.WithBarChartOpts(opts.BarChart{Stack: STACKNAME}))
	}

	return bar
}

// buildstreamgraph - the same table as a themeriver: no meaningful baseline, just flow
func buildstreamgraph(shares []topics.DecadeShare, cs ChartSettings) *charts.ThemeRiver {
	decades := topics.Decades(shares)

	data := make([]opts.ThemeRiverData, len(shares))
	for i, s := range shares {
		data[i] = opts.ThemeRiverData{
			Date:  fmt.Sprintf(RIVERDATE, s.Decade),
			Value: s.Share,
			Name:  s.Label,
		}
	}

	title := RIVERBASE
	if len(decades) > 0 {
		title = fmt.Sprintf(RIVERTITLE, decades[0], decades[len(decades)-1]+9)
	}

	river := charts.NewThemeRiver()
	river.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:     vv.DEFAULTCHRTWIDTH,
			Height:    vv.DEFAULTCHRTHEIGHT,
			PageTitle: title,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: cs.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: TOOLTIPTRIG}),
		charts.WithLegendOpts(opts.Legend{Show: true, Bottom: "0"}),
		charts.WithColorsOpts(opts.Colors(Palette(cs.Palette, cs.PaletteSize))),
		charts.WithToolboxOpts(savetoolbox(title)),
		charts.WithSingleAxisOpts(opts.SingleAxis{
			Type:   "time",
			Bottom: "10%",
		}),
	)

	river.AddSeries("topics", data)

	return river
}

// savetoolbox - the save-as-image widget every chart carries
func savetoolbox(name string) opts.Toolbox {
	return opts.Toolbox{
		Show:   true,
		Orient: "vertical",
		Left:   "5",
		Feature: &opts.ToolBoxFeature{
			SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
				Show:  true,
				Type:  SAVETYPE,
				Name:  name,
				Title: SAVESTR, // get chinese if ""
			},
		},
	}
}

// writechartpage - put one chart on one page and write it as standalone html
func writechartpage(c components.Charter, fn string) (string, error) {
	// [a] a page with a single chart on it
	p := components.NewPage()
	p.AddCharts(c)

	// [b] open the target file
	f, err := os.Create(fn)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// [c] render html+js into it
	if err = renderto(p, f); err != nil {
		return "", err
	}

	return fn, nil
}

func renderto(p *components.Page, w io.Writer) error {
	return p.Render(w)
}
