// Command calcium-bench sweeps the numeric kernel over a range of working
// precisions and records, for a fixed basket of expressions, how the
// enclosure radius and wall-clock cost scale with the requested precision.
// It writes one JSONL record per (expression, precision) sample and renders
// an interactive go-echarts scatter of precision vs. time, colored by the
// resulting accuracy in bits -- the same sweep-then-plot shape as the
// teacher's cmd/pacs_sweep + Additionnals/plot_pacs_sweep.go, retargeted from
// proof-size/soundness sweeps to enclosure-radius/precision sweeps.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/big"
	"os"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"calcium/bigball"
	"calcium/ca"
	"calcium/context"
	"calcium/qqbar"
	"calcium/transcendental"
)

// sample is one (expression, precision) measurement.
type sample struct {
	Expr      string  `json:"expr"`
	Class     string  `json:"class"` // "algebraic" or "transcendental"
	PrecBits  int     `json:"prec_bits"`
	TimeUS    int64   `json:"time_us"`
	RadiusLog float64 `json:"radius_log2"` // log2(radius), more negative is tighter
	AccBits   float64 `json:"accuracy_bits"`
}

type sweepRecord struct {
	Stage  string `json:"stage"`
	Sample sample `json:"sample"`
}

// expr is a named benchmark expression, rebuilt from scratch at every
// precision so caching inside a shared Context can't mask the true
// per-precision cost.
type expr struct {
	name  string
	class string
	build func(c *context.Context) *ca.Ca
}

func benchExprs() []expr {
	return []expr{
		{"sqrt2", "algebraic", func(c *context.Context) *ca.Ca {
			g := c.ExtForQQbar(qqbar.SqrtOfInt(2, c.Options.LowPrec))
			return ca.EmbedExt(c, g)
		}},
		{"sqrt2+sqrt3", "algebraic", func(c *context.Context) *ca.Ca {
			g2 := c.ExtForQQbar(qqbar.SqrtOfInt(2, c.Options.LowPrec))
			g3 := c.ExtForQQbar(qqbar.SqrtOfInt(3, c.Options.LowPrec))
			return ca.Add(ca.EmbedExt(c, g2), ca.EmbedExt(c, g3))
		}},
		{"pi", "transcendental", func(c *context.Context) *ca.Ca {
			return transcendental.Pi(c)
		}},
		{"exp(1)", "transcendental", func(c *context.Context) *ca.Ca {
			return transcendental.Exp(c, ca.One(c))
		}},
		{"log(2)", "transcendental", func(c *context.Context) *ca.Ca {
			return transcendental.Log(c, ca.FromInt64(c, 2))
		}},
		{"sin(pi/6)", "transcendental", func(c *context.Context) *ca.Ca {
			sixth := ca.FromRat(c, big.NewRat(1, 6))
			return transcendental.Sin(c, ca.Mul(transcendental.Pi(c), sixth))
		}},
		{"gamma(5)", "transcendental", func(c *context.Context) *ca.Ca {
			return transcendental.Gamma(c, ca.FromInt64(c, 5))
		}},
		{"zeta(2)", "transcendental", func(c *context.Context) *ca.Ca {
			return transcendental.RiemannZeta(c, ca.FromInt64(c, 2))
		}},
	}
}

func main() {
	minPrec := flag.Int("min-prec", 16, "minimum working precision in bits")
	maxPrec := flag.Int("max-prec", 1024, "maximum working precision in bits")
	points := flag.Int("points", 7, "number of geometrically spaced precision samples")
	jsonlPath := flag.String("jsonl", "calcium-bench-sweep.jsonl", "output path for the raw sweep records")
	outPath := flag.String("out", "calcium-bench.html", "output path for the rendered chart")
	flag.Parse()

	if *minPrec <= 0 || *maxPrec < *minPrec || *points < 1 {
		fmt.Fprintln(os.Stderr, "invalid precision range")
		os.Exit(1)
	}

	precs := geometricPrecisions(*minPrec, *maxPrec, *points)
	exprs := benchExprs()

	f, err := os.Create(*jsonlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", *jsonlPath, err)
		os.Exit(1)
	}
	w := bufio.NewWriter(f)

	var all []sample
	for _, e := range exprs {
		for _, p := range precs {
			s := measure(e, p)
			all = append(all, s)
			rec := sweepRecord{Stage: e.name, Sample: s}
			buf, err := json.Marshal(rec)
			if err != nil {
				fmt.Fprintf(os.Stderr, "marshal %s@%d: %v\n", e.name, p, err)
				continue
			}
			w.Write(buf)
			w.WriteByte('\n')
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "flush %s: %v\n", *jsonlPath, err)
	}
	f.Close()
	fmt.Fprintf(os.Stderr, "[info] wrote %d sweep records to %s\n", len(all), *jsonlPath)

	reportSummary(all)
	renderChart(all, *outPath)
	fmt.Printf("Wrote %s | samples: %d\n", *outPath, len(all))
}

func measure(e expr, prec int) sample {
	c := context.NewDefault()
	start := time.Now()
	x := e.build(c)
	enc := x.EnclosureAt(uint(prec))
	elapsed := time.Since(start)

	b, ok := enc.(*bigball.Ball)
	radiusLog := math.Inf(-1)
	if ok {
		radiusLog = maxRadiusLog2(b)
	}
	acc := -radiusLog
	if math.IsInf(acc, 0) {
		acc = float64(prec)
	}

	return sample{
		Expr:      e.name,
		Class:     e.class,
		PrecBits:  prec,
		TimeUS:    elapsed.Microseconds(),
		RadiusLog: radiusLog,
		AccBits:   acc,
	}
}

// maxRadiusLog2 returns log2 of the larger of the real/imaginary radii, or
// -Inf if both are exactly zero (an exact rational enclosure).
func maxRadiusLog2(b *bigball.Ball) float64 {
	re, _ := b.ReRad.Float64()
	im, _ := b.ImRad.Float64()
	r := re
	if im > r {
		r = im
	}
	if r <= 0 {
		return math.Inf(-1)
	}
	return math.Log2(r)
}

func geometricPrecisions(min, max, n int) []int {
	if n == 1 {
		return []int{min}
	}
	out := make([]int, n)
	logMin, logMax := math.Log(float64(min)), math.Log(float64(max))
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		v := int(math.Round(math.Exp(logMin + t*(logMax-logMin))))
		if i > 0 && v <= out[i-1] {
			v = out[i-1] + 1
		}
		out[i] = v
	}
	return out
}

func reportSummary(samples []sample) {
	if len(samples) == 0 {
		fmt.Fprintln(os.Stderr, "no samples to summarize")
		return
	}
	fmt.Println("Expr         | Prec  | Time(us) | Accuracy(bits)")
	for _, s := range samples {
		fmt.Printf("%-12s | %5d | %8d | %7.1f\n", s.Expr, s.PrecBits, s.TimeUS, s.AccBits)
	}
}

func renderChart(samples []sample, outPath string) {
	var alg, trans []sample
	minTime, maxTime := math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		if s.Class == "algebraic" {
			alg = append(alg, s)
		} else {
			trans = append(trans, s)
		}
		t := float64(s.TimeUS) / 1000.0
		if t < minTime {
			minTime = t
		}
		if t > maxTime {
			maxTime = t
		}
	}
	if maxTime < minTime {
		minTime, maxTime = 0, 0
	}
	if maxTime == minTime {
		maxTime = minTime + 1
	}

	sort.Slice(alg, func(i, j int) bool { return alg[i].PrecBits < alg[j].PrecBits })
	sort.Slice(trans, func(i, j int) bool { return trans[i].PrecBits < trans[j].PrecBits })

	page := components.NewPage().SetPageTitle("Calcium precision/time sweep")

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Enclosure accuracy vs. evaluation time"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
			Formatter: opts.FuncOpts(`
function (p) {
  var v = p.value || [];
  return [
    '<b>' + p.seriesName + '</b> · ' + (v[3] || ''),
    'Precision: ' + v[0] + ' bits',
    'Time: ' + v[1].toFixed(3) + ' ms',
    'Accuracy: ' + v[2].toFixed(1) + ' bits'
  ].join('<br/>');
}`),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Working precision (bits)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Evaluation time (ms)", Type: "value"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:       "continuous",
			Dimension:  "2",
			Min:        0,
			Max:        float32(maxAccBits(samples)),
			Calculable: opts.Bool(true),
			Left:       "left",
			Top:        "middle",
			InRange:    &opts.VisualMapInRange{Color: []string{"#ef4444", "#22c55e", "#0ea5e9"}},
		}),
	)

	toItems := func(xs []sample) []opts.ScatterData {
		items := make([]opts.ScatterData, 0, len(xs))
		for _, s := range xs {
			items = append(items, opts.ScatterData{
				Value: []interface{}{s.PrecBits, float64(s.TimeUS) / 1000.0, s.AccBits, s.Expr},
			})
		}
		return items
	}

	sc.AddSeries("Algebraic", toItems(alg),
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 9}))
	sc.AddSeries("Transcendental", toItems(trans),
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "diamond", SymbolSize: 9}))

	page.AddCharts(sc)

	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", outPath, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render %s: %v\n", outPath, err)
		os.Exit(1)
	}
}

func maxAccBits(samples []sample) float64 {
	m := 0.0
	for _, s := range samples {
		if s.AccBits > m {
			m = s.AccBits
		}
	}
	return m
}
