package sim

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
)

var lang = language.English

// Report aggregates a soak run.
type Report struct {
	Sessions []SessionResult
	Ticks    int // per session
	Elapsed  time.Duration

	Games      int
	BestScore  int
	ScoreMean  float64
	ScoreStd   float64
	PiecesMean float64
	LinesTotal int
}

func newReport(results []SessionResult, ticks int, elapsed time.Duration) *Report {
	r := &Report{Sessions: results, Ticks: ticks, Elapsed: elapsed}

	var scores, pieces []float64
	for _, s := range results {
		r.Games += s.Games
		r.BestScore = max(r.BestScore, s.Best)
		r.LinesTotal += s.Lines
		pieces = append(pieces, float64(s.Pieces))
		for _, sc := range s.Scores {
			scores = append(scores, float64(sc))
		}
	}
	if len(scores) > 0 {
		r.ScoreMean, r.ScoreStd = stat.MeanStdDev(scores, nil)
	}
	if len(pieces) > 0 {
		r.PiecesMean = stat.Mean(pieces, nil)
	}
	return r
}

// TicksPerSecond is the simulated throughput across all workers.
func (r *Report) TicksPerSecond() int {
	sec := r.Elapsed.Seconds()
	if sec <= 0 {
		sec = 1e-9
	}
	return int(float64(r.Ticks*len(r.Sessions)) / sec)
}

// String renders the report as a bordered two-column table.
func (r *Report) String() string {
	p := message.NewPrinter(lang)
	rows := [][2]string{
		{"Sessions", p.Sprintf("%d", len(r.Sessions))},
		{"Ticks / session", p.Sprintf("%d", r.Ticks)},
		{"Games played", p.Sprintf("%d", r.Games)},
		{"Best score", p.Sprintf("%d", r.BestScore)},
		{"Score mean", p.Sprintf("%.2f", r.ScoreMean)},
		{"Score std", p.Sprintf("%.2f", r.ScoreStd)},
		{"Pieces mean", p.Sprintf("%.1f", r.PiecesMean)},
		{"Lines cleared", p.Sprintf("%d", r.LinesTotal)},
		{"Elapsed", r.Elapsed.Round(time.Millisecond).String()},
		{"Ticks / sec", p.Sprintf("%d", r.TicksPerSecond())},
	}
	return fmtTable("Soak report", rows)
}

func fmtTable(title string, rows [][2]string) string {
	keyW, valW := 0, 0
	for _, row := range rows {
		keyW = max(keyW, runewidth.StringWidth(row[0]))
		valW = max(valW, runewidth.StringWidth(row[1]))
	}
	keyW += 2
	valW += 2

	inner := keyW + 1 + valW
	titleW := runewidth.StringWidth(title)
	if titleW > inner {
		valW += titleW - inner
		inner = titleW
	}
	left := (inner - titleW) / 2

	var b strings.Builder
	top := "+" + strings.Repeat("-", inner) + "+\n"
	divider := "+" + strings.Repeat("-", keyW) + "+" + strings.Repeat("-", valW) + "+\n"

	b.WriteString(top)
	b.WriteString("|" + blank(left) + title + blank(inner-titleW-left) + "|\n")
	b.WriteString(divider)
	for _, row := range rows {
		b.WriteString("| " + row[0] + blank(keyW-2-runewidth.StringWidth(row[0])) +
			" | " + row[1] + blank(valW-2-runewidth.StringWidth(row[1])) + " |\n")
	}
	b.WriteString(divider)
	return b.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
