// Package render formats a formula.Result for terminals: a summary of
// centers and orbit levels, and a per-planet table, in English or Russian.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/dispositor/formula"
	"github.com/katalvlaran/dispositor/zodiac"
)

// dash marks an absent value: no sign, no ruler or no orbit.
const dash = "—"

var titleStyle = lipgloss.NewStyle().Bold(true)

// Table renders one row per planet: name, sign, points, orbit and ruler.
func Table(r *formula.Result, tag language.Tag) string {
	c := catalogFor(tag)
	rows := make([][]string, 0, zodiac.NumPlanets)
	for _, row := range r.Rows() {
		sign, ruler := dash, dash
		if row.HasSign {
			sign = c.sign(row.Sign)
		}
		if row.HasRuler {
			ruler = c.planet(row.Ruler)
		}
		rows = append(rows, []string{
			c.planet(row.Planet),
			sign,
			fmt.Sprint(row.Points),
			row.Orbit.String(),
			ruler,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(c.headers[:]...).
		Rows(rows...)

	return t.String()
}

// Summary lists the centers by kind, then the planets on each orbit.
func Summary(r *formula.Result, tag language.Tag) string {
	c := catalogFor(tag)
	p := message.NewPrinter(tag)
	signs := r.PlanetSigns()
	pts := r.Points()
	cs := r.Centers()

	var b strings.Builder
	b.WriteString(titleStyle.Render(c.centers))
	b.WriteString("\n")

	if len(cs.All) == 0 {
		b.WriteString("  " + c.noCenters + "\n")
	}
	if len(cs.Domiciles) > 0 {
		b.WriteString(c.domiciles + ":\n")
		for _, pl := range cs.Domiciles {
			fmt.Fprintf(&b, "  %s — %s (%s)\n", c.planet(pl), c.sign(signs[pl]), p.Sprintf(c.pointsInfo, pts.Of(pl)))
		}
	}
	if len(cs.MutualReceptions) > 0 {
		b.WriteString(c.receptions + ":\n")
		for _, pair := range cs.MutualReceptions {
			fmt.Fprintf(&b, "  %s ↔ %s\n", c.planet(pair[0]), c.planet(pair[1]))
		}
	}
	if len(cs.Cycles) > 0 {
		b.WriteString(c.cycles + ":\n")
		for _, cyc := range cs.Cycles {
			names := make([]string, len(cyc))
			for i, pl := range cyc {
				names[i] = c.planet(pl)
			}
			fmt.Fprintf(&b, "  %s → …\n", strings.Join(names, " → "))
		}
	}

	orbits := r.Orbits()
	for _, lvl := range orbits.Levels() {
		b.WriteString(p.Sprintf(c.orbitLevel, lvl.Depth) + ":\n")
		for _, pl := range lvl.Planets {
			fmt.Fprintf(&b, "  %s\n", planetLine(c, p, pl, signs, pts.Of(pl)))
		}
	}
	if unreached := orbits.Unreached(); len(unreached) > 0 {
		b.WriteString(c.unreached + ":\n")
		for _, pl := range unreached {
			fmt.Fprintf(&b, "  %s\n", planetLine(c, p, pl, signs, pts.Of(pl)))
		}
	}

	b.WriteString(p.Sprintf(c.totalPoints, pts.Total()))
	b.WriteString("\n")

	return b.String()
}

// planetLine renders "Planet — Sign (points: n)".
func planetLine(c *catalog, p *message.Printer, pl zodiac.Planet, signs zodiac.PlanetSigns, score int) string {
	sign := dash
	if s, ok := signs.Sign(pl); ok {
		sign = c.sign(s)
	}

	return fmt.Sprintf("%s — %s (%s)", c.planet(pl), sign, p.Sprintf(c.pointsInfo, score))
}
