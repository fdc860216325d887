package game

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/talgya/arena-sim/internal/player"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	deadStyle   = lipgloss.NewStyle().Faint(true)
)

// statusTable renders the end-of-day roster overview.
func (g *Game) statusTable() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if row < len(g.players) && !g.players[row].IsAlive() {
				return deadStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("NAME", "HEALTH", "ENERGY", "SLEEP", "HUNGER", "THIRST", "WEAPON", "AREA", "STATUS", "BAG")
	for _, p := range g.players {
		t.Row(statusRow(p)...)
	}
	return t.Render()
}

func statusRow(p *player.Player) []string {
	if !p.IsAlive() {
		return []string{p.Name(), "dead", "", "", "", "", "", "", "", ""}
	}
	weapon := fmt.Sprintf("%s (%.1f)", p.Weapon().Name(), p.Weapon().DamageMult)
	var inv []string
	for _, item := range p.Equipment() {
		inv = append(inv, item.Name())
	}
	return []string{
		p.Name(),
		fmt.Sprintf("%.2f", p.Health()),
		fmt.Sprintf("%.2f", p.Energy()),
		fmt.Sprintf("%.2f", p.Sleepiness()),
		fmt.Sprintf("%.2f", p.Hunger()),
		fmt.Sprintf("%.2f", p.Thirst()),
		weapon,
		p.CurrentArea().Name(),
		strings.Join(p.Statuses(), ", "),
		strings.Join(inv, ", "),
	}
}
