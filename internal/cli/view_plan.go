package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rao305/boilerai-sub000/internal/cli/formatter"
	"github.com/rao305/boilerai-sub000/internal/domain"
)

// planViewModel is an interactive term-by-term plan browser. Up/down
// move the term cursor; the selected term shows its courses expanded.
// The body scrolls in a viewport so long plans stay navigable.
type planViewModel struct {
	plan     *domain.Plan
	selected int
	vp       viewport.Model
	ready    bool
}

func newPlanViewModel(plan *domain.Plan) planViewModel {
	return planViewModel{plan: plan}
}

func (m planViewModel) Init() tea.Cmd {
	return nil
}

func (m planViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 3
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight
		}
		m.vp.SetContent(m.body())
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			return m.moveSelection(-1), nil
		case tea.KeyDown:
			return m.moveSelection(1), nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		case tea.KeyRunes:
			switch string(msg.Runes) {
			case "q":
				return m, tea.Quit
			case "k":
				return m.moveSelection(-1), nil
			case "j":
				return m.moveSelection(1), nil
			}
			return m, nil
		}
	}
	return m, nil
}

func (m planViewModel) moveSelection(delta int) planViewModel {
	next := m.selected + delta
	if next < 0 || next >= len(m.plan.Terms) {
		return m
	}
	m.selected = next
	if m.ready {
		m.vp.SetContent(m.body())
	}
	return m
}

func (m planViewModel) View() string {
	header := formatter.Header("Plan: "+m.plan.StudentID) + "\n" +
		formatter.Dim(fmt.Sprintf("%d terms · %d credits · ↑/↓ select, q to quit",
			len(m.plan.Terms), m.plan.TotalCredits())) + "\n"

	if !m.ready {
		return header + m.body()
	}
	return header + m.vp.View()
}

func (m planViewModel) body() string {
	var b strings.Builder

	for i, term := range m.plan.Terms {
		cursor := "  "
		label := term.Term.Label()
		if i == m.selected {
			cursor = formatter.StyleHeader.Render("▸ ")
			label = formatter.Bold(label)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, label,
			formatter.Dim(fmt.Sprintf("%d credits, difficulty %d", term.TotalCredits, term.TotalDifficulty))))

		if i == m.selected {
			for _, c := range term.Courses {
				b.WriteString(fmt.Sprintf("    %s  %s  %s\n",
					formatter.Bold(c.CourseID),
					formatter.CreditsLabel(c.Credits),
					formatter.Dim(fmt.Sprintf("score %.1f", c.Score)),
				))
			}
		}
	}

	if m.plan.Incomplete {
		b.WriteString("\n" + formatter.StyleYellow.Render(fmt.Sprintf(
			"%d course(s) unplaced: %s", len(m.plan.Unplaced), strings.Join(m.plan.Unplaced, ", "))) + "\n")
	}

	return b.String()
}
