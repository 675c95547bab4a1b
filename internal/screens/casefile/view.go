package casefile

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/casesim/internal/casebank"
	"github.com/abhisek/casesim/internal/ui/layout"
	"github.com/abhisek/casesim/internal/ui/theme"
)

// panelChrome is the horizontal and vertical space taken by a panel's
// border plus padding.
const (
	panelChromeX = 4
	panelChromeY = 2
)

func (s *CaseFileScreen) View(width, height int) string {
	s.resize(width-layout.MenuWidth-1-panelChromeX, height-panelChromeY)
	s.refresh()

	menuStyle, fileStyle := theme.PanelFocused, theme.Panel
	menuView := s.menu.View()
	if s.focus == focusDiagnosis {
		menuStyle, fileStyle = theme.Panel, theme.PanelFocused
		menuView = s.menu.ViewBlurred()
	}

	menuBody := lipgloss.NewStyle().
		Width(layout.MenuWidth - panelChromeX).
		Height(s.vpHeight).
		Render(theme.SectionHeading.Render("Actions") + "\n\n" + menuView)

	left := menuStyle.Render(menuBody)
	right := fileStyle.Render(s.vp.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (s *CaseFileScreen) resize(w, h int) {
	if w < 20 {
		w = 20
	}
	if h < 1 {
		h = 1
	}
	if w != s.vpWidth || h != s.vpHeight {
		s.vpWidth, s.vpHeight = w, h
		s.vp.SetWidth(w)
		s.vp.SetHeight(h)
		s.dirty = true
	}
}

// refresh re-renders the case file into the viewport when something changed.
func (s *CaseFileScreen) refresh() {
	if !s.dirty {
		return
	}
	content, diagAt := s.renderCaseFile(max(s.vpWidth, 20))
	s.vp.SetContent(content)
	s.diagnosisAt = diagAt
	s.dirty = false
}

// renderCaseFile renders every section in display order with the diagnosis
// block ahead of the teaching sections. It returns the content and the line
// at which the diagnosis block starts.
func (s *CaseFileScreen) renderCaseFile(width int) (string, int) {
	var b strings.Builder
	diagAt := 0

	b.WriteString(theme.Hint.Render("Psychiatry presentation-based cases | MBBS / OSCE level"))
	b.WriteString("\n\n")

	for _, sec := range casebank.Sections() {
		if sec == casebank.SectionExplanation {
			diagAt = strings.Count(b.String(), "\n")
			b.WriteString(s.renderDiagnosis(width))
			b.WriteString("\n")
		}
		b.WriteString(s.renderSection(sec, width))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n"), diagAt
}

func (s *CaseFileScreen) renderSection(sec casebank.Section, width int) string {
	var b strings.Builder
	b.WriteString(theme.SectionHeading.Render(sec.Title()))
	b.WriteString("\n")

	wrap := lipgloss.NewStyle().Width(width)

	if !s.state.IsRevealed(sec) {
		b.WriteString(wrap.Inherit(theme.Hint).Render(fmt.Sprintf("Hidden. Choose %q to reveal.", sec.ActionLabel())))
		b.WriteString("\n")
		return b.String()
	}

	switch sec {
	case casebank.SectionExplanation:
		b.WriteString(theme.InfoCallout.Width(width).Render(s.state.Case.Explanation))
	case casebank.SectionManagement:
		items := s.state.Case.ManagementItems()
		for i, item := range items {
			items[i] = "• " + item
		}
		b.WriteString(theme.SuccessCallout.Width(width).Render(strings.Join(items, "\n")))
	default:
		for _, f := range s.state.Case.Fields(sec) {
			line := f.Value
			if f.Label != "" {
				line = theme.FieldLabel.Render(f.Label+":") + " " + f.Value
			}
			b.WriteString(wrap.Render(line))
			b.WriteString("\n")
		}
		return b.String()
	}
	b.WriteString("\n")
	return b.String()
}

func (s *CaseFileScreen) renderDiagnosis(width int) string {
	var b strings.Builder
	b.WriteString(theme.SectionHeading.Render("Most Likely Diagnosis"))
	b.WriteString("\n")
	b.WriteString(s.choice.View(s.focus == focusDiagnosis))
	b.WriteString("\n")
	b.WriteString(s.submit.View())
	b.WriteString("\n")

	if s.verdict != nil {
		b.WriteString("\n")
		if s.verdict.Correct {
			b.WriteString(theme.Correct.Render("✓ " + s.verdict.Message()))
		} else {
			b.WriteString(lipgloss.NewStyle().Width(width).Inherit(theme.Incorrect).Render("✗ " + s.verdict.Message()))
		}
		b.WriteString("\n")
	}
	return b.String()
}
