// Package casefile implements the main case screen: an action menu on the
// left and the scrollable case file on the right.
package casefile

import (
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/casesim/internal/casebank"
	"github.com/abhisek/casesim/internal/screen"
	"github.com/abhisek/casesim/internal/session"
	"github.com/abhisek/casesim/internal/ui/components"
	"github.com/abhisek/casesim/internal/ui/layout"
)

type focus int

const (
	focusMenu focus = iota
	focusDiagnosis
)

// CaseFileScreen owns the session state for the terminal user.
type CaseFileScreen struct {
	picker session.Picker
	logger *slog.Logger
	state  *session.State

	menu      components.Menu
	sectionAt map[casebank.Section]int
	choice    components.MultiChoice
	submit    components.Button
	verdict   *session.Verdict
	focus     focus
	keys      keyMap

	vp          viewport.Model
	vpWidth     int
	vpHeight    int
	dirty       bool
	diagnosisAt int // line offset of the diagnosis block in the case file
}

var _ screen.Screen = (*CaseFileScreen)(nil)
var _ screen.KeyHintProvider = (*CaseFileScreen)(nil)
var _ screen.StatusProvider = (*CaseFileScreen)(nil)

// New creates a CaseFileScreen with a freshly drawn case.
func New(picker session.Picker, logger *slog.Logger) *CaseFileScreen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	labels := make([]string, 0, len(casebank.Options()))
	for _, d := range casebank.Options() {
		labels = append(labels, d.String())
	}

	s := &CaseFileScreen{
		picker: picker,
		logger: logger,
		choice: components.NewMultiChoice("Select diagnosis", labels),
		keys:   defaultKeyMap(),
		vp:     viewport.New(viewport.WithWidth(60), viewport.WithHeight(20)),
	}
	s.submit = components.NewButton("Submit Diagnosis", false, func() tea.Cmd {
		return func() tea.Msg { return submitDiagnosisMsg{} }
	})
	s.startCase()
	return s
}

// State returns the session currently on screen.
func (s *CaseFileScreen) State() *session.State {
	return s.state
}

func (s *CaseFileScreen) startCase() {
	s.state = session.New(s.picker)
	s.verdict = nil
	s.choice.Reset()
	s.menu = buildMenu(s.menu.Selected)
	s.sectionAt = sectionIndex(s.menu)
	s.setFocus(focusMenu)
	s.dirty = true
	s.vp.SetYOffset(0)

	s.logger.Debug("case started",
		slog.String("session_id", s.state.ID),
		slog.Int("age", s.state.Case.Age),
	)
}

func buildMenu(selected int) components.Menu {
	reveal := func(sec casebank.Section) components.MenuItem {
		return components.MenuItem{
			Label: sec.ActionLabel(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return revealSectionMsg{Section: sec} }
			},
		}
	}

	var items []components.MenuItem
	for _, sec := range casebank.ClinicalSections() {
		items = append(items, reveal(sec))
	}
	items = append(items, components.MenuItem{
		Label:     "Diagnose",
		Separator: true,
		Action: func() tea.Cmd {
			return func() tea.Msg { return focusDiagnosisMsg{} }
		},
	})
	for i, sec := range casebank.TeachingSections() {
		item := reveal(sec)
		item.Separator = i == 0
		items = append(items, item)
	}
	items = append(items, components.MenuItem{
		Label:     "New Case",
		Separator: true,
		Action: func() tea.Cmd {
			return func() tea.Msg { return newCaseMsg{} }
		},
	})

	m := components.NewMenu(items)
	if selected > 0 && selected < len(items) {
		m.Selected = selected
	}
	return m
}

func sectionIndex(m components.Menu) map[casebank.Section]int {
	idx := make(map[casebank.Section]int)
	for i, item := range m.Items {
		for _, sec := range casebank.Sections() {
			if item.Label == sec.ActionLabel() {
				idx[sec] = i
			}
		}
	}
	return idx
}

func (s *CaseFileScreen) setFocus(f focus) {
	s.focus = f
	s.submit.Active = f == focusDiagnosis
	s.dirty = true
}

func (s *CaseFileScreen) Init() tea.Cmd {
	return nil
}

func (s *CaseFileScreen) Title() string {
	return "Case File"
}

func (s *CaseFileScreen) Status() string {
	return fmt.Sprintf("%d/%d revealed", s.state.RevealedCount(), len(casebank.Sections()))
}

func (s *CaseFileScreen) KeyHints() []layout.KeyHint {
	if s.focus == focusDiagnosis {
		return []layout.KeyHint{
			{Key: "↑↓/A-E", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Menu"},
			{Key: "PgUp/PgDn", Description: "Scroll"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Tab", Description: "Diagnose"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "n", Description: "New case"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *CaseFileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case revealSectionMsg:
		s.reveal(msg.Section)
		return s, nil

	case focusDiagnosisMsg:
		s.focusDiagnosis()
		return s, nil

	case submitDiagnosisMsg:
		s.submitDiagnosis()
		return s, nil

	case newCaseMsg:
		s.logger.Info("new case requested", slog.String("previous_session_id", s.state.ID))
		s.startCase()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *CaseFileScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.PageUp, s.keys.PageDown):
		var cmd tea.Cmd
		s.vp, cmd = s.vp.Update(msg)
		return s, cmd

	case key.Matches(msg, s.keys.NewCase):
		return s, func() tea.Msg { return newCaseMsg{} }

	case key.Matches(msg, s.keys.ToggleFocus):
		if s.focus == focusMenu {
			s.focusDiagnosis()
		} else {
			s.setFocus(focusMenu)
		}
		return s, nil

	case key.Matches(msg, s.keys.Back):
		if s.focus == focusDiagnosis {
			s.setFocus(focusMenu)
		}
		return s, nil
	}

	var cmd tea.Cmd
	if s.focus == focusMenu {
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	if key.Matches(msg, s.keys.Submit) {
		s.submit, cmd = s.submit.Update(msg)
		return s, cmd
	}

	before := s.choice.Selected
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Selected != before {
		s.verdict = nil
		s.dirty = true
	}
	return s, cmd
}

func (s *CaseFileScreen) reveal(sec casebank.Section) {
	s.state.Reveal(sec)
	s.menu.SetChecked(s.sectionAt[sec], true)
	s.verdict = nil
	s.dirty = true

	s.logger.Debug("section revealed",
		slog.String("session_id", s.state.ID),
		slog.String("section", string(sec)),
	)
}

func (s *CaseFileScreen) focusDiagnosis() {
	s.setFocus(focusDiagnosis)
	s.refresh()
	s.vp.SetYOffset(s.diagnosisAt)
}

func (s *CaseFileScreen) selectedDiagnosis() casebank.Diagnosis {
	return casebank.Options()[s.choice.Selected]
}

func (s *CaseFileScreen) submitDiagnosis() {
	v := s.state.Check(s.selectedDiagnosis())
	s.verdict = &v
	s.dirty = true

	s.logger.Info("diagnosis submitted",
		slog.String("session_id", s.state.ID),
		slog.String("choice", s.selectedDiagnosis().Slug()),
		slog.Bool("correct", v.Correct),
	)
}
