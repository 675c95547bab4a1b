package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/casesim/internal/router"
	"github.com/abhisek/casesim/internal/screen"
	"github.com/abhisek/casesim/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

const mascotArt = `  ╭───────────╮
  │  ┌─────┐  │
  │  │ ◉ ◉ │  │
  │  │  ◡  │  │
  │  ├─────┤  │
  │  │ Rx+ │  │
  │  └─────┘  │
  ╰───────────╯`

// pulse frames cycle around the mascot
var pulseFrames = []string{"✚", "✦"}

const tagline = "Elevated mood, five presentations. Can you tell them apart?"

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the case file.
type WelcomeScreen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by nextFactory.
func New(nextFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		nextFactory: nextFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips whatever is left of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	mascotStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	rendered := mascotStyle.Render(mascotArt)

	if w.elapsed >= phase1End {
		pulse := pulseFrames[w.tickCount%len(pulseFrames)]

		p1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(pulse)
		p2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(pulse)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[0] = p1 + "  " + lines[0] + "  " + p2
		}
		if len(lines) > 3 {
			lines[3] = p2 + "  " + lines[3] + "  " + p1
		}
		if len(lines) > 6 {
			lines[6] = p1 + "  " + lines[6] + "  " + p2
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render(tagline),
			"",
			theme.Hint.Render("press any key to open a case"),
		)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
