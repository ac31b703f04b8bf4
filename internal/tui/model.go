package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowsyncsolutions/pixelpress/internal/engine"
	"github.com/flowsyncsolutions/pixelpress/internal/ui"
)

const featuredCount = 4

type tickMsg time.Time

type externalChangeMsg struct{}

// playSession is the one long-lived operation in the system: the
// budget ticker runs while a game is open, and stopping it flushes the
// final partial tick.
type playSession struct {
	slug      string
	title     string
	startedAt time.Time
	stop      func()
}

type boardModel struct {
	svc *engine.Service

	width  int
	height int

	trial    engine.TrialStatus
	budget   engine.TimeState
	stars    int
	streak   int
	unlocks  engine.UnlockedFeatures
	notice   *engine.UnlockNotice
	featured []engine.Game

	selected int
	playing  *playSession
	lastLog  string
}

func newBoardModel(svc *engine.Service) boardModel {
	m := boardModel{svc: svc, lastLog: "Loaded."}
	m.refresh()
	return m
}

// refresh re-derives everything from the store. Nothing from the
// previous frame is trusted; another process may have written since.
func (m *boardModel) refresh() {
	m.trial = m.svc.TrialStatus()
	m.budget = m.svc.TimeSnapshot()
	m.stars = m.svc.StarsTotal()
	m.streak = m.svc.Streak()
	m.unlocks = m.svc.UnlockSnapshot()
	m.notice = m.svc.PendingUnlockNotice()
	m.featured = m.svc.FeaturedToday(featuredCount)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) Init() tea.Cmd {
	return tickCmd()
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.refresh()
		if m.playing != nil && m.budget.Enabled && m.budget.RemainingSeconds == 0 {
			m.endSession("Time's up for today.")
		}
		return m, tickCmd()

	case externalChangeMsg:
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.playing != nil {
				m.endSession("Session ended.")
			}
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.featured)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			m.launchSelected()
			return m, nil
		case "x", "esc":
			if m.playing != nil {
				m.endSession("Session ended.")
			}
			return m, nil
		case "n":
			if m.notice != nil {
				m.svc.MarkUnlockNoticeSeen(m.notice.Threshold)
				m.lastLog = "Unlock notice dismissed."
				m.refresh()
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *boardModel) launchSelected() {
	if m.playing != nil {
		m.lastLog = "Finish the current session first (x)."
		return
	}
	if m.selected < 0 || m.selected >= len(m.featured) {
		return
	}
	game := m.featured[m.selected]

	if !m.svc.TrialAllowed() {
		m.lastLog = "Trial expired. Ask a parent to unlock."
		return
	}
	m.refresh()
	if m.budget.Enabled && m.budget.RemainingSeconds == 0 {
		m.lastLog = "No playtime left today."
		return
	}

	m.svc.GameLaunch(game.Slug)
	m.svc.MarkPlayedToday()
	stop := m.svc.StartTicker()
	m.playing = &playSession{
		slug:      game.Slug,
		title:     game.Title,
		startedAt: time.Now(),
		stop:      stop,
	}
	m.lastLog = fmt.Sprintf("Playing %s…", game.Title)
	m.refresh()
}

func (m *boardModel) endSession(logLine string) {
	session := m.playing
	if session == nil {
		return
	}
	m.playing = nil

	session.stop()
	seconds := int(time.Since(session.startedAt).Seconds())
	m.svc.AddPlaySeconds(session.slug, seconds)
	m.svc.GameComplete(session.slug)
	m.svc.AddStars(1)
	m.lastLog = logLine
	m.refresh()
}

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconShelf, "PixelPress") + "\n\n")

	b.WriteString(ui.PanelTitle.Render("Trial") + "  " + m.trialLine() + "\n")
	b.WriteString(ui.PanelTitle.Render("Time ") + "  " + m.budgetLine() + "\n")
	b.WriteString(ui.PanelTitle.Render("Stars") + "  " + m.progressLine() + "\n\n")

	if m.notice != nil {
		b.WriteString(ui.BannerUnlock.Render(fmt.Sprintf("%s %s — %s (press n to dismiss)", ui.IconGift, m.notice.Title, m.notice.Description)) + "\n\n")
	}

	b.WriteString(ui.H2.Render("🎯 Today's picks") + "\n")
	for i, g := range m.featured {
		line := fmt.Sprintf("  %s %s", g.Title, ui.Muted.Render("("+string(g.Category)+")"))
		if m.playing != nil && m.playing.slug == g.Slug {
			line += " " + ui.Good.Render("▶ playing")
		}
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(ui.Muted.Render("↑/↓ select · enter play · x end session · n dismiss · q quit") + "\n")
	return b.String()
}

func (m boardModel) trialLine() string {
	switch {
	case m.svc.TrialOverrideUnlocked():
		return ui.Good.Render("unlocked by parent")
	case !m.trial.HasStarted:
		return ui.Muted.Render(fmt.Sprintf("not started (%d days when it does)", m.trial.DaysRemaining))
	case m.trial.IsExpired:
		return ui.Bad.Render(ui.IconLock + " expired")
	default:
		return fmt.Sprintf("%s left", ui.Good.Render(fmt.Sprintf("%d days", m.trial.DaysRemaining)))
	}
}

func (m boardModel) budgetLine() string {
	if !m.budget.Enabled {
		return ui.Muted.Render("limit off")
	}
	frac := 0.0
	if m.budget.LimitSeconds > 0 {
		frac = float64(m.budget.RemainingSeconds) / float64(m.budget.LimitSeconds)
	}
	left := ui.Clock(m.budget.RemainingSeconds)
	if m.budget.RemainingSeconds == 0 {
		return ui.Bar(0, 20) + "  " + ui.Bad.Render("time's up")
	}
	return ui.Bar(frac, 20) + "  " + ui.LabelValue("left", left)
}

func (m boardModel) progressLine() string {
	parts := []string{
		fmt.Sprintf("%s %d", ui.IconStar, m.stars),
		fmt.Sprintf("%s %d-day streak", ui.IconFlame, m.streak),
		fmt.Sprintf("skin lvl %d", m.unlocks.SkinLevel),
	}
	if m.unlocks.HardModeUnlocked {
		parts = append(parts, "hard mode")
	}
	if m.unlocks.ChallengeBadgeUnlocked {
		parts = append(parts, ui.IconTrophy+" challenger")
	}
	return strings.Join(parts, ui.Muted.Render("  ·  "))
}
