package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaedonvisva/folio/internal/models"
	"github.com/jaedonvisva/folio/internal/tasks"
)

// Model represents the dashboard state: the latest snapshot of each widget
// plus the polling machinery.
type Model struct {
	ctx      context.Context
	agg      *tasks.Aggregator
	username string
	interval time.Duration

	width  int
	height int
	spin   spinner.Model
	help   help.Model
	keys   keyMap

	music    *models.NowPlaying
	activity *models.CodingActivity
	pins     []models.PinnedRepo
	pinsErr  error
	loaded   bool
}

type statusMsg struct {
	music    *models.NowPlaying
	activity *models.CodingActivity
}

type pinsMsg struct {
	repos []models.PinnedRepo
	err   error
}

type tickMsg time.Time

// NewModel creates a dashboard model polling the aggregation engine on the
// given interval.
func NewModel(ctx context.Context, agg *tasks.Aggregator, username string, interval time.Duration) *Model {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.warn

	return &Model{
		ctx:      ctx,
		agg:      agg,
		username: username,
		interval: interval,
		spin:     sp,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init kicks off the spinner, the first status fetch, and the one-time pin
// listing fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchStatus(), m.fetchPins())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, tea.Batch(m.fetchStatus(), m.fetchPins())
		}
		return m, nil

	case statusMsg:
		m.music = msg.music
		m.activity = msg.activity
		m.loaded = true
		return m, m.scheduleTick()

	case pinsMsg:
		m.pins = msg.repos
		m.pinsErr = msg.err
		return m, nil

	case tickMsg:
		return m, m.fetchStatus()
	}

	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

// View renders the three widget sections with contextual help.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("folio — live status"))
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString(fmt.Sprintf("%s fetching status...\n", m.spin.View()))
		return b.String()
	}

	b.WriteString(m.renderMusic())
	b.WriteString("\n")
	b.WriteString(m.renderActivity())
	b.WriteString("\n")
	b.WriteString(m.renderPins())
	b.WriteString("\n")
	b.WriteString(styles.help.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return b.String()
}

func (m *Model) renderMusic() string {
	if m.music == nil || (m.music.Title == "" && !m.music.IsPlaying) {
		return fmt.Sprintf("♫  %s\n", styles.help.Render("pretty quiet"))
	}

	state := "last played"
	if m.music.IsPlaying {
		state = styles.ok.Render("now playing")
	}

	return fmt.Sprintf("♫  %s: %s — %s\n", state, m.music.Title, m.music.Artist)
}

func (m *Model) renderActivity() string {
	if m.activity == nil {
		return fmt.Sprintf("⌨  %s\n", styles.help.Render("offline"))
	}

	state := styles.help.Render("offline")
	detail := ""
	if m.activity.IsCoding {
		state = styles.ok.Render("in the zone")
		if m.activity.CurrentProject != "" {
			detail = fmt.Sprintf(" (%s · %s)", m.activity.CurrentProject, m.activity.CurrentLanguage)
		}
	}

	return fmt.Sprintf("⌨  %s%s\n   today %s · week %s\n", state, detail, m.activity.TodayTotal, m.activity.WeekTotal)
}

func (m *Model) renderPins() string {
	if m.pinsErr != nil {
		return styles.err.Render(fmt.Sprintf("⚑  pins unavailable: %v", m.pinsErr)) + "\n"
	}
	if len(m.pins) == 0 {
		return fmt.Sprintf("⚑  %s\n", styles.help.Render("no pinned repositories"))
	}

	var b strings.Builder
	b.WriteString("⚑  pinned\n")
	for _, repo := range m.pins {
		b.WriteString(fmt.Sprintf("   %s — %s\n", styles.warn.Render(repo.Name), repo.Description))
	}
	return b.String()
}

func (m *Model) fetchStatus() tea.Cmd {
	return func() tea.Msg {
		return statusMsg{
			music:    m.agg.NowPlaying(m.ctx),
			activity: m.fetchActivity(),
		}
	}
}

func (m *Model) fetchActivity() *models.CodingActivity {
	activity, err := m.agg.Activity(m.ctx)
	if err != nil {
		return models.ZeroActivity()
	}
	return activity
}

func (m *Model) fetchPins() tea.Cmd {
	return func() tea.Msg {
		repos, err := m.agg.PinnedRepos(m.ctx, m.username)
		return pinsMsg{repos: repos, err: err}
	}
}

func (m *Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
