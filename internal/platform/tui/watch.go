package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-gym/internal/core"
	"github.com/vovakirdan/dino-gym/internal/env"
	"github.com/vovakirdan/dino-gym/internal/games/dino"
)

// WatchConfig describes an agent demo.
type WatchConfig struct {
	Env      *env.Env
	Policy   env.Policy
	Episodes int   // 0 = until the user quits
	Seed     int64 // episode i uses Seed+i
	Runtime  core.RuntimeConfig
}

// WatchModel plays episodes with a policy and renders them as they run.
type WatchModel struct {
	cfg    WatchConfig
	screen *core.Screen
	keys   *KeyMapper

	obs        env.Observation
	episode    int
	current    env.EpisodeResult
	lastPassed int
	results    []env.EpisodeResult
	linger     int // ticks to keep the final frame of an episode on screen
	frame      int

	paused     bool
	finished   bool
	quitting   bool
	backToMenu bool
	standalone bool
}

// NewWatchModel creates a watch model and starts the first episode.
func NewWatchModel(cfg WatchConfig) WatchModel {
	if cfg.Runtime.TickRate <= 0 {
		cfg.Runtime.TickRate = 60
	}
	m := WatchModel{
		cfg:    cfg,
		screen: core.NewScreen(cfg.Runtime.ScreenW, cfg.Runtime.ScreenH),
		keys:   NewKeyMapper(),
	}
	m.startEpisode()
	return m
}

func (m *WatchModel) startEpisode() {
	seed := m.cfg.Seed + int64(m.episode)
	m.obs, _ = m.cfg.Env.Reset(seed)
	m.cfg.Policy.Reset(seed)
	m.current = env.EpisodeResult{Seed: seed}
	m.lastPassed = 0
	m.frame = 0
}

// Init starts the tick loop.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.cfg.Runtime.TickRate)
}

// Update handles messages.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, isQuit := m.keys.MapKey(msg)
		switch {
		case isQuit:
			m.quitting = true
			return m, tea.Quit
		case action == core.ActionPause:
			m.paused = !m.paused
		case action == core.ActionBack:
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if m.backToMenu {
			return m, nil
		}
		m.tick()
		if m.finished && m.standalone && m.linger == 0 {
			return m, tea.Quit
		}
		return m, tickCmd(m.cfg.Runtime.TickRate)
	}
	return m, nil
}

// tick advances the demo by one simulation step.
func (m *WatchModel) tick() {
	if m.paused || m.finished && m.linger == 0 {
		return
	}

	if m.linger > 0 {
		m.linger--
		if m.linger == 0 && !m.finished {
			m.startEpisode()
		}
		return
	}

	res, err := m.cfg.Env.Step(m.cfg.Policy.Act(m.obs))
	if err != nil {
		// Policies only produce valid actions
		m.finished = true
		return
	}
	m.frame++
	m.obs = res.Obs
	m.current.Steps = res.Info.StepCount
	m.current.Score = res.Info.Score
	m.current.TotalReward += res.Reward
	m.current.ObstaclesPassed += max(0, res.Info.ObstaclesPassed-m.lastPassed)
	m.lastPassed = res.Info.ObstaclesPassed

	if res.Done() {
		m.current.Terminated = res.Terminated
		m.current.Truncated = res.Truncated
		m.results = append(m.results, m.current)
		m.episode++
		m.linger = m.cfg.Runtime.TickRate
		if m.cfg.Episodes > 0 && m.episode >= m.cfg.Episodes {
			m.finished = true
		}
	}
}

// View renders the running episode with an agent status line.
func (m WatchModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	dino.Render(m.screen, m.cfg.Env.Engine(), m.frame)

	shown, total := m.episode+1, "∞"
	if m.cfg.Episodes > 0 {
		shown = min(shown, m.cfg.Episodes)
		total = fmt.Sprint(m.cfg.Episodes)
	}
	status := fmt.Sprintf(" %s | %s | episode %d/%s | reward %8.1f ",
		m.cfg.Env.Config().ID, m.cfg.Policy.Name(), shown, total, m.current.TotalReward)
	m.screen.DrawTextColored(1, m.screen.Height()-1, status, core.ColorYellow)

	switch {
	case m.paused:
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ")
	case m.finished:
		m.screen.DrawTextCentered(m.screen.Height()/2, " DONE - press q ")
	}
	return RenderScreen(m.screen)
}

// Results returns the summaries of finished episodes.
func (m WatchModel) Results() []env.EpisodeResult {
	return m.results
}

// IsQuitting returns true if user requested to quit entirely.
func (m WatchModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m WatchModel) BackToMenu() bool {
	return m.backToMenu
}

// RunWatch shows cfg.Policy playing in the current terminal and returns the
// finished episodes.
func RunWatch(cfg WatchConfig) ([]env.EpisodeResult, error) {
	model := NewWatchModel(cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if wm, ok := final.(WatchModel); ok {
		return wm.Results(), nil
	}
	return nil, nil
}
