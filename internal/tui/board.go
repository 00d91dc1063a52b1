package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/quest/internal/goal"
	"github.com/papapumpkin/quest/internal/quest"
	"github.com/papapumpkin/quest/internal/score"
)

// Quest is the part of a quest session the board drives.
type Quest interface {
	Goals() []goal.Goal
	Status() score.Progress
	RecordEvent(ctx context.Context, index int) (quest.Outcome, error)
	Encode() (string, error)
	SaveText(ctx context.Context, text string) error
}

// MsgSaved reports the result of a save started from the board.
type MsgSaved struct {
	Err error
}

type msgKind int

const (
	msgInfo msgKind = iota
	msgLevel
	msgError
)

// BoardModel is the bubbletea model of the goal board.
type BoardModel struct {
	Quest  Quest
	Keys   KeyMap
	Cursor int
	Width  int
	Height int

	// Message is the one-line feedback under the goal list.
	Message string
	kind    msgKind

	ctx context.Context
}

// NewBoardModel returns a board over q. Blocking quest calls use ctx.
func NewBoardModel(ctx context.Context, q Quest) BoardModel {
	return BoardModel{Quest: q, Keys: DefaultKeyMap(), ctx: ctx}
}

func (m BoardModel) Init() tea.Cmd { return nil }

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		return m, nil

	case MsgSaved:
		if msg.Err != nil {
			m.setMessage(msgError, "save failed: "+msg.Err.Error())
		} else {
			m.setMessage(msgInfo, "quest saved")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.Quest.Goals())
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < n-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.Keys.Record):
		if n == 0 {
			m.setMessage(msgError, "no goals to record")
			return m, nil
		}
		m.record()

	case key.Matches(msg, m.Keys.Save):
		// Encode here; the command runs on another goroutine while Update
		// keeps recording.
		text, err := m.Quest.Encode()
		if err != nil {
			m.setMessage(msgError, "save failed: "+err.Error())
			return m, nil
		}
		q, ctx := m.Quest, m.ctx
		m.setMessage(msgInfo, "saving...")
		return m, func() tea.Msg { return MsgSaved{Err: q.SaveText(ctx, text)} }
	}
	return m, nil
}

func (m *BoardModel) record() {
	out, err := m.Quest.RecordEvent(m.ctx, m.Cursor)
	if err != nil {
		m.setMessage(msgError, err.Error())
		return
	}
	text := fmt.Sprintf("+%s points for %s", humanize.Comma(int64(out.Result.Points)), out.Goal.Name())
	if out.Result.LeveledUp {
		m.setMessage(msgLevel, fmt.Sprintf("%s ★ level %d, %s", text, out.Result.Level, out.Result.Title))
		return
	}
	if out.Encouragement != "" {
		text += "  " + out.Encouragement
	}
	m.setMessage(msgInfo, text)
}

func (m *BoardModel) setMessage(kind msgKind, text string) {
	m.kind, m.Message = kind, text
}

func (m BoardModel) View() string {
	var b strings.Builder
	b.WriteString(m.statusBar())
	b.WriteString("\n\n")

	goals := m.Quest.Goals()
	if len(goals) == 0 {
		b.WriteString(styleMsgDim.Render("  no goals yet, create some with `quest create`"))
		b.WriteString("\n")
	}
	for i, g := range goals {
		b.WriteString(m.row(i, g))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(m.messageStyle().Render(m.Message))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Footer{Width: m.Width, Bindings: FooterBindings(m.Keys)}.View())
	return b.String()
}

func (m BoardModel) statusBar() string {
	p := m.Quest.Status()
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		styleStatusLabel.Render(fmt.Sprintf("Level %d ", p.Level)),
		styleStatusValue.Render(p.Title+"  "),
		styleStatusScore.Render(humanize.Comma(int64(p.Score))+" pts"),
		styleStatusValue.Render(fmt.Sprintf("  %d/%d to next", p.WithinLevel, score.PointsPerLevel)),
	)
	style := styleStatusBar
	if m.Width > 0 {
		style = style.Width(m.Width)
	}
	return style.Render(line)
}

func (m BoardModel) row(i int, g goal.Goal) string {
	text := fmt.Sprintf("%2d. %s", i+1, g.Details())
	style := styleRowNormal
	if g.IsComplete() {
		style = styleRowDone
	}
	if i == m.Cursor {
		return styleSelectionIndicator.Render(selectionIndicator) + " " + styleRowSelected.Render(text)
	}
	return "  " + style.Render(text)
}

func (m BoardModel) messageStyle() lipgloss.Style {
	switch m.kind {
	case msgLevel:
		return styleMsgLevel
	case msgError:
		return styleMsgError
	}
	return styleMsgInfo
}
