package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/quest/internal/goal"
	"github.com/papapumpkin/quest/internal/quest"
)

type memPersister struct{ text string }

func (m *memPersister) Save(_ context.Context, text string) error { m.text = text; return nil }
func (m *memPersister) Load(context.Context) (string, error)      { return m.text, nil }

func newTestBoard(t *testing.T) (BoardModel, *quest.Session, *memPersister) {
	t.Helper()
	p := &memPersister{}
	s := quest.New(quest.Options{Persister: p})
	for _, spec := range []quest.GoalSpec{
		{Kind: goal.KindSimple, Name: "Marathon", Description: "Run 42k", Points: 1000},
		{Kind: goal.KindEternal, Name: "Pray", Description: "daily", Points: 50},
	} {
		if _, err := s.CreateGoal(spec); err != nil {
			t.Fatal(err)
		}
	}
	return NewBoardModel(context.Background(), s), s, p
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m BoardModel, msg tea.Msg) (BoardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(BoardModel)
	if !ok {
		t.Fatalf("Update returned %T, want BoardModel", next)
	}
	return bm, cmd
}

func TestBoardNavigation(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestBoard(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.Cursor)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, keyRunes("j"))
	if m.Cursor != 1 {
		t.Errorf("cursor after two downs = %d, want 1 (clamped)", m.Cursor)
	}
	m, _ = update(t, m, keyRunes("k"))
	if m.Cursor != 0 {
		t.Errorf("cursor after k = %d, want 0", m.Cursor)
	}
}

func TestBoardRecord(t *testing.T) {
	t.Parallel()

	m, s, _ := newTestBoard(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if s.Status().Score != 1000 {
		t.Errorf("score = %d, want 1000", s.Status().Score)
	}
	if m.kind != msgLevel || !strings.Contains(m.Message, "level 2") {
		t.Errorf("message = %q (kind %d), want level-up", m.Message, m.kind)
	}

	// Recording the finished simple goal again is refused.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.kind != msgError || !strings.Contains(m.Message, "already") {
		t.Errorf("message = %q (kind %d), want already-complete error", m.Message, m.kind)
	}
	if s.Status().Score != 1000 {
		t.Errorf("score changed after refused event: %d", s.Status().Score)
	}
}

func TestBoardSave(t *testing.T) {
	t.Parallel()

	m, _, p := newTestBoard(t)
	m, cmd := update(t, m, keyRunes("s"))
	if cmd == nil {
		t.Fatal("expected save command")
	}
	msg := cmd()
	saved, ok := msg.(MsgSaved)
	if !ok || saved.Err != nil {
		t.Fatalf("save cmd returned %#v", msg)
	}
	if !strings.Contains(p.text, "SimpleGoal:Marathon") {
		t.Errorf("persisted text = %q", p.text)
	}
	m, _ = update(t, m, saved)
	if m.Message != "quest saved" {
		t.Errorf("message = %q", m.Message)
	}

	m, _ = update(t, m, MsgSaved{Err: errors.New("disk full")})
	if m.kind != msgError || !strings.Contains(m.Message, "disk full") {
		t.Errorf("message = %q (kind %d)", m.Message, m.kind)
	}
}

func TestBoardSaveSnapshotsBeforeLaterRecords(t *testing.T) {
	t.Parallel()

	m, s, p := newTestBoard(t)
	want, err := s.Encode()
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, keyRunes("s"))
	if cmd == nil {
		t.Fatal("expected save command")
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	for range 200 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	msg := <-done

	if saved, ok := msg.(MsgSaved); !ok || saved.Err != nil {
		t.Fatalf("save cmd returned %#v", msg)
	}
	if p.text != want {
		t.Errorf("persisted text = %q, want snapshot from key press %q", p.text, want)
	}
	if s.Status().Score == 0 {
		t.Error("records during the save were lost")
	}
}

func TestBoardSaveWithoutPersister(t *testing.T) {
	t.Parallel()

	m := NewBoardModel(context.Background(), quest.New(quest.Options{}))
	m, cmd := update(t, m, keyRunes("s"))
	saved, ok := cmd().(MsgSaved)
	if !ok || !errors.Is(saved.Err, quest.ErrNoPersister) {
		t.Fatalf("save cmd returned %#v, want ErrNoPersister", saved)
	}
	m, _ = update(t, m, saved)
	if m.kind != msgError {
		t.Errorf("kind = %d, want error", m.kind)
	}
}

func TestBoardQuit(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestBoard(t)
	_, cmd := update(t, m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
	}
}

func TestBoardView(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestBoard(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	for _, want := range []string{"Level 1", "Novice Adventurer", "Marathon", "Pray", "record", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestBoardEmpty(t *testing.T) {
	t.Parallel()

	m := NewBoardModel(context.Background(), quest.New(quest.Options{}))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.kind != msgError {
		t.Errorf("kind = %d, want error", m.kind)
	}
	if !strings.Contains(m.View(), "no goals yet") {
		t.Errorf("empty view:\n%s", m.View())
	}
}

func TestReadOnlyKeyMap(t *testing.T) {
	t.Parallel()

	km := ReadOnlyKeyMap()
	if km.Record.Enabled() || km.Save.Enabled() {
		t.Error("ReadOnlyKeyMap should disable record and save")
	}
	if !km.Quit.Enabled() {
		t.Error("ReadOnlyKeyMap should keep quit")
	}
}
