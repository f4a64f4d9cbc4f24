package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tada/internal/core/config"
	"github.com/colonyops/tada/internal/core/item"
	"github.com/colonyops/tada/internal/store"
	"github.com/colonyops/tada/internal/tada"
	"github.com/colonyops/tada/pkg/executil"
)

// Wednesday 15 May 2024.
var testCal = item.NewCalendar(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

const sampleList = `(A) pay rent @S due:2024-05-10
x 2024-05-01 2024-04-01 buy milk
# groceries

(B) buy bread +shop @M due:2024-05-20
(C) call bank @phone @L
`

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

type testEnv struct {
	app  *tada.App
	dir  string
	todo string
}

func newTestEnv(t *testing.T, content string) *testEnv {
	t.Helper()

	dir := t.TempDir()
	todo := filepath.Join(dir, "todo.txt")
	if content != "" {
		require.NoError(t, os.WriteFile(todo, []byte(content), 0o644))
	}

	cfg := config.DefaultConfig()
	st := store.New(cfg.HTTP, testCal, zerolog.Nop())
	lists := tada.NewListService(st, testCal, nil, zerolog.Nop())

	return &testEnv{
		app:  tada.NewApp(lists, store.NewLocator(&cfg), &cfg),
		dir:  dir,
		todo: todo,
	}
}

func (e *testEnv) run(t *testing.T, cmd registrar, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:      "tada",
		Writer:    &buf,
		ErrWriter: &buf,
	}
	cmd.Register(app)

	err := app.Run(context.Background(), append([]string{"tada"}, args...))
	return buf.String(), err
}

func (e *testEnv) read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestAddCmd(t *testing.T) {
	env := newTestEnv(t, "")
	flags := &Flags{}

	out, err := env.run(t, NewAddCmd(flags, env.app), "add", "--file", env.todo, "(A)", "buy", "milk", "@S", "due:2024-05-16")
	require.NoError(t, err)

	assert.Equal(t,
		"Hint: short descriptions can make it hard to remember what a task means!\n  (A) buy milk @S due:2024-05-16\n",
		out)
	assert.Equal(t, "(A) 2024-05-15 buy milk @S due:2024-05-16\n", env.read(t, env.todo))
}

func TestAddCmd_QuietNoDateUrgency(t *testing.T) {
	env := newTestEnv(t, "first\n")

	out, err := env.run(t, NewAddCmd(&Flags{}, env.app), "add", "--file", env.todo, "-q", "--no-date", "-W", "write report")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "first\nwrite report due:2024-05-26\n", env.read(t, env.todo))
}

func TestAddCmd_RequiresTask(t *testing.T) {
	env := newTestEnv(t, "")
	_, err := env.run(t, NewAddCmd(&Flags{}, env.app), "add", "--file", env.todo)
	require.Error(t, err)
}

func TestShowCmd(t *testing.T) {
	env := newTestEnv(t, sampleList)

	out, err := env.run(t, NewShowCmd(&Flags{}, env.app), "show", "--file", env.todo)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"  (A) pay rent @S due:2024-05-10",
		"  (C) call bank @phone @L",
		"x (?) buy milk",
		"  (B) buy bread +shop @M due:2024-05-20",
		"",
	}, "\n"), out)
}

func TestShowCmd_GroupedWithLines(t *testing.T) {
	env := newTestEnv(t, sampleList)

	out, err := env.run(t, NewShowCmd(&Flags{}, env.app), "show", "--file", env.todo, "-u", "-L", "--sort", "original")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"# Overdue",
		"  (A) #1 pay rent @S due:2024-05-10",
		"",
		"# Soon",
		"x (?) #2 buy milk",
		"  (C) #6 call bank @phone @L",
		"",
		"# Next week",
		"  (B) #5 buy bread +shop @M due:2024-05-20",
		"",
		"",
	}, "\n"), out)
}

func TestShowCmd_JSON(t *testing.T) {
	env := newTestEnv(t, "(A) pay rent @S due:2024-05-10 +home\n")

	out, err := env.run(t, NewShowCmd(&Flags{}, env.app), "show", "--file", env.todo, "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"line": 1,
		"complete": false,
		"priority": "A",
		"importance": "Critical",
		"urgency": "Overdue",
		"size": "Small",
		"due": "2024-05-10",
		"description": "pay rent @S due:2024-05-10 +home",
		"tags": ["home"],
		"contexts": ["S"],
		"kv": {"due": "2024-05-10"},
		"raw": "(A) pay rent @S due:2024-05-10 +home"
	}`, out)
}

func TestShowCmd_Housekeeping(t *testing.T) {
	env := newTestEnv(t, strings.Repeat("\n", 10)+"task\n")

	out, err := env.run(t, NewShowCmd(&Flags{}, env.app), "show", "--file", env.todo)
	require.NoError(t, err)
	assert.Equal(t, "  (?) task\n\nThere are 10 blank/comment lines. Consider running `tada tidy`.\n", out)
}

func TestShowCmd_MaxWidth(t *testing.T) {
	env := newTestEnv(t, sampleList)

	_, err := env.run(t, NewShowCmd(&Flags{}, env.app), "show", "--file", env.todo, "--max-width", "20")
	require.ErrorContains(t, err, "max-width must be at least 48")

	_, err = env.run(t, NewShowCmd(&Flags{}, env.app), "show", "--file", env.todo, "--sort", "bogus")
	require.Error(t, err)
}

func TestShowCmd_MissingList(t *testing.T) {
	env := newTestEnv(t, "")
	_, err := env.run(t, NewShowCmd(&Flags{}, env.app), "show", "--file", env.todo)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestShowCmd_MissingListJSON(t *testing.T) {
	env := newTestEnv(t, "")
	out, err := env.run(t, NewShowCmd(&Flags{}, env.app), "show", "--file", env.todo, "--json")
	require.ErrorIs(t, err, store.ErrNotFound)

	var doc struct {
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc.Message, "not found")
	assert.Equal(t, env.todo, doc.Data["list"])
}

func TestTopCmds(t *testing.T) {
	content := sampleList + "(A) later start:2024-09-01\n"

	tests := []struct {
		name string
		cmd  func(*Flags, *tada.App) *TopCmd
		args []string
		want string
	}{
		{
			name: "important",
			cmd:  NewImportantCmd,
			args: []string{"important"},
			want: "  (A) pay rent @S due:2024-05-10\n  (B) buy bread +shop @M due:2024-05-20\n  (C) call bank @phone @L\n",
		},
		{
			name: "urgent limited",
			cmd:  NewUrgentCmd,
			args: []string{"u", "-n", "1"},
			want: "  (A) pay rent @S due:2024-05-10\n",
		},
		{
			name: "quick resorted",
			cmd:  NewQuickCmd,
			args: []string{"quick", "-n", "2", "--sort", "alpha"},
			want: "  (B) buy bread +shop @M due:2024-05-20\n  (A) pay rent @S due:2024-05-10\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, content)
			out, err := env.run(t, tt.cmd(&Flags{}, env.app), append(tt.args, "--file", env.todo)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFindCmd(t *testing.T) {
	env := newTestEnv(t, sampleList)

	out, err := env.run(t, NewFindCmd(&Flags{}, env.app), "find", "--file", env.todo, "buy", "+shop")
	require.NoError(t, err)
	assert.Equal(t, "  (B) buy bread +shop @M due:2024-05-20\n", out)

	out, err = env.run(t, NewFindCmd(&Flags{}, env.app), "find", "--file", env.todo, "--json", "#6")
	require.NoError(t, err)
	assert.Contains(t, out, `"description":"call bank @phone @L"`)

	_, err = env.run(t, NewFindCmd(&Flags{}, env.app), "find", "--file", env.todo)
	require.Error(t, err)
}

func TestDoneCmd(t *testing.T) {
	env := newTestEnv(t, sampleList)

	out, err := env.run(t, NewDoneCmd(&Flags{}, env.app), "done", "--file", env.todo, "-y", "bread")
	require.NoError(t, err)
	assert.Equal(t,
		"  (B) buy bread +shop @M due:2024-05-20\nMarking finished\n\nMarked 1 tasks complete!\n",
		out)
	assert.Contains(t, env.read(t, env.todo), "x (B) 2024-05-15 2024-05-15 buy bread +shop @M due:2024-05-20\n")
}

func TestDoneCmd_No(t *testing.T) {
	env := newTestEnv(t, sampleList)

	out, err := env.run(t, NewDoneCmd(&Flags{}, env.app), "done", "--file", env.todo, "-n", "--no-date", "rent")
	require.NoError(t, err)
	assert.Equal(t, "  (A) pay rent @S due:2024-05-10\nSkipping\n\nNo actions taken.\n", out)
	assert.Equal(t, sampleList, env.read(t, env.todo))
}

func TestDoneCmd_Prompt(t *testing.T) {
	env := newTestEnv(t, sampleList)

	var questions []string
	orig := askFunc
	askFunc = func(_ context.Context, q string) (bool, error) {
		questions = append(questions, q)
		return len(questions) == 1, nil
	}
	t.Cleanup(func() { askFunc = orig })

	out, err := env.run(t, NewDoneCmd(&Flags{}, env.app), "done", "--file", env.todo, "--no-date", "@S", "@L")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mark finished?", "Mark finished?"}, questions)
	assert.Contains(t, out, "Marked 1 tasks complete!")
	assert.Contains(t, env.read(t, env.todo), "x (A) pay rent @S due:2024-05-10\n")
	assert.Contains(t, env.read(t, env.todo), "(C) call bank @phone @L\n")
}

func TestPullCmd(t *testing.T) {
	env := newTestEnv(t, "call bank @phone start:2024-06-01\n")

	out, err := env.run(t, NewPullCmd(&Flags{}, env.app), "pull", "--file", env.todo, "-y", "-S", "bank")
	require.NoError(t, err)
	assert.Contains(t, out, "Rescheduling")
	assert.Contains(t, out, "Rescheduled 1 tasks!")
	assert.Equal(t, "call bank @phone start:2024-05-15 due:2024-05-17\n", env.read(t, env.todo))
}

func TestRemoveCmd(t *testing.T) {
	env := newTestEnv(t, sampleList)

	out, err := env.run(t, NewRemoveCmd(&Flags{}, env.app), "rm", "--file", env.todo, "-y", "#1")
	require.NoError(t, err)
	assert.Equal(t, "  (A) pay rent @S due:2024-05-10\nRemoving\n\nRemoved 1 tasks!\n", out)
	assert.True(t, strings.HasPrefix(env.read(t, env.todo), "\nx 2024-05-01"))
}

func TestZenCmd(t *testing.T) {
	env := newTestEnv(t, sampleList)

	out, err := env.run(t, NewZenCmd(&Flags{}, env.app), "zen", "--file", env.todo)
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
	assert.Contains(t, env.read(t, env.todo), "(A) pay rent @S due:2024-05-17\n")
}

func TestTidyCmd(t *testing.T) {
	env := newTestEnv(t, sampleList)

	out, err := env.run(t, NewTidyCmd(&Flags{}, env.app), "tidy", "--file", env.todo, "--sort", "importance")
	require.NoError(t, err)
	assert.Equal(t, "Removed 2 blank/comment lines.\n", out)
	assert.Equal(t, strings.Join([]string{
		"(A) pay rent @S due:2024-05-10",
		"(B) buy bread +shop @M due:2024-05-20",
		"(C) call bank @phone @L",
		"x 2024-05-01 2024-04-01 buy milk",
		"",
	}, "\n"), env.read(t, env.todo))
}

func TestArchiveCmd(t *testing.T) {
	env := newTestEnv(t, sampleList)
	done := filepath.Join(env.dir, "done.txt")

	out, err := env.run(t, NewArchiveCmd(&Flags{}, env.app), "archive", "--file", env.todo, "--done-file", done)
	require.NoError(t, err)
	assert.Equal(t, "Moved 1 tasks to "+done+"\n", out)
	assert.Equal(t, "x 2024-05-01 2024-04-01 buy milk\n", env.read(t, done))
	assert.NotContains(t, env.read(t, env.todo), "buy milk")

	out, err = env.run(t, NewArchiveCmd(&Flags{}, env.app), "archive", "--file", env.todo, "--done-file", done)
	require.NoError(t, err)
	assert.Equal(t, "No complete tasks found in "+env.todo+"\n", out)
}

func TestPathCmd(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run(t, NewPathCmd(&Flags{}, env.app), "path", "--file", env.todo)
	require.NoError(t, err)
	assert.Equal(t, env.todo+"\n", out)

	done := filepath.Join(env.dir, "done.txt")
	out, err = env.run(t, NewPathCmd(&Flags{}, env.app), "path", "--done", "--done-file", done)
	require.NoError(t, err)
	assert.Equal(t, done+"\n", out)

	cfgPath := filepath.Join(env.dir, "config.yaml")
	out, err = env.run(t, NewPathCmd(&Flags{ConfigPath: cfgPath}, env.app), "path", "--config")
	require.NoError(t, err)
	assert.Equal(t, cfgPath+"\n", out)
}

func TestEditCmd(t *testing.T) {
	env := newTestEnv(t, "")
	exec := &executil.RecordingExecutor{}

	t.Setenv("EDITOR", "code --wait")
	_, err := env.run(t, NewEditCmd(&Flags{}, env.app, exec), "edit", "--file", env.todo)
	require.NoError(t, err)
	require.Len(t, exec.Commands, 1)
	assert.Equal(t, "code", exec.Commands[0].Cmd)
	assert.Equal(t, []string{"--wait", env.todo}, exec.Commands[0].Args)

	t.Setenv("EDITOR", "")
	exec.Reset()
	_, err = env.run(t, NewEditCmd(&Flags{}, env.app, exec), "edit", "--file", env.todo)
	require.NoError(t, err)
	assert.Equal(t, "vi", exec.Commands[0].Cmd)

	_, err = env.run(t, NewEditCmd(&Flags{}, env.app, exec), "edit", "--file", "https://example.com/todo.txt")
	require.ErrorContains(t, err, "cannot edit remote list")
}

func TestAddCmd_NamedUrgency(t *testing.T) {
	env := newTestEnv(t, "")

	_, err := env.run(t, NewAddCmd(&Flags{}, env.app), "add", "--file", env.todo, "-q", "--no-date", "--urgency", "later", "renew passport")
	require.NoError(t, err)
	assert.Equal(t, "renew passport due:2024-11-14\n", env.read(t, env.todo))

	_, err = env.run(t, NewAddCmd(&Flags{}, env.app), "add", "--file", env.todo, "--urgency", "whenever", "x")
	require.ErrorContains(t, err, "invalid urgency")
}
