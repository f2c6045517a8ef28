package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wordwise-play/wordwise/internal/catalog"
	"github.com/wordwise-play/wordwise/internal/store"
)

// execute runs the root command with args against an isolated environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("WORDWISE_LOG_FILE", "")
	t.Setenv("WORDWISE_CATALOG", "")
	t.Setenv("WORDWISE_SKIP_DB", "")
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// newFlagCmd returns a bare command carrying the root persistent flags.
func newFlagCmd(t *testing.T) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().String("db", "", "")
	c.Flags().String("catalog", "", "")
	c.Flags().String("log-file", "", "")
	return c
}

func defaultCatalog(t *testing.T) catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func TestParseGroups(t *testing.T) {
	cat := defaultCatalog(t)

	tests := []struct {
		name    string
		raw     []string
		max     int
		want    []catalog.GroupID
		wantErr string
	}{
		{name: "in order", raw: []string{"an", "at"}, max: 4, want: []catalog.GroupID{"an", "at"}},
		{name: "normalized", raw: []string{" AT ", "Ight"}, max: 4, want: []catalog.GroupID{"at", "ight"}},
		{name: "duplicates dropped", raw: []string{"at", "AT", "an"}, max: 2, want: []catalog.GroupID{"at", "an"}},
		{name: "blank only", raw: []string{" ", ""}, max: 4, wantErr: "no word families given"},
		{name: "typo suggests", raw: []string{"aat"}, max: 4, wantErr: `"aat" (did you mean "at"?)`},
		{name: "unknown without suggestion", raw: []string{"at", "zzzzz"}, max: 4, wantErr: `unknown group: "zzzzz"`},
		{name: "over the cap", raw: []string{"at", "an", "in"}, max: 2, wantErr: "at most 2 allowed"},
		{name: "no cap", raw: []string{"at", "an", "in"}, max: 0, want: []catalog.GroupID{"at", "an", "in"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGroups(cat, tt.raw, tt.max)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGroups_UnknownIsSentinel(t *testing.T) {
	_, err := parseGroups(defaultCatalog(t), []string{"nope"}, 4)
	assert.ErrorIs(t, err, catalog.ErrUnknownGroup)
}

func TestNewMachine_DirectStart(t *testing.T) {
	d := &deps{
		logger:  zap.NewNop(),
		catalog: defaultCatalog(t),
		prefs:   store.NewMemoryPreferences(),
	}

	m := newMachine(context.Background(), d, []catalog.GroupID{"an", "at"})
	st := m.State()
	assert.True(t, st.IsActive)
	assert.Equal(t, []catalog.GroupID{"an", "at"}, st.SelectedGroups)
	assert.True(t, st.ShowingIntro)

	idle := newMachine(context.Background(), d, nil)
	assert.False(t, idle.State().IsActive)
	assert.Empty(t, idle.State().SelectedGroups)
}

func TestNewMachine_ReadsSavedSkipIntros(t *testing.T) {
	prefs := store.NewMemoryPreferences()
	require.NoError(t, prefs.Set(context.Background(), "skip_intros", "true"))
	d := &deps{logger: zap.NewNop(), catalog: defaultCatalog(t), prefs: prefs}

	m := newMachine(context.Background(), d, []catalog.GroupID{"at"})
	assert.True(t, m.State().SkipIntros)
	assert.False(t, m.State().ShowingIntro)
}

func TestNormalizePref(t *testing.T) {
	tests := []struct {
		key, value string
		want       string
		wantErr    bool
	}{
		{"skip_intros", "true", "true", false},
		{"skip_intros", "1", "true", false},
		{"skip_intros", "F", "false", false},
		{"skip_intros", "maybe", "", true},
		{"theme", "dark", "dark", false},
	}
	for _, tt := range tests {
		got, err := normalizePref(tt.key, tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("normalizePref(%q, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizePref(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.want)
		}
	}
}

func TestPrefsCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "nested", "wordwise.db")

	out, err := execute(t, "prefs", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No preferences saved.")

	out, err = execute(t, "prefs", "set", "skip_intros", "yes", "--db", db)
	require.Error(t, err)
	assert.Contains(t, out, "must be true or false")

	out, err = execute(t, "prefs", "set", "skip_intros", "1", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "skip_intros = true\n", out)

	out, err = execute(t, "prefs", "get", "skip_intros", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = execute(t, "prefs", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "skip_intros")

	out, err = execute(t, "reset", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Preferences cleared.\n", out)

	_, err = execute(t, "prefs", "get", "skip_intros", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not set")
}

func TestGroupsCommand(t *testing.T) {
	out, err := execute(t, "groups")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, out, "ight")
	assert.Contains(t, out, "11 word families")
}

func TestGroupsCommand_CustomCatalog(t *testing.T) {
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("catalog", "") })

	_, err := execute(t, "groups", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load catalog")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "wordwise (devel)\n", out)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("WORDWISE_DB", "/from/env.db")
	t.Setenv("WORDWISE_LOG_FILE", "")

	cmd := newFlagCmd(t)
	require.NoError(t, cmd.ParseFlags([]string{"--log-file", "/tmp/ww.log"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath)
	assert.Equal(t, "/tmp/ww.log", cfg.LogFile)

	require.NoError(t, cmd.ParseFlags([]string{"--db", "/from/flag.db"}))
	cfg, err = loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.db", cfg.DBPath)
}

func TestOpenPrefs_SkipDB(t *testing.T) {
	t.Setenv("WORDWISE_SKIP_DB", "true")
	cmd := newFlagCmd(t)

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	prefs, closeFn, err := openPrefs(cfg)
	require.NoError(t, err)
	defer closeFn()

	_, ok := prefs.(*store.MemoryPreferences)
	assert.True(t, ok, "expected in-memory preferences, got %T", prefs)
}
