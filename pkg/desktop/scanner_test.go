package desktop

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDir = "/usr/share/applications"

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testDir, 0755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, name), []byte(content), 0644))
	}
	return fs
}

func names(apps []Application) []string {
	out := make([]string, 0, len(apps))
	for _, app := range apps {
		out = append(out, app.Name)
	}
	return out
}

func TestScanDropsEntryWithoutExec(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"a.desktop": "[Desktop Entry]\nName=Firefox\nExec=firefox\nIcon=firefox.png\n",
		"b.desktop": "[Desktop Entry]\nName=Terminal\nIcon=term.png\n",
	})

	apps, err := NewScanner(fs).Scan(testDir)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	assert.Equal(t, Application{
		SourcePath: filepath.Join(testDir, "a.desktop"),
		Name:       "Firefox",
		Exec:       "firefox",
		Icon:       "firefox.png",
	}, apps[0])
	assert.Equal(t, "a", apps[0].ID())
}

func TestScanCountsOnlyCompleteEntries(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"1.desktop":          "[Desktop Entry]\nName=One\nExec=one\nIcon=one\n",
		"2.desktop":          "[Desktop Entry]\nName=Two\nTryExec=two\nIcon=two\n",
		"3.desktop":          "[Desktop Entry]\nName=Three\nExec=three %U\nIcon=three\n",
		"no-icon.desktop":    "[Desktop Entry]\nName=NoIcon\nExec=x\n",
		"no-name.desktop":    "[Desktop Entry]\nExec=x\nIcon=x\n",
		"empty.desktop":      "",
		"other.desktop":      "[Desktop Action new]\nName=Other\nExec=o\nIcon=o\n",
	})

	apps, err := NewScanner(fs).Scan(testDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two", "Three"}, names(apps))
}

func TestScanPrefersTryExec(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"gimp.desktop": "[Desktop Entry]\nName=GIMP\nTryExec=gimp-2.10\nExec=gimp-2.10 %U\nIcon=gimp\n",
	})

	apps, err := NewScanner(fs).Scan(testDir)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "gimp-2.10", apps[0].Exec)
}

func TestScanKeepsLiteralValues(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"app.desktop": "# comment\n[Desktop Entry]\nName=C# Studio; Pro\nName[de]=Studio\nExec=\"/opt/My App/run\" --flag\nIcon=/opt/icon.png\nCategories=Development;IDE;\n",
	})

	apps, err := NewScanner(fs).Scan(testDir)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "C# Studio; Pro", apps[0].Name)
	assert.Equal(t, `"/opt/My App/run" --flag`, apps[0].Exec)
}

func TestScanKeepsQuoteLikeValuesLiteral(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"backtick.desktop": "[Desktop Entry]\nName=`Quoted` Tool\nExec=`which tool`\nIcon=tool\n",
		"triple.desktop":   "[Desktop Entry]\nName=\"\"\"Odd\nExec=odd\nIcon=  \"\"\"odd\"\"\"\n",
	})

	apps, err := NewScanner(fs).Scan(testDir)
	require.NoError(t, err)
	require.Len(t, apps, 2)

	assert.Equal(t, "`Quoted` Tool", apps[0].Name)
	assert.Equal(t, "`which tool`", apps[0].Exec)
	assert.Equal(t, `"""Odd`, apps[1].Name)
	assert.Equal(t, `"""odd"""`, apps[1].Icon)
}

func TestParseEntryEmptyValuesArePresent(t *testing.T) {
	app, ok, err := ParseEntry("/x/blank.desktop", []byte("[Desktop Entry]\nName=\nTryExec=\nExec=blank\nIcon=blank\n"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "", app.Name)
	assert.Equal(t, "", app.Exec, "an empty TryExec is not replaced by Exec")
	assert.Equal(t, "blank", app.Icon)
	assert.Equal(t, "blank", app.ID())
}

func TestScanOnlyConsidersDesktopFiles(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"app.desktop":     "[Desktop Entry]\nName=App\nExec=app\nIcon=app\n",
		"README":          "not an entry",
		"mimeinfo.cache":  "[MIME Cache]\ntext/plain=app.desktop;\n",
		"old.desktop.bak": "[Desktop Entry]\nName=Backup\nExec=bak\nIcon=bak\n",
	})
	require.NoError(t, fs.MkdirAll(filepath.Join(testDir, "nested.desktop"), 0755))

	apps, err := NewScanner(fs).Scan(testDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"App", "Backup"}, names(apps))
}

func TestScanAbortsOnUnparsableFile(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"good.desktop":   "[Desktop Entry]\nName=Good\nExec=good\nIcon=good\n",
		"broken.desktop": "[Desktop Entry]\nthis line has no delimiter\n",
	})

	apps, err := NewScanner(fs).Scan(testDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "broken.desktop")
	assert.Nil(t, apps)
}

func TestScanUnreadableDirectoryIsEmpty(t *testing.T) {
	apps, err := NewScanner(afero.NewMemMapFs()).Scan("/does/not/exist")
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestScanExcludePatterns(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"org.gnome.Settings.desktop": "[Desktop Entry]\nName=Settings\nExec=gnome-control-center\nIcon=settings\n",
		"firefox.desktop":            "[Desktop Entry]\nName=Firefox\nExec=firefox\nIcon=firefox\n",
	})

	apps, err := NewScanner(fs, WithExclude("org.gnome.*")).Scan(testDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Firefox"}, names(apps))
}

func TestScanAllCarriesActualPaths(t *testing.T) {
	fs := newTestFs(t, map[string]string{
		"a.desktop": "[Desktop Entry]\nName=System\nExec=a\nIcon=a\n",
	})
	local := "/home/user/.local/share/applications"
	require.NoError(t, fs.MkdirAll(local, 0755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(local, "b.desktop"),
		[]byte("[Desktop Entry]\nName=Local\nExec=b\nIcon=b\n"), 0644))

	apps, err := NewScanner(fs).ScanAll([]string{testDir, local, "/missing"})
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, filepath.Join(testDir, "a.desktop"), apps[0].SourcePath)
	assert.Equal(t, filepath.Join(local, "b.desktop"), apps[1].SourcePath)
}

func TestDefaultDirectoriesIncludeUserData(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/home/user/.local/share")

	assert.Equal(t,
		[]string{DefaultDirectory, "/home/user/.local/share/applications"},
		DefaultConfig().Directories)
}

func TestConfigFrom(t *testing.T) {
	cfg, err := ConfigFrom(map[string]any{
		"exclude": []any{"*.bak.desktop"},
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultDirectories(), cfg.Directories)
	assert.Equal(t, []string{"*.bak.desktop"}, cfg.Exclude)
}
