package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/embedded"
	"github.com/decker502/onboarding/pkg/scenes"
)

const twoPageConfig = `
pages:
  - axis: vertical-bottom
    title: "Hello"
  - axis: vertical-top
    title: "Bye"
loadingDuration: 0.5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "onboarding.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	a, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func TestNewAppSkipLoading(t *testing.T) {
	a := newTestApp(t, Config{ConfigPath: writeConfig(t, twoPageConfig), SkipLoading: true})

	scene := a.OnboardingScene()
	if scene == nil || a.GetSceneManager().GetCurrentScene() != scenes.Scene(scene) {
		t.Fatal("onboarding scene not mounted")
	}
	if scene.Module().PageCount() != 2 {
		t.Errorf("page count: got %d, want 2", scene.Module().PageCount())
	}
}

func TestNewAppStartsWithLoadingScene(t *testing.T) {
	a := newTestApp(t, Config{ConfigPath: writeConfig(t, twoPageConfig)})

	loading, ok := a.GetSceneManager().GetCurrentScene().(*scenes.LoadingScene)
	if !ok {
		t.Fatalf("expected loading scene, got %T", a.GetSceneManager().GetCurrentScene())
	}
	if !loading.Loading() {
		t.Error("loading flag should be set")
	}
	if a.OnboardingScene() != nil {
		t.Error("carousel mounted before loading finished")
	}
}

func TestNewAppMissingConfigUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	a := newTestApp(t, Config{ConfigPath: missing, SkipLoading: true})

	if got := a.OnboardingScene().Module().PageCount(); got != config.DefaultPageCount {
		t.Errorf("page count: got %d, want %d", got, config.DefaultPageCount)
	}
}

func TestNewAppInvalidConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "spring:\n  mass: 0\n")

	if _, err := NewApp(Config{ConfigPath: path, SkipLoading: true}); err == nil {
		t.Error("expected error for config with zero spring mass")
	}
}

func TestAppCompletion(t *testing.T) {
	a := newTestApp(t, Config{ConfigPath: writeConfig(t, twoPageConfig), SkipLoading: true})
	m := a.OnboardingScene().Module()

	m.TapContinue()
	if a.Finished() {
		t.Fatal("continue is hidden on the first page")
	}

	m.TapSkip()
	m.TapContinue()
	if !a.Finished() {
		t.Fatal("completion callback not delivered to app")
	}

	a.Close()
	if !m.Disposed() {
		t.Error("carousel not unmounted on close")
	}
}

func TestAppApplyConfig(t *testing.T) {
	a := newTestApp(t, Config{ConfigPath: writeConfig(t, twoPageConfig), SkipLoading: true})

	a.applyConfig(config.DefaultOnboardingConfig())
	if got := a.OnboardingScene().Module().PageCount(); got != 4 {
		t.Errorf("page count after reload: got %d, want 4", got)
	}

	bad := config.DefaultOnboardingConfig()
	bad.Pages = nil
	a.applyConfig(bad)
	if got := a.OnboardingScene().Module().PageCount(); got != 4 {
		t.Errorf("invalid reload applied: page count %d", got)
	}
}

func TestNewAppWatchDiskConfig(t *testing.T) {
	a := newTestApp(t, Config{ConfigPath: writeConfig(t, twoPageConfig), SkipLoading: true, Watch: true})
	if !a.Watching() {
		t.Error("watch should be enabled for a config file on disk")
	}
}

func TestNewAppWatchEmbeddedConfigDisabled(t *testing.T) {
	embedded.Init(fstest.MapFS{
		config.DefaultOnboardingConfigPath: &fstest.MapFile{Data: []byte(twoPageConfig)},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	a := newTestApp(t, Config{SkipLoading: true, Watch: true})
	if a.Watching() {
		t.Error("watch should be disabled for the embedded config")
	}
	if a.OnboardingScene().Module().PageCount() != 2 {
		t.Errorf("page count: got %d, want 2 (embedded config)", a.OnboardingScene().Module().PageCount())
	}
}

func TestAppLayout(t *testing.T) {
	a := &App{}
	w, h := a.Layout(1920, 1080)
	if w != config.ScreenWidth || h != config.ScreenHeight {
		t.Errorf("Layout: got %dx%d", w, h)
	}
}
