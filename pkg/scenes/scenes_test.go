package scenes

import (
	"testing"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/game"
	"github.com/decker502/onboarding/pkg/modules"
	"github.com/decker502/onboarding/pkg/utils"
)

const testDT = 1.0 / 60.0

func newTestOnboardingScene(t *testing.T, onComplete func()) *OnboardingScene {
	t.Helper()
	s, err := NewOnboardingScene(nil, config.DefaultOnboardingConfig(), modules.OnboardingCallbacks{
		OnComplete: onComplete,
	})
	if err != nil {
		t.Fatalf("NewOnboardingScene: %v", err)
	}
	return s
}

func TestLoadingSceneSwitchesAfterDuration(t *testing.T) {
	sm := game.NewSceneManager()
	onboarding := newTestOnboardingScene(t, nil)
	sm.SetSceneFactory(func(name string) game.Scene {
		if name == SceneOnboarding {
			return onboarding
		}
		return nil
	})

	loading := NewLoadingScene(nil, sm, 1.0)
	sm.SwitchTo(loading)

	for i := 0; i < 59; i++ {
		sm.Update(testDT)
	}
	if !loading.Loading() || sm.GetCurrentScene() != loading {
		t.Fatalf("loading finished early at progress %.2f", loading.Progress())
	}

	// 累加误差可能让第 60 帧略小于 1 秒
	for i := 0; i < 2 && loading.Loading(); i++ {
		sm.Update(testDT)
	}
	if loading.Loading() {
		t.Error("loading flag still set after duration")
	}
	if sm.GetCurrentScene() != onboarding {
		t.Error("onboarding scene not mounted after loading")
	}
	if loading.Progress() != 1 {
		t.Errorf("progress: got %v, want 1", loading.Progress())
	}
}

func TestLoadingSceneZeroDuration(t *testing.T) {
	loading := NewLoadingScene(nil, nil, 0)
	if loading.Progress() != 1 {
		t.Errorf("progress: got %v", loading.Progress())
	}
	loading.Update(testDT)
	if loading.Loading() {
		t.Error("zero duration should finish on first update")
	}
}

func TestLoadingSceneDotScale(t *testing.T) {
	loading := NewLoadingScene(nil, nil, 1)
	for step := 0; step < 120; step++ {
		loading.elapsedTime = float64(step) * testDT
		for i := 0; i < loadingDotCount; i++ {
			if s := loading.dotScale(i); s < 0.5 || s > 1 {
				t.Fatalf("dot %d scale %v out of range at %.2fs", i, s, loading.elapsedTime)
			}
		}
	}
}

func TestOnboardingSceneStep(t *testing.T) {
	s := newTestOnboardingScene(t, nil)

	drags := []utils.DragInfo{
		{State: utils.DragStateStarted, StartX: 300, StartY: 400, CurrentX: 300, CurrentY: 400},
		{State: utils.DragStateDragging, StartX: 300, StartY: 400, CurrentX: 260, CurrentY: 400},
		{State: utils.DragStateEnded, StartX: 300, StartY: 400, CurrentX: 250, CurrentY: 400},
	}
	for _, d := range drags {
		s.step(testDT, d, float64(d.CurrentX), float64(d.CurrentY), d.State != utils.DragStateEnded)
	}

	if s.Module().Page() != 2 {
		t.Errorf("page: got %d, want 2", s.Module().Page())
	}
}

func TestOnboardingSceneReload(t *testing.T) {
	s := newTestOnboardingScene(t, nil)
	s.Module().TapIndicator(3)
	old := s.Module()

	cfg := config.DefaultOnboardingConfig()
	cfg.Pages = cfg.Pages[:2]
	if err := s.Reload(cfg); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if !old.Disposed() {
		t.Error("previous module not unmounted")
	}
	if s.Module().PageCount() != 2 || s.Module().Page() != 1 {
		t.Errorf("after shrink: page %d of %d", s.Module().Page(), s.Module().PageCount())
	}

	s.Module().TapSkip()
	if err := s.Reload(config.DefaultOnboardingConfig()); err != nil {
		t.Fatal(err)
	}
	if s.Module().Page() != 2 {
		t.Errorf("page not preserved across reload: got %d", s.Module().Page())
	}

	// 无效配置被拒绝，当前轮播不变
	current := s.Module()
	bad := config.DefaultOnboardingConfig()
	bad.Pages = nil
	if err := s.Reload(bad); err == nil {
		t.Error("expected error for invalid config")
	}
	if s.Module() != current || current.Disposed() {
		t.Error("invalid reload replaced the mounted carousel")
	}
}

func TestOnboardingSceneDispose(t *testing.T) {
	completed := false
	s := newTestOnboardingScene(t, func() { completed = true })

	s.Dispose()
	s.Dispose()

	if !s.Module().Disposed() {
		t.Error("module not disposed with scene")
	}
	s.Module().TapSkip()
	s.Module().TapContinue()
	if completed {
		t.Error("callback fired after unmount")
	}
	if err := s.Reload(config.DefaultOnboardingConfig()); err != nil {
		t.Errorf("Reload after dispose: %v", err)
	}
}
