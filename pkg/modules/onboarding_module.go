package modules

import (
	"fmt"
	"log"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/ecs"
	"github.com/decker502/onboarding/pkg/systems"
	"github.com/decker502/onboarding/pkg/utils"
)

// OnboardingCallbacks 引导页回调函数集合
type OnboardingCallbacks struct {
	// OnComplete 最后一页点击"继续"时调用；为 nil 时点击为空操作
	OnComplete func()
}

// OnboardingModule 引导页轮播模块（一个轮播实例）
// 封装轮播的全部核心状态：
//   - PageController: 唯一的当前页码
//   - AnimationDrive: 各页位移和各指示器缩放的弹簧
//   - GestureSystem: 单次手势的接管与分类
//   - ControlSurface + ButtonSystem: 跳过/继续按钮和指示器
//
// 生命周期与挂载的场景一致：构造即挂载（立即以第 1 页为目标开始动画），
// Dispose 即卸载，之后所有调用都是空操作，不会再有任何动画推进或回调触发。
//
// 所有方法都必须在游戏主循环（Update）所在的 goroutine 中调用。
type OnboardingModule struct {
	entityManager *ecs.EntityManager
	config        *config.OnboardingConfig

	controller *systems.PageController
	drive      *systems.AnimationDrive
	gestures   *systems.GestureSystem
	buttons    *systems.ButtonSystem
	surface    *systems.ControlSurface

	frame    *systems.CarouselFrame
	disposed bool
}

// NewOnboardingModule 创建并挂载一个轮播实例
//
// 参数：
//   - em: EntityManager 实例（控制区域的按钮和指示器作为实体创建在其中）
//   - cfg: 引导页配置
//   - viewport: 逻辑视口尺寸
//   - callbacks: 外部回调
//
// 返回：
//   - error: 配置无效时返回
func NewOnboardingModule(
	em *ecs.EntityManager,
	cfg *config.OnboardingConfig,
	viewport systems.Viewport,
	callbacks OnboardingCallbacks,
) (*OnboardingModule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create onboarding module: %w", err)
	}

	m := &OnboardingModule{
		entityManager: em,
		config:        cfg,
		controller:    systems.NewPageController(cfg.PageCount()),
		drive:         systems.NewAnimationDrive(cfg, viewport),
		gestures:      systems.NewGestureSystem(systems.NewGestureClassifier(cfg.Gesture)),
		buttons:       systems.NewButtonSystem(em),
		frame:         systems.NewCarouselFrame(cfg.PageCount()),
	}
	m.surface = systems.NewControlSurface(em, m.controller, viewport.Width, callbacks.OnComplete)

	// 观察者顺序：先重新定位动画，再切换按钮
	m.controller.AddObserver(m.drive)
	m.controller.AddObserver(m.surface)

	log.Printf("[OnboardingModule] Mounted with %d pages", cfg.PageCount())
	return m, nil
}

// Update 每帧调用：处理拖拽输入，推进弹簧
func (m *OnboardingModule) Update(deltaTime float64, drag utils.DragInfo) {
	if m.disposed {
		return
	}

	if result, ended := m.gestures.Update(drag); ended {
		m.handleGesture(result)
		// 完成回调可能已经卸载了本模块
		if m.disposed {
			return
		}
	}

	m.drive.Update(deltaTime)
}

// Hover 根据指针位置更新按钮的悬停/按下状态
// 手势被接管后不显示按下效果
func (m *OnboardingModule) Hover(x, y float64, pressed bool) {
	if m.disposed {
		return
	}
	m.buttons.UpdateHover(x, y, pressed && !m.gestures.Claimed())
}

// Press 指针按下
func (m *OnboardingModule) Press(x, y float64) {
	if m.disposed {
		return
	}
	m.gestures.Press(x, y)
}

// Move 指针移动（x/y 为当前位置），返回手势是否已被接管
func (m *OnboardingModule) Move(x, y float64) bool {
	if m.disposed {
		return false
	}
	return m.gestures.Move(x, y)
}

// Release 指针释放，返回本次手势的结果
func (m *OnboardingModule) Release(x, y float64) systems.GestureResult {
	if m.disposed {
		return systems.GestureResult{}
	}
	result := m.gestures.Release(x, y)
	m.handleGesture(result)
	return result
}

func (m *OnboardingModule) handleGesture(result systems.GestureResult) {
	if result.Tap {
		m.buttons.HandleTap(result.PressX, result.PressY, result.TapX, result.TapY)
		return
	}
	m.controller.Apply(result.Intent)
}

// TapSkip 点击跳过按钮
func (m *OnboardingModule) TapSkip() {
	if m.disposed {
		return
	}
	m.surface.TapSkip()
}

// TapContinue 点击继续按钮
func (m *OnboardingModule) TapContinue() {
	if m.disposed {
		return
	}
	m.surface.TapContinue()
}

// TapIndicator 点击第 i 个指示器
func (m *OnboardingModule) TapIndicator(i int) error {
	if m.disposed {
		return nil
	}
	return m.surface.TapIndicator(i)
}

// Page 返回当前页码
func (m *OnboardingModule) Page() int {
	return m.controller.Page()
}

// PageCount 返回总页数
func (m *OnboardingModule) PageCount() int {
	return m.controller.PageCount()
}

// Controller 返回页码控制器
func (m *OnboardingModule) Controller() *systems.PageController {
	return m.controller
}

// Drive 返回动画驱动
func (m *OnboardingModule) Drive() *systems.AnimationDrive {
	return m.drive
}

// Surface 返回控制区域
func (m *OnboardingModule) Surface() *systems.ControlSurface {
	return m.surface
}

// Config 返回模块使用的配置
func (m *OnboardingModule) Config() *config.OnboardingConfig {
	return m.config
}

// Frame 返回本帧渲染快照（缓冲区在模块内复用）
func (m *OnboardingModule) Frame() *systems.CarouselFrame {
	m.frame.Capture(m.drive)
	return m.frame
}

// Settled 所有动画是否都已静止
func (m *OnboardingModule) Settled() bool {
	return m.drive.Settled()
}

// Dispose 卸载：停止动画、销毁控制区域实体、丢弃进行中的手势
// 重复调用是安全的
func (m *OnboardingModule) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true

	m.drive.Stop()
	m.gestures.Cancel()
	m.surface.Dispose()

	log.Printf("[OnboardingModule] Disposed at page %d", m.controller.Page())
}

// Disposed 是否已卸载
func (m *OnboardingModule) Disposed() bool {
	return m.disposed
}
