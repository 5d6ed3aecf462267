package systems

import (
	"errors"
	"fmt"
	"log"
)

// ErrPageOutOfRange JumpTo 的目标页不在 [1, N] 内
var ErrPageOutOfRange = errors.New("page out of range")

// PageObserver 页码变化的观察者
// OnPageChanged 在页码实际变化时同步调用（不排队）
type PageObserver interface {
	OnPageChanged(page int)
}

// PageObserverFunc 函数适配器
type PageObserverFunc func(page int)

// OnPageChanged 实现 PageObserver
func (f PageObserverFunc) OnPageChanged(page int) {
	f(page)
}

// PageController 页码控制器
//
// 持有唯一的当前页码（1 ~ N），所有修改都经过这里：
//   - Advance / Retreat 在边界处为空操作（不循环、不报错）
//   - JumpToLast 无条件跳到第 N 页
//   - JumpTo 拒绝越界页码并返回 ErrPageOutOfRange，页码保持不变
//
// 页码实际变化时按注册顺序同步通知所有观察者；
// 没有变化的请求（边界、跳到当前页）不通知。
type PageController struct {
	page      int
	pageCount int
	observers []PageObserver
}

// NewPageController 创建页码控制器，初始页码为 1
// pageCount 小于 1 时按 1 处理
func NewPageController(pageCount int) *PageController {
	if pageCount < 1 {
		pageCount = 1
	}
	return &PageController{
		page:      1,
		pageCount: pageCount,
	}
}

// AddObserver 注册观察者
func (pc *PageController) AddObserver(o PageObserver) {
	pc.observers = append(pc.observers, o)
}

// Page 返回当前页码（从 1 开始）
func (pc *PageController) Page() int {
	return pc.page
}

// PageCount 返回总页数 N
func (pc *PageController) PageCount() int {
	return pc.pageCount
}

// IsLast 当前是否为最后一页
func (pc *PageController) IsLast() bool {
	return pc.page == pc.pageCount
}

// Advance 下一页：min(P+1, N)
func (pc *PageController) Advance() {
	pc.set(min(pc.page+1, pc.pageCount))
}

// Retreat 上一页：max(P-1, 1)
func (pc *PageController) Retreat() {
	pc.set(max(pc.page-1, 1))
}

// JumpToLast 跳到最后一页（垂直滑动和"跳过"按钮共用）
func (pc *PageController) JumpToLast() {
	pc.set(pc.pageCount)
}

// JumpTo 跳到第 k 页（指示器点击）
// k 不在 [1, N] 内时返回 ErrPageOutOfRange，页码不变
func (pc *PageController) JumpTo(k int) error {
	if k < 1 || k > pc.pageCount {
		return fmt.Errorf("jump to page %d of %d: %w", k, pc.pageCount, ErrPageOutOfRange)
	}
	pc.set(k)
	return nil
}

// Apply 执行手势意图
func (pc *PageController) Apply(intent Intent) {
	switch intent {
	case IntentAdvance:
		pc.Advance()
	case IntentRetreat:
		pc.Retreat()
	case IntentJumpToLast:
		pc.JumpToLast()
	}
}

func (pc *PageController) set(page int) {
	if page == pc.page {
		return
	}

	log.Printf("[PageController] Page %d -> %d", pc.page, page)
	pc.page = page
	for _, o := range pc.observers {
		o.OnPageChanged(page)
	}
}
