package tool

import (
	"sync"

	"k8s.io/klog/v2"

	"github.com/raids-lab/orbit/pkg/util"
)

// subscriberBuffer 是单个订阅者的事件缓冲大小，写满时丢弃事件而不是阻塞广播
const subscriberBuffer = 16

// boardHub 将 Issue 生命周期事件按项目分发给所有看板订阅者
type boardHub struct {
	mu          sync.RWMutex
	subscribers map[uint]map[chan util.IssueEvent]struct{}
}

func newBoardHub() *boardHub {
	return &boardHub{
		subscribers: make(map[uint]map[chan util.IssueEvent]struct{}),
	}
}

// pump 从控制器的事件通道持续读取并广播，随服务进程常驻
func (h *boardHub) pump(events <-chan util.IssueEvent) {
	for event := range events {
		h.broadcast(event)
	}
}

func (h *boardHub) broadcast(event util.IssueEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers[event.ProjectID] {
		select {
		case ch <- event:
		default:
			// 订阅者消费太慢，丢弃事件保证广播不被拖住
			klog.V(4).Infof("board subscriber of project %d is slow, dropped event %s", event.ProjectID, event.Operation)
		}
	}
}

func (h *boardHub) subscribe(projectID uint) chan util.IssueEvent {
	ch := make(chan util.IssueEvent, subscriberBuffer)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[projectID] == nil {
		h.subscribers[projectID] = make(map[chan util.IssueEvent]struct{})
	}
	h.subscribers[projectID][ch] = struct{}{}
	return ch
}

func (h *boardHub) unsubscribe(projectID uint, ch chan util.IssueEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subscribers[projectID], ch)
	if len(h.subscribers[projectID]) == 0 {
		delete(h.subscribers, projectID)
	}
}
