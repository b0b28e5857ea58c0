package entities

import (
	"github.com/decker502/pumpballoon/pkg/components"
	"github.com/decker502/pumpballoon/pkg/ecs"
)

// NewDelayedCall 创建一个一次性延迟回调实体，由 TimerSystem 在 delay 秒后触发
func NewDelayedCall(em *ecs.EntityManager, delay float64, callback func()) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.DelayedCallComponent{
		Delay:    delay,
		Callback: callback,
	})
	return id
}
