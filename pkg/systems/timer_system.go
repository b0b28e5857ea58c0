package systems

import (
	"github.com/decker502/pumpballoon/pkg/components"
	"github.com/decker502/pumpballoon/pkg/ecs"
)

// TimerSystem 推进一次性延迟回调
type TimerSystem struct {
	entityManager *ecs.EntityManager
}

// NewTimerSystem 创建定时器系统
func NewTimerSystem(em *ecs.EntityManager) *TimerSystem {
	return &TimerSystem{
		entityManager: em,
	}
}

// Update 推进所有延迟回调，到期的回调触发一次并销毁其实体
//
// 回调中新建的定时器不会在本帧被推进（查询结果在循环开始前已确定）。
func (s *TimerSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.DelayedCallComponent](s.entityManager)

	for _, id := range entities {
		call, ok := ecs.GetComponent[*components.DelayedCallComponent](s.entityManager, id)
		if !ok || call.Fired {
			continue
		}

		call.Elapsed += deltaTime
		if call.Elapsed < call.Delay {
			continue
		}

		call.Fired = true
		s.entityManager.DestroyEntity(id)
		if call.Callback != nil {
			call.Callback()
		}
	}
}

// Pending 返回尚未触发的延迟回调数量
func (s *TimerSystem) Pending() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.DelayedCallComponent](s.entityManager) {
		if call, ok := ecs.GetComponent[*components.DelayedCallComponent](s.entityManager, id); ok && !call.Fired {
			count++
		}
	}
	return count
}
