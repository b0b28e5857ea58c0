package components

// DelayedCallComponent 一次性延迟回调
// 由 TimerSystem 推进，到期后恰好触发一次 Callback，随后实体被销毁
type DelayedCallComponent struct {
	Delay    float64 // 延迟时长（秒）
	Elapsed  float64 // 已经过的时间（秒）
	Callback func()
	Fired    bool
}
