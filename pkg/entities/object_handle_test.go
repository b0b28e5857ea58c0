package entities

import (
	"testing"

	"github.com/decker502/pumpballoon/pkg/components"
	"github.com/decker502/pumpballoon/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyOnlyTextures 不返回真实图片，只记录被请求的键
type keyOnlyTextures struct {
	requested []string
}

func (k *keyOnlyTextures) GetImage(key string) *ebiten.Image {
	k.requested = append(k.requested, key)
	return nil
}

func newBareEntity(em *ecs.EntityManager, movable bool) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 1130, Y: 390})
	em.AddComponent(id, &components.ScaleComponent{ScaleX: 1, ScaleY: 1})
	em.AddComponent(id, &components.SpriteComponent{TextureKey: "balloon", OriginX: 0.5, OriginY: 0.5, Visible: true})
	em.AddComponent(id, &components.ClickableComponent{Width: 300, Height: 300, IsEnabled: true})
	if movable {
		em.AddComponent(id, &components.VelocityComponent{})
	}
	return id
}

func TestObjectHandleWritesComponents(t *testing.T) {
	em := ecs.NewEntityManager()
	textures := &keyOnlyTextures{}
	id := newBareEntity(em, true)
	h := NewObjectHandle(em, textures, id)

	h.SetScale(0.35)
	h.SetPosition(10, 20)
	h.SetVelocity(-100, 0)
	h.SetVisible(false)
	h.SetTexture("balloonBurst")

	sc, _ := ecs.GetComponent[*components.ScaleComponent](em, id)
	if sc.ScaleX != 0.35 || sc.ScaleY != 0.35 || h.Scale() != 0.35 {
		t.Errorf("expected uniform scale 0.35, got (%f, %f)", sc.ScaleX, sc.ScaleY)
	}
	if x, y := h.Position(); x != 10 || y != 20 {
		t.Errorf("expected position (10, 20), got (%f, %f)", x, y)
	}
	if vx, vy := h.Velocity(); vx != -100 || vy != 0 {
		t.Errorf("expected velocity (-100, 0), got (%f, %f)", vx, vy)
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Visible {
		t.Error("sprite should be hidden")
	}
	if sprite.TextureKey != "balloonBurst" {
		t.Errorf("expected texture key balloonBurst, got %s", sprite.TextureKey)
	}
	if len(textures.requested) != 1 || textures.requested[0] != "balloonBurst" {
		t.Errorf("expected one lookup for balloonBurst, got %v", textures.requested)
	}

	// 相同纹理不重复查找
	h.SetTexture("balloonBurst")
	if len(textures.requested) != 1 {
		t.Errorf("same texture should not be looked up again, got %v", textures.requested)
	}
}

func TestObjectHandleStaticEntityIgnoresVelocity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newBareEntity(em, false)
	h := NewObjectHandle(em, nil, id)

	h.SetVelocity(5, 5)
	if vx, vy := h.Velocity(); vx != 0 || vy != 0 {
		t.Errorf("static entity should report zero velocity, got (%f, %f)", vx, vy)
	}
}

func TestObjectHandleOnPress(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newBareEntity(em, false)
	h := NewObjectHandle(em, nil, id)

	pressed := false
	h.OnPress(func() { pressed = true })

	clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, id)
	clickable.OnPress()
	if !pressed {
		t.Error("bound callback should run")
	}
}

func TestNewSpriteEntityMissingTexture(t *testing.T) {
	em := ecs.NewEntityManager()

	id, err := NewSpriteEntity(em, &keyOnlyTextures{}, SpriteSpec{Texture: "balloon"})
	if err == nil {
		t.Fatal("expected error for unloaded texture")
	}
	if id != ecs.InvalidEntity || em.EntityCount() != 0 {
		t.Error("no entity should be created on error")
	}
}

func TestNewDelayedCall(t *testing.T) {
	em := ecs.NewEntityManager()

	id := NewDelayedCall(em, 0.2, func() {})
	call, ok := ecs.GetComponent[*components.DelayedCallComponent](em, id)
	if !ok {
		t.Fatal("delayed call component missing")
	}
	if call.Delay != 0.2 || call.Fired || call.Callback == nil {
		t.Errorf("unexpected delayed call %+v", call)
	}
}
