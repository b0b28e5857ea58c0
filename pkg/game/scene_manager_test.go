package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {}

func TestSceneManagerWithoutScene(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("expected no scene initially")
	}

	// 没有场景时 Update/Draw 不应 panic
	sm.Update(1.0 / 60.0)
	sm.Draw(nil)
}

func TestSceneManagerUpdateForwardsDeltaTime(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{}
	sm.SwitchTo(scene)

	sm.Update(0.016)

	if !scene.updateCalled {
		t.Fatal("scene Update was not called")
	}
	if scene.deltaTime != 0.016 {
		t.Errorf("expected deltaTime 0.016, got %f", scene.deltaTime)
	}
}

func TestSceneManagerRestart(t *testing.T) {
	tests := []struct {
		name     string
		factory  SceneFactory
		wantSwap bool
	}{
		{
			name:     "no factory keeps scene",
			factory:  nil,
			wantSwap: false,
		},
		{
			name: "factory error keeps scene",
			factory: func() (Scene, error) {
				return nil, errors.New("boom")
			},
			wantSwap: false,
		},
		{
			name: "factory success swaps scene",
			factory: func() (Scene, error) {
				return &MockScene{}, nil
			},
			wantSwap: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			original := &MockScene{}
			sm.SwitchTo(original)
			sm.SetSceneFactory(tt.factory)

			sm.Restart()

			swapped := sm.GetCurrentScene() != Scene(original)
			if swapped != tt.wantSwap {
				t.Errorf("expected swapped=%v, got %v", tt.wantSwap, swapped)
			}
		})
	}
}
