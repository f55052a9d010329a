package manager

import (
	"snaker/game/entity"
	"snaker/game/types"
)

// MoveResult describes what happened during one simulation step.
type MoveResult struct {
	Dead    bool
	AteFood bool
	Head    types.Point
}

type CollisionManager struct {
	foodMgr *FoodManager
}

func NewCollisionManager(foodMgr *FoodManager) *CollisionManager {
	return &CollisionManager{foodMgr: foodMgr}
}

// HandleMovement advances the snake and resolves the food check. A dead snake
// never eats.
func (cm *CollisionManager) HandleMovement(snake *entity.Snake) MoveResult {
	if snake.Update() == entity.Dead {
		return MoveResult{Dead: true, Head: snake.GetHead()}
	}

	head := snake.GetHead()
	if !cm.IsFoodCollision(head) {
		return MoveResult{Head: head}
	}

	snake.Eat()
	cm.foodMgr.Respawn()
	return MoveResult{AteFood: true, Head: head}
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point) bool {
	return pos == cm.foodMgr.GetFood()
}
