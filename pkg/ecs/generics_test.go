package ecs

import "testing"

func TestGenericAddAndGet(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Generic GetComponent should find the component")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("Expected (3, 4), got (%f, %f)", pos.X, pos.Y)
	}

	// 泛型和反射接口共享同一份存储
	if !em.HasComponent(id, typeOf[*testPositionComponent]()) {
		t.Error("Reflect API should see components added through the generic API")
	}
}

func TestGenericGetMissing(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Missing component should not be found")
	}
	if _, ok := GetComponent[*testVelocityComponent](em, EntityID(999)); ok {
		t.Error("Unknown entity should not have components")
	}
}

func TestGenericRemoveAndHas(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testTagComponent{})

	if !HasComponent[*testTagComponent](em, id) {
		t.Fatal("Tag should be present")
	}
	RemoveComponent[*testTagComponent](em, id)
	if HasComponent[*testTagComponent](em, id) {
		t.Error("Tag should be removed")
	}
}

func TestGetEntitiesWithN(t *testing.T) {
	em := NewEntityManager()

	a := em.CreateEntity()
	AddComponent(em, a, &testPositionComponent{})
	AddComponent(em, a, &testVelocityComponent{})
	AddComponent(em, a, &testTagComponent{})

	b := em.CreateEntity()
	AddComponent(em, b, &testPositionComponent{})
	AddComponent(em, b, &testVelocityComponent{})

	c := em.CreateEntity()
	AddComponent(em, c, &testPositionComponent{})

	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 3 {
		t.Errorf("Expected 3 entities with position, got %v", got)
	}
	if got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em); len(got) != 2 {
		t.Errorf("Expected 2 entities with position+velocity, got %v", got)
	}
	got := GetEntitiesWith3[*testPositionComponent, *testVelocityComponent, *testTagComponent](em)
	if len(got) != 1 || got[0] != a {
		t.Errorf("Expected [%d], got %v", a, got)
	}
}
