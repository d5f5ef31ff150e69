package lilylib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEcs_MakeEcs(t *testing.T) {
	ecs := MakeEcs()

	assert.Empty(t, ecs.archetypes)
	assert.Empty(t, ecs.entityIndex)
	assert.Equal(t, EntityId(0), ecs.entityIdCounter)
	assert.Equal(t, componentId(0), ecs.componentIdCounter)
}

func TestEcs_AddEntity(t *testing.T) {
	type TestComponent struct{ x string }
	ecs := MakeEcs()

	bare := ecs.addEntity()
	withComp := ecs.addEntity(TestComponent{x: "test"})

	require.True(t, ecs.hasEntity(bare))
	require.True(t, ecs.hasEntity(withComp))
	assert.NotEqual(t, ecs.entityIndex[bare], ecs.entityIndex[withComp],
		"entities with different components share an archetype")
	assert.Equal(t, "test", component[TestComponent](&ecs, withComp).x)
	assert.Nil(t, component[TestComponent](&ecs, bare))
}

func TestEcs_AddComponents(t *testing.T) {
	type TestComponent0 struct{ a int }
	type TestComponent1 struct{ x string }
	type TestComponent2 struct{ y string }

	ecs := MakeEcs()
	eid := ecs.addEntity(TestComponent0{a: 1337})
	ecs.addComponents(eid, TestComponent1{x: "test"}, &TestComponent2{y: "hello"})

	arch := ecs.archetypes[ecs.entityIndex[eid]]
	assert.Len(t, arch.componentData, 3)
	assert.Equal(t, 1337, component[TestComponent0](&ecs, eid).a)
	assert.Equal(t, "hello", component[TestComponent2](&ecs, eid).y)

	// Overwriting an existing component keeps the archetype.
	ecs.addComponents(eid, TestComponent0{a: 1})
	assert.Equal(t, arch, ecs.archetypes[ecs.entityIndex[eid]])
	assert.Equal(t, 1, component[TestComponent0](&ecs, eid).a)
}

func TestEcs_RemoveComponents(t *testing.T) {
	type Keep struct{ v int }
	type Drop struct{ v int }

	ecs := MakeEcs()
	eid := ecs.addEntity(Keep{v: 7}, Drop{v: 9})
	ecs.removeComponents(eid, Drop{})

	assert.Nil(t, component[Drop](&ecs, eid))
	assert.Equal(t, 7, component[Keep](&ecs, eid).v)
}

func TestEcs_RemoveEntityRecyclesRow(t *testing.T) {
	type C struct{ v int }

	ecs := MakeEcs()
	first := ecs.addEntity(C{v: 1})
	arch := ecs.archetypes[ecs.entityIndex[first]]
	ecs.removeEntity(first)

	assert.False(t, ecs.hasEntity(first))
	assert.Equal(t, []row{0}, arch.recycled)
	assert.Equal(t, C{}, arch.componentData[identify[C](&ecs)].([]C)[0], "freed rows are zeroed")

	second := ecs.addEntity(C{v: 2})
	assert.Empty(t, arch.recycled)
	assert.Equal(t, 1, columnLen(arch.componentData[identify[C](&ecs)]))
	assert.Equal(t, 2, component[C](&ecs, second).v)

	// Unknown ids are ignored.
	ecs.removeEntity(EntityId(999))
	ecs.addComponents(EntityId(999), C{})
}

func TestEcs_InvalidComponentPanics(t *testing.T) {
	ecs := MakeEcs()
	assert.Panics(t, func() { ecs.addEntity(42) })
	assert.Panics(t, func() { ecs.addEntity(nil) })
}

func TestEcs_ArchetypeKeyIgnoresOrder(t *testing.T) {
	type A struct{}
	type B struct{}

	ecs := MakeEcs()
	e1 := ecs.addEntity(A{}, B{})
	e2 := ecs.addEntity(&B{}, A{})
	assert.Equal(t, ecs.entityIndex[e1], ecs.entityIndex[e2])
}
