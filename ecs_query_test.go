package lilylib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Map(t *testing.T) {
	type Comp1 struct{ a int }
	type Comp2 struct{ b float32 }
	type Comp3 struct{}

	ecs := MakeEcs()
	ecs.addEntity(Comp1{a: 1})                                 // comp1 only                       -- shouldn't match
	id2 := ecs.addEntity(Comp1{a: 2}, Comp2{b: 1.37})          // comp1 & comp2                    -- should match
	id3 := ecs.addEntity(Comp1{a: 3}, Comp2{b: 4.20}, Comp3{}) // comp1 & comp2 + something extra  -- should match
	ecs.addEntity(Comp1{a: 4}, Comp3{})                        // comp1 + something extra          -- shouldn't match
	ecs.addEntity(Comp2{b: 3.14})                              // comp2 only                       -- shouldn't match

	got := map[EntityId]int{}
	Query2[Comp1, Comp2]{ecs: &ecs}.Map(func(eid EntityId, c1 *Comp1, c2 *Comp2) bool {
		got[eid] = c1.a
		return true
	})

	assert.Equal(t, map[EntityId]int{id2: 2, id3: 3}, got)
}

func TestQuery_MapMutatesInPlace(t *testing.T) {
	type Counter struct{ n int }

	ecs := MakeEcs()
	eid := ecs.addEntity(Counter{})
	q := Query1[Counter]{ecs: &ecs}
	for i := 0; i < 3; i++ {
		q.Map(func(_ EntityId, c *Counter) bool {
			c.n++
			return true
		})
	}
	assert.Equal(t, 3, component[Counter](&ecs, eid).n)
}

func TestQuery_Optionals(t *testing.T) {
	type Body struct{}
	type Tag struct{ name string }

	ecs := MakeEcs()
	tagged := ecs.addEntity(Body{}, Tag{name: "x"})
	plain := ecs.addEntity(Body{})

	seen := map[EntityId]*Tag{}
	Query2[Body, Tag]{ecs: &ecs}.Map(func(eid EntityId, _ *Body, tag *Tag) bool {
		seen[eid] = tag
		return true
	}, Tag{})

	assert.Len(t, seen, 2)
	assert.Equal(t, "x", seen[tagged].name)
	assert.Nil(t, seen[plain])
}

func TestQuery_StopsEarly(t *testing.T) {
	type C struct{}

	ecs := MakeEcs()
	for i := 0; i < 5; i++ {
		ecs.addEntity(C{})
	}
	calls := 0
	Query1[C]{ecs: &ecs}.Map(func(EntityId, *C) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}

func TestQuery3_Map(t *testing.T) {
	type A struct{ v int }
	type B struct{ v int }
	type C struct{ v int }

	ecs := MakeEcs()
	eid := ecs.addEntity(A{1}, B{2}, C{3})
	ecs.addEntity(A{1}, B{2})

	sum := map[EntityId]int{}
	Query3[A, B, C]{ecs: &ecs}.Map(func(id EntityId, a *A, b *B, c *C) bool {
		sum[id] = a.v + b.v + c.v
		return true
	})
	assert.Equal(t, map[EntityId]int{eid: 6}, sum)
}
