package lilylib

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"reflect"
	"slices"
	"sync"
)

type EntityId uint64
type archetypeId uint64
type archetypeKey []componentId
type componentId uint32
type row int
type set[T comparable] = map[T]struct{}

// Ecs stores components in archetypes: one typed slice per component type,
// shared by every entity with exactly the same set of component types.
type Ecs struct {
	archetypes  map[archetypeId]*archetype
	entityIndex map[EntityId]archetypeId

	idLock          sync.Mutex
	entityIdCounter EntityId

	componentLock      sync.Mutex
	componentIdCounter componentId
	componentTypeIdMap map[reflect.Type]componentId
	componentIdTypeMap map[componentId]reflect.Type
}

func MakeEcs() Ecs {
	return Ecs{
		archetypes:         make(map[archetypeId]*archetype),
		entityIndex:        make(map[EntityId]archetypeId),
		componentTypeIdMap: make(map[reflect.Type]componentId),
		componentIdTypeMap: make(map[componentId]reflect.Type),
	}
}

type archetype struct {
	id            archetypeId
	key           archetypeKey
	entities      map[EntityId]row
	componentData map[componentId]any // []T per component, built via reflection
	recycled      []row
}

func (ecs *Ecs) addEntity(components ...any) EntityId {
	return ecs.insertEntity(ecs.nextEntityId(), components...)
}

func (ecs *Ecs) insertEntity(entityId EntityId, components ...any) EntityId {
	archId, arch := ecs.getOrMakeArchetype(ecs.keyOf(components...))

	r := ecs.reserveRow(arch)
	arch.entities[entityId] = r
	for _, component := range components {
		ecs.writeComponent(arch, r, component)
	}
	ecs.entityIndex[entityId] = archId
	return entityId
}

func (ecs *Ecs) hasEntity(entityId EntityId) bool {
	_, ok := ecs.entityIndex[entityId]
	return ok
}

func (ecs *Ecs) removeEntity(entityId EntityId) {
	if !ecs.hasEntity(entityId) {
		return
	}
	ecs.releaseRow(entityId)
}

func (ecs *Ecs) addComponents(entityId EntityId, components ...any) {
	if !ecs.hasEntity(entityId) {
		return
	}
	src := ecs.archetypes[ecs.entityIndex[entityId]]
	srcRow := src.entities[entityId]

	dstId, dst := ecs.getOrMakeArchetype(sortedKey(append(slices.Clone(src.key), ecs.keyOf(components...)...)))
	if dst == src {
		for _, component := range components {
			ecs.writeComponent(src, srcRow, component)
		}
		return
	}
	dstRow := ecs.reserveRow(dst)

	ecs.copyRow(src, srcRow, dst, dstRow)
	for _, component := range components {
		ecs.writeComponent(dst, dstRow, component)
	}
	ecs.releaseRow(entityId)

	dst.entities[entityId] = dstRow
	ecs.entityIndex[entityId] = dstId
}

func (ecs *Ecs) removeComponents(entityId EntityId, components ...any) {
	if !ecs.hasEntity(entityId) {
		return
	}
	src := ecs.archetypes[ecs.entityIndex[entityId]]
	srcRow := src.entities[entityId]

	drop := make(set[componentId])
	for _, id := range ecs.keyOf(components...) {
		drop[id] = struct{}{}
	}
	var key archetypeKey
	for _, id := range src.key {
		if _, ok := drop[id]; !ok {
			key = append(key, id)
		}
	}

	dstId, dst := ecs.getOrMakeArchetype(key)
	if dst == src {
		return
	}
	dstRow := ecs.reserveRow(dst)
	ecs.copyRow(src, srcRow, dst, dstRow)
	ecs.releaseRow(entityId)

	dst.entities[entityId] = dstRow
	ecs.entityIndex[entityId] = dstId
}

// copyRow copies the components both archetypes have in common.
func (ecs *Ecs) copyRow(src *archetype, srcRow row, dst *archetype, dstRow row) {
	for _, id := range src.key {
		dstData, ok := dst.componentData[id]
		if !ok {
			continue
		}
		setColumn(dstData, int(dstRow), columnAt(src.componentData[id], int(srcRow)))
	}
}

func (ecs *Ecs) writeComponent(arch *archetype, r row, component any) {
	value := reflect.ValueOf(component)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		panic(fmt.Errorf("expected component to be a struct or a pointer to a struct, got %s", value.Kind()))
	}
	id := ecs.getComponentId(value.Type())
	setColumn(arch.componentData[id], int(r), value)
}

// releaseRow detaches the entity from its archetype and frees the row. The
// row is zeroed so recycled rows never leak component pointers.
func (ecs *Ecs) releaseRow(entityId EntityId) {
	arch := ecs.archetypes[ecs.entityIndex[entityId]]
	r := arch.entities[entityId]
	for _, id := range arch.key {
		setColumn(arch.componentData[id], int(r), reflect.Zero(ecs.componentIdTypeMap[id]))
	}
	arch.recycled = append(arch.recycled, r)

	delete(arch.entities, entityId)
	delete(ecs.entityIndex, entityId)
}

func (ecs *Ecs) getOrMakeArchetype(key archetypeKey) (archetypeId, *archetype) {
	id := getArchetypeId(key)
	if arch, ok := ecs.archetypes[id]; ok {
		return id, arch
	}

	arch := &archetype{
		id:            id,
		key:           key,
		entities:      make(map[EntityId]row),
		componentData: make(map[componentId]any),
	}
	for _, cid := range key {
		arch.componentData[cid] = makeColumn(ecs.componentIdTypeMap[cid])
	}
	ecs.archetypes[id] = arch
	return id, arch
}

func (ecs *Ecs) reserveRow(arch *archetype) row {
	if n := len(arch.recycled); n > 0 {
		r := arch.recycled[n-1]
		arch.recycled = arch.recycled[:n-1]
		return r
	}

	r := row(len(arch.entities))
	for _, cid := range arch.key {
		arch.componentData[cid] = appendColumn(arch.componentData[cid], reflect.Zero(ecs.componentIdTypeMap[cid]))
	}
	return r
}

// keyOf returns the archetype key (sorted, deduplicated component ids) of a
// component list.
func (ecs *Ecs) keyOf(components ...any) archetypeKey {
	var key archetypeKey
	for _, component := range components {
		t := reflect.TypeOf(component)
		if t == nil {
			panic("component should be a struct, got nil")
		}
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			panic("component should be a struct")
		}
		key = append(key, ecs.getComponentId(t))
	}
	return sortedKey(key)
}

func sortedKey(key archetypeKey) archetypeKey {
	key = slices.Clone(key)
	slices.Sort(key)
	return slices.Compact(key)
}

// getArchetypeId hashes a key. Ids are cheaper to compare than keys; a
// collision would merge two archetypes.
func getArchetypeId(key archetypeKey) archetypeId {
	hash := fnv.New64a()
	b := make([]byte, 4)
	for _, cid := range key {
		binary.LittleEndian.PutUint32(b, uint32(cid))
		hash.Write(b)
	}
	return archetypeId(hash.Sum64())
}

func (ecs *Ecs) nextEntityId() EntityId {
	ecs.idLock.Lock()
	defer ecs.idLock.Unlock()

	id := ecs.entityIdCounter
	ecs.entityIdCounter++
	return id
}

func (ecs *Ecs) getComponentId(componentType reflect.Type) componentId {
	ecs.componentLock.Lock()
	defer ecs.componentLock.Unlock()

	if id, ok := ecs.componentTypeIdMap[componentType]; ok {
		return id
	}
	id := ecs.componentIdCounter
	ecs.componentIdCounter++
	ecs.componentTypeIdMap[componentType] = id
	ecs.componentIdTypeMap[id] = componentType
	return id
}

// component returns a pointer to the entity's component of type T, or nil.
func component[T any](ecs *Ecs, entityId EntityId) *T {
	archId, ok := ecs.entityIndex[entityId]
	if !ok {
		return nil
	}
	arch := ecs.archetypes[archId]
	var zero T
	data, ok := arch.componentData[ecs.getComponentId(reflect.TypeOf(zero))]
	if !ok {
		return nil
	}
	return &data.([]T)[arch.entities[entityId]]
}

// Column helpers. Each archetype column is a []T held as any.

func makeColumn(elem reflect.Type) any {
	return reflect.MakeSlice(reflect.SliceOf(elem), 0, 4).Interface()
}

func columnAt(slice any, idx int) reflect.Value {
	return reflect.ValueOf(slice).Index(idx)
}

func setColumn(slice any, idx int, val reflect.Value) {
	reflect.ValueOf(slice).Index(idx).Set(val)
}

func appendColumn(slice any, val reflect.Value) any {
	return reflect.Append(reflect.ValueOf(slice), val).Interface()
}

func columnLen(slice any) int {
	return reflect.ValueOf(slice).Len()
}
