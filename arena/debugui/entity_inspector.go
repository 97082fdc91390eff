package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/arena"
)

func NewEntityInspector() EntityInspector {
	return EntityInspector{edits: make(map[string]float32)}
}

func (ei *EntityInspector) Render(world *arena.World, commands *arena.Commands, selected string) {
	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	var shape *arena.Shape
	for _, entity := range Entities(world) {
		if entity.Name == selected {
			shape = entity.Shape
		}
	}
	if shape == nil {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	start := shape.Start()
	imgui.Text(fmt.Sprintf("Entity: %s", selected))
	imgui.Text(fmt.Sprintf("Start: (%.3f, %.3f)", start.X, start.Y))
	imgui.Text(fmt.Sprintf("Half extents: %.3f x %.3f", shape.HalfWidth(), shape.HalfHeight()))
	imgui.Separator()

	val := reflect.ValueOf(shape).Elem()
	for _, field := range exportedFields(val.Type()) {
		ei.renderField(selected+"."+field.Name, field.Name, val.FieldByIndex(field.Index), field.Index, shape, commands)
	}

	imgui.End()
}

func (ei *EntityInspector) renderField(key, name string, val reflect.Value, path []int, shape *arena.Shape, commands *arena.Commands) {
	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		v, editing := ei.edits[key]
		if !editing {
			v = float32(val.Float())
		}
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", key), &v) {
			ei.edits[key] = v
			QueueFloatEdit(commands, shape, path, v)
			commands.Defer(func() { delete(ei.edits, key) })
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, nf := range exportedFields(val.Type()) {
				nested := append(append([]int{}, path...), nf.Index...)
				ei.renderField(key+"."+nf.Name, nf.Name, val.FieldByIndex(nf.Index), nested, shape, commands)
			}
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

// exportedFields lists the fields of struct type t the inspector may edit.
// Shape keeps its start and extents unexported, so only Offset and Velocity
// show up.
func exportedFields(t reflect.Type) []reflect.StructField {
	var fields []reflect.StructField
	for i := range t.NumField() {
		if f := t.Field(i); f.IsExported() {
			fields = append(fields, f)
		}
	}
	return fields
}

// QueueFloatEdit defers setting the float field of shape reached by the
// field index path. The edit is applied when the driver flushes commands.
func QueueFloatEdit(commands *arena.Commands, shape *arena.Shape, path []int, value float32) {
	commands.Defer(func() {
		field := reflect.ValueOf(shape).Elem().FieldByIndex(path)
		if field.CanSet() {
			field.SetFloat(float64(value))
		}
	})
}
