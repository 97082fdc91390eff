package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/arena"
)

func NewEntityBrowser() EntityBrowser {
	return EntityBrowser{selected: "ball"}
}

// Selected returns the name of the entity picked in the browser.
func (eb *EntityBrowser) Selected() string {
	return eb.selected
}

func (eb *EntityBrowser) Render(world *arena.World) {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Center")
		imgui.TableSetupColumn("Velocity")
		imgui.TableSetupColumn("Size")
		imgui.TableHeadersRow()

		for _, entity := range Entities(world) {
			s := entity.Shape
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(entity.Name, eb.selected == entity.Name, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = entity.Name
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%.3f, %.3f)", s.CenterX(), s.CenterY()))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%.4f, %.4f)", s.Velocity.X, s.Velocity.Y))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f x %.3f", 2*s.HalfWidth(), 2*s.HalfHeight()))
		}

		imgui.EndTable()
	}

	imgui.End()
}
