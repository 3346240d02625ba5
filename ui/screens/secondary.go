package screens

import (
	"image"

	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/user-none/harbourkiosk/layout"
	"github.com/user-none/harbourkiosk/ui/style"
)

// MenuTarget is what a tap on the secondary menu landed on
type MenuTarget struct {
	Home   bool
	Action layout.Hotspot
}

type menuButton struct {
	btn    *widget.Button
	target MenuTarget
}

// SecondaryMenuScreen lists the secondary menu actions as a centred column
// of buttons with a Home button below them. Taps are routed by the app
// through HitTest so they pass the gesture guard.
type SecondaryMenuScreen struct {
	menu    *layout.Secondary
	buttons []menuButton
}

// NewSecondaryMenuScreen creates the list screen for menu
func NewSecondaryMenuScreen(menu *layout.Secondary) *SecondaryMenuScreen {
	return &SecondaryMenuScreen{menu: menu}
}

// Build creates the secondary menu UI
func (s *SecondaryMenuScreen) Build() *widget.Container {
	s.buttons = s.buttons[:0]

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(style.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.LargeSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	if s.menu.Title != "" {
		column.AddChild(widget.NewText(
			widget.TextOpts.Text(s.menu.Title, style.FacePtr(style.BoldFace(style.TitleSize)), style.Text),
			widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			),
		))
	}

	for _, action := range s.menu.Actions {
		label, _ := style.TruncateEnd(action.Label, style.LabelMaxChars)
		btn := style.TextButton(label, style.ButtonPaddingLarge, nil, minWidth())
		column.AddChild(btn)
		s.buttons = append(s.buttons, menuButton{btn: btn, target: MenuTarget{Action: action}})
	}

	home := style.PrimaryTextButton("Home", style.ButtonPaddingLarge, nil, minWidth())
	column.AddChild(home)
	s.buttons = append(s.buttons, menuButton{btn: home, target: MenuTarget{Home: true}})

	rootContainer.AddChild(column)
	return rootContainer
}

func minWidth() widget.ButtonOpt {
	return widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(style.MenuButtonWidth, 0))
}

// HitTest returns the button under p. Button rects are only known once the
// container has been laid out by a UI update.
func (s *SecondaryMenuScreen) HitTest(p image.Point) (MenuTarget, bool) {
	for _, b := range s.buttons {
		if p.In(b.btn.GetWidget().Rect) {
			return b.target, true
		}
	}
	return MenuTarget{}, false
}

// OnEnter is called when entering the secondary menu
func (s *SecondaryMenuScreen) OnEnter() {
	// Nothing to do
}

// OnExit is called when leaving the secondary menu
func (s *SecondaryMenuScreen) OnExit() {
	// Nothing to clean up
}
