package screens

import (
	"fmt"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"github.com/user-none/harbourkiosk/ui/style"
)

// maxProblemLines caps how many validation problems are listed
const maxProblemLines = 12

// ErrorScreen displays startup errors for a broken layout file
type ErrorScreen struct {
	callback ScreenCallback
	filepath string   // Layout file that failed
	problems []string // One line per problem
}

// NewErrorScreen creates a new error screen
func NewErrorScreen(callback ScreenCallback, filepath string, problems []string) *ErrorScreen {
	return &ErrorScreen{
		callback: callback,
		filepath: filepath,
		problems: problems,
	}
}

// Build creates the error screen UI
func (s *ErrorScreen) Build() *widget.Container {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	centerContent := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleFace := style.FacePtr(style.BoldFace(style.TitleSize))
	bodyFace := style.FacePtr(style.FontFace(style.LabelSize))

	centerContent.AddChild(widget.NewText(
		widget.TextOpts.Text("Layout Error", titleFace, style.Error),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	))

	msgText := fmt.Sprintf("The layout \"%s\" could not be used.", s.filepath)
	centerContent.AddChild(widget.NewText(
		widget.TextOpts.Text(msgText, bodyFace, style.Text),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	))

	// Problem list
	for i, p := range s.problems {
		if i == maxProblemLines {
			more := fmt.Sprintf("... and %d more", len(s.problems)-maxProblemLines)
			centerContent.AddChild(widget.NewText(
				widget.TextOpts.Text(more, bodyFace, style.TextSecondary),
			))
			break
		}
		centerContent.AddChild(widget.NewText(
			widget.TextOpts.Text("- "+p, bodyFace, style.TextSecondary),
		))
	}

	buttonsContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)

	buttonsContainer.AddChild(style.PrimaryTextButton("Use Built-in Layout", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		s.callback.UseDefaultLayout()
	}))
	buttonsContainer.AddChild(style.TextButton("Exit", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		s.callback.Exit()
	}))

	centerContent.AddChild(buttonsContainer)
	rootContainer.AddChild(centerContent)

	return rootContainer
}

// OnEnter is called when entering the error screen
func (s *ErrorScreen) OnEnter() {
	// Nothing to do
}

// OnExit is called when leaving the error screen
func (s *ErrorScreen) OnExit() {
	// Nothing to clean up
}
