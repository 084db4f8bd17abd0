package components

import (
	"strings"

	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction is the main axis of a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children along one axis with an optional gap.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Alignment
	wrap      bool
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every non-empty child and joins them.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	style := s.ComputeStyle(ctx.Theme)
	childCtx := ctx.Shrink(style.GetHorizontalFrameSize())

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := Render(child, s.childContext(childCtx)); view != "" {
			views = append(views, view)
		}
	}

	var content string
	switch {
	case len(views) == 0:
	case s.direction == DirectionVertical:
		content = s.joinVertical(views)
	case s.wrap && childCtx.Width > 0:
		content = s.joinWrapped(views, childCtx.Width)
	default:
		content = s.joinHorizontal(views)
	}

	return style.Render(content)
}

func (s *Stack) childContext(ctx RenderContext) RenderContext {
	if s.direction == DirectionVertical || s.wrap || ctx.Width == 0 || len(s.children) == 0 {
		return ctx
	}
	gaps := s.gap * (len(s.children) - 1)
	return ctx.WithWidth(max((ctx.Width-gaps)/len(s.children), 1))
}

func (s *Stack) joinVertical(views []string) string {
	if s.gap == 0 {
		return lipgloss.JoinVertical(s.align.position(), views...)
	}
	gap := strings.Repeat("\n", s.gap-1)
	parts := make([]string, 0, len(views)*2)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinVertical(s.align.position(), parts...)
}

func (s *Stack) joinHorizontal(views []string) string {
	parts := make([]string, 0, len(views)*2)
	gap := strings.Repeat(" ", s.gap)
	for i, view := range views {
		if i > 0 && s.gap > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// joinWrapped lays views out in rows no wider than width.
func (s *Stack) joinWrapped(views []string, width int) string {
	var rows []string
	var row []string
	used := 0

	flush := func() {
		if len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
		row, used = nil, 0
	}

	for _, view := range views {
		w := lipgloss.Width(view)
		if len(row) > 0 && used+s.gap+w > width {
			flush()
		}
		if len(row) > 0 && s.gap > 0 {
			row = append(row, strings.Repeat(" ", s.gap))
			used += s.gap
		}
		row = append(row, view)
		used += w
	}
	flush()

	return s.joinRows(rows)
}

func (s *Stack) joinRows(rows []string) string {
	if s.gap > 0 && len(rows) > 1 {
		return strings.Join(rows, "\n\n")
	}
	return strings.Join(rows, "\n")
}

// WithDirection sets the main axis.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the space between children: blank lines for vertical
// stacks, columns for horizontal ones.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = max(gap, 0)
	return s
}

// WithAlign sets the cross-axis alignment of a vertical stack.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithWrap lets a horizontal stack flow onto new rows when it runs out of width.
func (s *Stack) WithWrap(wrap bool) *Stack {
	s.wrap = wrap
	return s
}

// WithStyle sets the stack style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers adds theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
