// mosaicsnap renders a sample layout before and after a scripted
// drag-and-drop edit, sized to the current terminal. Useful for checking
// the engine and renderer without an interactive session.
package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/kungfusheep/mosaic"
)

func terminalSize() (int, int) {
	width, height := 100, 24
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil && ws.Col > 0 {
			width, height = int(ws.Col), int(ws.Row)
		}
	}
	return width, height
}

func main() {
	width, height := terminalSize()
	paneH := (height - 4) / 2
	if paneH < 6 {
		paneH = 6
	}

	ctrl := mosaic.NewController(mosaic.NewBranch("root", mosaic.AxisHorizontal,
		mosaic.NewLeaf("editor", nil),
		mosaic.NewBranch("side", mosaic.AxisVertical,
			mosaic.NewLeaf("files", nil),
			mosaic.NewLeaf("terminal", nil),
		),
	))
	ctrl.SetEditMode(true)
	renderer := mosaic.NewRenderer()

	fmt.Printf("before  %s\n", mosaic.DescribeTree(ctrl.Root()))
	fmt.Println(renderer.Render(ctrl.Snapshot(), width, paneH))

	// drag "terminal" onto the editor's bottom edge
	bounds := mosaic.Rect{W: float64(width), H: float64(paneH)}
	panes := mosaic.LayoutTree(ctrl.Root(), bounds, 0)

	srcPath, ok := ctrl.FindPathByID("terminal")
	if !ok {
		fmt.Fprintln(os.Stderr, "mosaicsnap: no terminal pane")
		os.Exit(1)
	}
	item := mosaic.DragItem{ID: "terminal", Kind: "pane", OriginalPath: srcPath}
	ctrl.OnDragStart(item)

	target, ok := mosaic.HitTest(panes, mosaic.Point{X: 1, Y: 1})
	if !ok {
		fmt.Fprintln(os.Stderr, "mosaicsnap: hit test missed")
		os.Exit(1)
	}
	hover := mosaic.Point{X: target.Rect.W / 2, Y: target.Rect.H - 1} // bottom zone
	ctrl.OnHoverUpdate(hover, target.Rect.Size(), target.ID, target.Path)

	dragged := ctrl.NodeAtPath(srcPath)
	if !ctrl.OnDrop(item, func() mosaic.Node { return dragged }) {
		fmt.Fprintln(os.Stderr, "mosaicsnap: drop failed")
		os.Exit(1)
	}
	ctrl.OnDragEnd()

	fmt.Printf("after   %s\n", mosaic.DescribeTree(ctrl.Root()))
	fmt.Println(renderer.Render(ctrl.Snapshot(), width, paneH))
}
