package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/cutwise/cutwise/internal/model"
)

// DXF layer names, one per line role so CNC controllers can address them
// separately.
const (
	dxfLayerBoard    = "BOARD"
	dxfLayerParts    = "PARTS"
	dxfLayerUpgraded = "UPGRADED"
)

// SaveLayoutDXF writes one DXF drawing per board into dir, creating it if
// needed, and returns the written file paths. The board outline and part
// rectangles live on separate layers; parts cut from upgraded material go on
// a red layer.
func (g *Generator) SaveLayoutDXF(input ReportInput, dir string) ([]string, error) {
	if len(input.Boards) == 0 {
		return nil, fmt.Errorf("no boards to export")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating dxf output directory: %w", err)
	}

	paths := make([]string, 0, len(input.Boards))
	for i, b := range input.Boards {
		path := filepath.Join(dir, dxfFileName(i+1, b.ID))
		if err := saveBoardDXF(b, path); err != nil {
			return nil, fmt.Errorf("exporting board %q: %w", b.ID, err)
		}
		g.logger.Debug("wrote board dxf", "board", b.ID, "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// dxfFileName builds a filesystem-safe name for one board's drawing.
func dxfFileName(num int, boardID string) string {
	safe := strings.NewReplacer("/", "-", "\\", "-", " ", "_").Replace(boardID)
	return fmt.Sprintf("board_%d_%s.dxf", num, safe)
}

func saveBoardDXF(b *model.Board, path string) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer(dxfLayerBoard, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("adding board layer: %w", err)
	}
	if err := dxfRect(d, 0, 0, b.TotalLength, b.TotalWidth); err != nil {
		return fmt.Errorf("drawing board outline: %w", err)
	}

	if _, err := d.AddLayer(dxfLayerParts, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("adding parts layer: %w", err)
	}
	if _, err := d.AddLayer(dxfLayerUpgraded, color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("adding upgraded layer: %w", err)
	}

	for _, p := range b.Parts {
		layer := dxfLayerParts
		if p.Upgraded {
			layer = dxfLayerUpgraded
		}
		if err := d.ChangeLayer(layer); err != nil {
			return fmt.Errorf("switching to layer %s: %w", layer, err)
		}
		if err := dxfRect(d, p.X, p.Y, p.PlacedLength(), p.PlacedWidth()); err != nil {
			return fmt.Errorf("drawing part %q: %w", p.ID, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("saving drawing: %w", err)
	}
	return nil
}

// dxfRect draws an axis-aligned rectangle as four line entities on the
// current layer.
func dxfRect(d *drawing.Drawing, x, y, w, h float64) error {
	lines := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}
