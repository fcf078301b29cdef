package export

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/cutwise/cutwise/internal/model"
)

// partColor represents an RGB fill color for a placed part.
type partColor struct {
	R, G, B int
}

// partColors is the categorical palette cycled by placement index so
// adjacent parts stay visually distinct.
var partColors = []partColor{
	{R: 178, G: 223, B: 219}, // light teal
	{R: 255, G: 249, B: 196}, // light yellow
	{R: 248, G: 187, B: 217}, // light pink
	{R: 200, G: 230, B: 201}, // light green
	{R: 225, G: 190, B: 231}, // light purple
	{R: 255, G: 204, B: 188}, // light orange
	{R: 220, G: 237, B: 200}, // light lime
	{R: 255, G: 205, B: 210}, // light red
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 12.0
	marginBottom = 12.0
	headerHeight = 8.0
	legendWidth  = 62.0 // right-hand column reserved for the parts legend
	drawAreaTop  = marginTop + headerHeight + 12.0
)

// maxGuideLineBoards caps the batch size for which cut-guide overlays are
// drawn. Guide derivation is O(parts) per board and the dashed grid turns
// unreadable on large batches.
const maxGuideLineBoards = 10

// LayoutPDF renders one cutting-diagram page per board and returns the
// finished multi-page PDF. Cut-guide lines are overlaid only when the batch
// has at most maxGuideLineBoards boards.
func (g *Generator) LayoutPDF(input ReportInput) ([]byte, error) {
	if len(input.Boards) == 0 {
		return nil, fmt.Errorf("no boards to render")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	withGuides := len(input.Boards) <= maxGuideLineBoards
	for i, board := range input.Boards {
		pdf.AddPage()
		renderBoardPage(pdf, board, i+1, input.OrderName, withGuides)
		g.logger.Debug("rendered board page", "board", board.ID, "parts", len(board.Parts))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering layout pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// renderBoardPage draws a single board's cutting diagram on the current page.
func renderBoardPage(pdf *fpdf.Fpdf, board *model.Board, boardNum int, orderName string, withGuides bool) {
	// Title block
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Cutting Layout - Board %d: %s", boardNum, board.ID)
	if orderName != "" {
		title = fmt.Sprintf("%s - Board %d: %s", orderName, boardNum, board.ID)
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	info := fmt.Sprintf("Material: %s  |  Size: %.0f x %.0f mm  |  Parts: %d  |  Utilization: %.1f%%",
		board.Material.FullMaterialString, board.TotalLength, board.TotalWidth, len(board.Parts), board.Utilization())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, info, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(marginLeft, marginTop+headerHeight+5)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Markers: R = rotated part, U = upgraded material", "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// Drawing area, leaving the right column for the legend.
	drawWidth := pageWidth - marginLeft - marginRight - legendWidth
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scaleX := drawWidth / board.TotalLength
	scaleY := drawHeight / board.TotalWidth
	scale := math.Min(scaleX, scaleY)

	canvasW := board.TotalLength * scale
	canvasH := board.TotalWidth * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Board background (wood color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Placed parts. Placement origin is the top-left corner of the part;
	// the page shares that orientation so no axis flip is needed.
	for i, p := range board.Parts {
		col := partColors[i%len(partColors)]
		pw := p.PlacedLength() * scale
		ph := p.PlacedWidth() * scale
		px := offsetX + p.X*scale
		py := offsetY + p.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		if p.Upgraded {
			pdf.SetDrawColor(200, 0, 0)
			pdf.SetLineWidth(0.6)
		} else {
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.3)
		}
		pdf.Rect(px, py, pw, ph, "FD")

		// Part label (only if the rectangle is large enough)
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "B", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.ID + partMarkers(p)
			dims := fmt.Sprintf("%.0fx%.0f", p.PlacedLength(), p.PlacedWidth())

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	if withGuides {
		drawCutGuides(pdf, board, scale, offsetX, offsetY, canvasW, canvasH)
	}

	drawDimensionAnnotations(pdf, board, offsetX, offsetY, canvasW, canvasH)
	drawPartsLegend(pdf, board, marginLeft+drawWidth+5, drawAreaTop)
}

// partMarkers returns the glyph suffix for a part's label: "R" when rotated,
// "U" when cut from upgraded material.
func partMarkers(p model.Part) string {
	m := ""
	if p.Rotated {
		m += " R"
	}
	if p.Upgraded {
		m += " U"
	}
	return m
}

// guideBoundaries collects the distinct part-edge coordinates along one
// axis, keeping only values strictly inside (0, limit). The board's own
// edges are never guide cuts.
func guideBoundaries(edges []float64, limit float64) []float64 {
	seen := make(map[float64]struct{}, len(edges))
	var out []float64
	for _, v := range edges {
		if v <= 0 || v >= limit {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// drawCutGuides overlays dashed dark-red lines at every distinct part edge,
// the saw operator's cut sequence hints.
func drawCutGuides(pdf *fpdf.Fpdf, board *model.Board, scale, offsetX, offsetY, canvasW, canvasH float64) {
	var xEdges, yEdges []float64
	for _, p := range board.Parts {
		xEdges = append(xEdges, p.X, p.X+p.PlacedLength())
		yEdges = append(yEdges, p.Y, p.Y+p.PlacedWidth())
	}

	pdf.SetDrawColor(139, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.SetDashPattern([]float64{1.5, 1.5}, 0)

	for _, x := range guideBoundaries(xEdges, board.TotalLength) {
		gx := offsetX + x*scale
		pdf.Line(gx, offsetY, gx, offsetY+canvasH)
	}
	for _, y := range guideBoundaries(yEdges, board.TotalWidth) {
		gy := offsetY + y*scale
		pdf.Line(offsetX, gy, offsetX+canvasW, gy)
	}

	pdf.SetDashPattern([]float64{}, 0)
}

// drawDimensionAnnotations adds length and width labels outside the board
// rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, board *model.Board, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Length annotation (below the board)
	lengthLabel := fmt.Sprintf("%.0f mm", board.TotalLength)
	lLabelW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX+(canvasW-lLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(lLabelW, 4, lengthLabel, "", 0, "C", false, 0, "")

	// Width annotation (to the left of the board, rotated)
	widthLabel := fmt.Sprintf("%.0f mm", board.TotalWidth)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX-3-wLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawPartsLegend renders the side legend: one swatch and line per placed
// part, in placement order.
func drawPartsLegend(pdf *fpdf.Fpdf, board *model.Board, startX, startY float64) {
	if len(board.Parts) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(startX, startY)
	pdf.CellFormat(legendWidth, 4, "Parts on this board:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	y := startY + 5
	maxY := pageHeight - marginBottom - 4

	for i, p := range board.Parts {
		if y > maxY {
			pdf.SetXY(startX, y)
			pdf.CellFormat(legendWidth, 4, fmt.Sprintf("+ %d more", len(board.Parts)-i), "", 0, "L", false, 0, "")
			break
		}

		col := partColors[i%len(partColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		if p.Upgraded {
			pdf.SetDrawColor(200, 0, 0)
		} else {
			pdf.SetDrawColor(30, 30, 30)
		}
		pdf.SetLineWidth(0.2)
		pdf.Rect(startX, y+0.5, 3, 3, "FD")

		label := fmt.Sprintf("%s (%.0fx%.0f)%s", p.ID, p.PlacedLength(), p.PlacedWidth(), partMarkers(p))
		pdf.SetXY(startX+4, y)
		pdf.CellFormat(legendWidth-4, 4, label, "", 0, "L", false, 0, "")

		y += 4.5
	}
}

// labelFontSize returns an appropriate font size based on the rectangle
// dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
