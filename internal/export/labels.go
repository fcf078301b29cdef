package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/cutwise/cutwise/internal/model"
)

// LabelInfo holds the data encoded into each part label's QR code.
type LabelInfo struct {
	PartID   string  `json:"part_id"`
	BoardID  string  `json:"board_id"`
	Length   float64 `json:"length_mm"`
	Width    float64 `json:"width_mm"`
	X        float64 `json:"x_mm"`
	Y        float64 `json:"y_mm"`
	Rotated  bool    `json:"rotated"`
	Upgraded bool    `json:"upgraded"`
	Material string  `json:"material"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows
// per page). Each label cell is approximately 66.7mm x 25.4mm on US Letter.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// PartLabels generates a PDF of QR-coded labels, one per placed part. Each
// label carries the part identity, dimensions, and placement, plus a QR code
// encoding the same data as JSON for scanning at the saw. Labels are laid out
// on a standard label sheet format (Avery 5160 / 3 columns x 10 rows).
func (g *Generator) PartLabels(input ReportInput) ([]byte, error) {
	labels := CollectLabelInfos(input.Boards)
	if len(labels) == 0 {
		return nil, fmt.Errorf("no placed parts to label")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, i, label); err != nil {
			return nil, fmt.Errorf("rendering label for %q: %w", label.PartID, err)
		}
	}
	g.logger.Debug("rendered part labels", "labels", len(labels))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering label pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// CollectLabelInfos flattens the placed parts of all boards into label data,
// in board order then placement order.
func CollectLabelInfos(boards []*model.Board) []LabelInfo {
	var labels []LabelInfo
	for _, b := range boards {
		for _, p := range b.Parts {
			labels = append(labels, LabelInfo{
				PartID:   p.ID,
				BoardID:  b.ID,
				Length:   p.PlacedLength(),
				Width:    p.PlacedWidth(),
				X:        p.X,
				Y:        p.Y,
				Rotated:  p.Rotated,
				Upgraded: p.Upgraded,
				Material: p.EffectiveMaterial().String(),
			})
		}
	}
	return labels
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, seq int, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshaling label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generating QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%s", seq, info.PartID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	// Truncate the part id if too long
	partID := info.PartID
	if pdf.GetStringWidth(partID) > textW {
		for len(partID) > 0 && pdf.GetStringWidth(partID+"...") > textW {
			partID = partID[:len(partID)-1]
		}
		partID += "..."
	}
	pdf.CellFormat(textW, 4.5, partID, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.0f x %.0f mm", info.Length, info.Width)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	boardInfo := fmt.Sprintf("%s @ (%.0f, %.0f)", info.BoardID, info.X, info.Y)
	pdf.CellFormat(textW, 3, boardInfo, "", 1, "L", false, 0, "")

	if info.Rotated || info.Upgraded {
		notes := ""
		if info.Rotated {
			notes = "Rotated 90\xb0"
		}
		if info.Upgraded {
			if notes != "" {
				notes += ", "
			}
			notes += "Upgraded"
		}
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, notes, "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)

	return nil
}
