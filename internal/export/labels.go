package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

// CardInfo holds the data encoded into each layout card's QR code. Scanning
// a card gives everything needed to rebuild the layout in game.
type CardInfo struct {
	Structure string  `json:"structure"`
	Length    int     `json:"length"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Mode      string  `json:"mode"`
	MaxSpeed  float64 `json:"max_speed,omitempty"`
	Grid      [][]int `json:"grid,omitempty"`

	SpliterLayer   int   `json:"spliter_layer,omitempty"`
	HeatingElement int   `json:"heating_element,omitempty"`
	Production     int64 `json:"production,omitempty"`
}

// Title is the first line printed on the card.
func (c CardInfo) Title() string {
	return fmt.Sprintf("%s %dx%dx%d", c.Structure, c.Length, c.Width, c.Height)
}

// Card layout constants (3 columns x 4 rows on A4 portrait).
const (
	cardMarginTop  = 12.0
	cardMarginLeft = 7.5
	cardWidth      = 65.0
	cardHeight     = 68.0
	cardCols       = 3
	cardRows       = 4
	cardsPerPage   = cardCols * cardRows
	qrSize         = 40.0
	cardPadding    = 2.5
)

// CollectCardInfos builds one card per fission layout followed by one per
// feasible boiler layout.
func CollectCardInfos(report Report) []CardInfo {
	var cards []CardInfo
	for _, f := range report.Fissions {
		cards = append(cards, CardInfo{
			Structure: model.StructureFission.String(),
			Length:    f.Dims.Length,
			Width:     f.Dims.Width,
			Height:    f.Dims.Height,
			Mode:      f.Mode.String(),
			MaxSpeed:  f.MaxSpeed,
			Grid:      f.Grid.Rows(),
		})
	}
	for _, b := range report.Boilers {
		if !b.Feasible() {
			continue
		}
		cards = append(cards, CardInfo{
			Structure:      model.StructureBoiler.String(),
			Length:         b.Dims.Length,
			Width:          b.Dims.Width,
			Height:         b.Dims.Height,
			Mode:           b.Mode.String(),
			SpliterLayer:   b.SpliterLayer,
			HeatingElement: b.HeatingElement,
			Production:     b.Production,
		})
	}
	return cards
}

// ExportLayoutCards generates a PDF of QR-coded cards, one per layout. Each
// card prints the size, mode and headline figure next to a QR code holding
// the full layout as JSON.
func ExportLayoutCards(path string, report Report) error {
	cards := CollectCardInfos(report)
	if len(cards) == 0 {
		return ErrNothingToExport
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, card := range cards {
		if i%cardsPerPage == 0 {
			pdf.AddPage()
		}

		pos := i % cardsPerPage
		x := cardMarginLeft + float64(pos%cardCols)*cardWidth
		y := cardMarginTop + float64(pos/cardCols)*cardHeight

		if err := renderCard(pdf, x, y, i, card); err != nil {
			return fmt.Errorf("failed to render card for %s: %w", card.Title(), err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderCard draws a single card at the given position.
func renderCard(pdf *fpdf.Fpdf, x, y float64, index int, info CardInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, cardWidth, cardHeight, "D")

	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal card info: %w", err)
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d", index)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x+(cardWidth-qrSize)/2, y+cardPadding, qrSize, qrSize, false, opts, 0, "")

	textY := y + cardPadding + qrSize + 1
	textW := cardWidth - 2*cardPadding

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(x+cardPadding, textY)
	pdf.CellFormat(textW, 5, info.Title(), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(x+cardPadding, textY+5.5)
	pdf.CellFormat(textW, 4, info.Mode, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(x+cardPadding, textY+10)
	var detail string
	if info.Structure == model.StructureFission.String() {
		detail = fmt.Sprintf("Max speed %.2f", info.MaxSpeed)
	} else {
		detail = fmt.Sprintf("Separator %d, %d heaters, %d mB/t", info.SpliterLayer, info.HeatingElement, info.Production)
	}
	pdf.CellFormat(textW, 3.5, detail, "", 1, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}
