package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// ticketInfo is the data encoded into the job ticket's QR code.
type ticketInfo struct {
	JobNumber  string  `json:"job_number"`
	JobName    string  `json:"job_name,omitempty"`
	Customer   string  `json:"customer"`
	JobType    string  `json:"job_type"`
	Quantity   int     `json:"quantity"`
	CylinderMM float64 `json:"cylinder_mm"`
	RollMM     float64 `json:"roll_mm"`
	IssuedAt   string  `json:"issued_at"`
}

const ticketQRSize = 40.0 // mm

// WriteTicket renders a one-page PDF job ticket for the shop floor:
// job header, machine setup, material quantities and a QR code that
// encodes the job metadata as JSON.
func WriteTicket(path string, doc Document) error {
	info := ticketInfo{
		JobNumber:  doc.JobNumber,
		JobName:    doc.Job.Name,
		Customer:   doc.Job.CustomerName,
		JobType:    string(doc.Job.Type),
		Quantity:   doc.Job.Spec.Quantity,
		CylinderMM: doc.Result.CylinderMM,
		RollMM:     doc.Result.PaperRollMM,
		IssuedAt:   doc.IssuedAt.Format("02/01/2006 15:04:05"),
	}
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshaling ticket info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generating QR code: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Job Ticket", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, doc.JobNumber, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	imgName := "qr_" + doc.JobNumber
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, 210-ticketQRSize-15, 15, ticketQRSize, ticketQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	rows := []struct {
		label string
		value string
	}{
		{"Customer", doc.Job.CustomerName},
		{"Job Name", doc.Job.Name},
		{"Job Type", string(doc.Job.Type)},
		{"Quantity", fmt.Sprintf("%d bags", doc.Job.Spec.Quantity)},
		{"Cylinder", fmt.Sprintf("%.0f mm", doc.Result.CylinderMM)},
		{"Paper Roll", fmt.Sprintf("%.0f mm", doc.Result.PaperRollMM)},
		{"Paper (incl. waste)", fmt.Sprintf("%.2f kg", doc.Result.TotalWeightKG)},
		{"Side Glue", fmt.Sprintf("%.2f kg", doc.Result.SideGlueKG)},
		{"Bottom Glue", fmt.Sprintf("%.2f kg", doc.Result.BottomGlueKG)},
		{"Ink", fmt.Sprintf("%.2f kg", doc.Result.InkKG)},
		{"Issued", info.IssuedAt},
	}
	for _, r := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 7, r.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, r.value, "", 1, "L", false, 0, "")
	}

	return pdf.OutputFileAndClose(path)
}
