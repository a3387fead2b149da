// Package export writes the filled-in output documents for a job: the
// BOM workbook built from the shop's Excel template, and an optional
// QR-coded PDF job ticket.
package export

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/printhaus/bagbom/internal/model"
	"github.com/xuri/excelize/v2"
)

// ErrOutputExists means a BOM with the same job number has already
// been saved. Job numbers are derived by scanning prior outputs, so an
// existing file signals a numbering collision rather than something to
// overwrite.
var ErrOutputExists = errors.New("output file already exists")

// Document is everything that goes into one BOM workbook.
type Document struct {
	JobNumber string
	Job       model.Job
	Result    model.EstimationResult
	IssuedAt  time.Time
}

// Template cell addresses, matching the shop's BOM template layout.
const (
	cellJobNumber  = "B8"
	cellDate       = "F8"
	cellTime       = "J8"
	cellCustomer   = "B11"
	cellEmail      = "H11"
	cellMobile     = "B12"
	cellJobType    = "B14"
	cellWidth      = "D15"
	cellBottom     = "F15"
	cellHeight     = "H15"
	cellGSM        = "J15"
	cellQuantity   = "L15"
	cellPrinted    = "B16"
	colorRow       = 16
	firstColorCol  = 4 // column D; colors advance two columns each
	cellActHeight  = "E19"
	cellCylinder   = "E20"
	cellPaperRoll  = "E21"
	cellWeightBag  = "E22"
	cellFinished   = "E23"
	cellTotal      = "E24"
	cellSideGlue   = "E25"
	cellBottomGlue = "E26"
	cellInk        = "E27"
)

// WriteBOM fills the template workbook with the document and saves it
// as "<jobnumber>.xlsx" in saveDir, with a copy in backupDir. Both
// directories are created as needed. Returns the saved path.
func WriteBOM(templatePath, saveDir, backupDir string, doc Document) (string, error) {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("opening BOM template: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("BOM template %s has no sheets", templatePath)
	}
	sheet := sheets[0]

	if err := fillSheet(f, sheet, doc); err != nil {
		return "", err
	}

	if err := os.MkdirAll(saveDir, 0755); err != nil {
		return "", fmt.Errorf("creating save directory: %w", err)
	}
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}

	savePath := filepath.Join(saveDir, doc.JobNumber+".xlsx")
	if _, err := os.Stat(savePath); err == nil {
		return "", fmt.Errorf("%w: %s", ErrOutputExists, savePath)
	}

	if err := f.SaveAs(savePath); err != nil {
		return "", fmt.Errorf("saving BOM: %w", err)
	}
	if err := copyFile(savePath, filepath.Join(backupDir, doc.JobNumber+".xlsx")); err != nil {
		return "", fmt.Errorf("backing up BOM: %w", err)
	}
	return savePath, nil
}

func fillSheet(f *excelize.File, sheet string, doc Document) error {
	printed := "No"
	if doc.Job.Printed() {
		printed = "Yes"
	}

	cells := []struct {
		ref   string
		value interface{}
	}{
		{cellJobNumber, doc.JobNumber},
		{cellDate, doc.IssuedAt.Format("02/01/2006")},
		{cellTime, doc.IssuedAt.Format("15:04:05")},
		{cellCustomer, doc.Job.CustomerName},
		{cellEmail, doc.Job.CustomerEmail},
		{cellMobile, doc.Job.CustomerMobile},
		{cellJobType, string(doc.Job.Type)},
		{cellWidth, round2(doc.Job.Spec.WidthIn)},
		{cellBottom, round2(doc.Job.Spec.BottomIn)},
		{cellHeight, round2(doc.Job.Spec.HeightIn)},
		{cellGSM, doc.Job.Spec.GSM},
		{cellQuantity, doc.Job.Spec.Quantity},
		{cellPrinted, printed},
		{cellActHeight, round2(doc.Result.ActualHeightMM)},
		{cellCylinder, doc.Result.CylinderMM},
		{cellPaperRoll, doc.Result.PaperRollMM},
		{cellWeightBag, round2(doc.Result.WeightPerBagKG)},
		{cellFinished, round2(doc.Result.FinishedWeightKG)},
		{cellTotal, round2(doc.Result.TotalWeightKG)},
		{cellSideGlue, round2(doc.Result.SideGlueKG)},
		{cellBottomGlue, round2(doc.Result.BottomGlueKG)},
		{cellInk, round2(doc.Result.InkKG)},
	}
	for _, c := range cells {
		if err := f.SetCellValue(sheet, c.ref, c.value); err != nil {
			return fmt.Errorf("setting cell %s: %w", c.ref, err)
		}
	}

	for i, color := range doc.Job.Colors {
		ref, err := excelize.CoordinatesToCellName(firstColorCol+i*2, colorRow)
		if err != nil {
			return fmt.Errorf("locating color cell %d: %w", i+1, err)
		}
		if err := f.SetCellValue(sheet, ref, color); err != nil {
			return fmt.Errorf("setting color cell %s: %w", ref, err)
		}
	}
	return nil
}

// round2 rounds to two decimals. Only document output is rounded; the
// estimator keeps full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
