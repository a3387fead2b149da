package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/printhaus/bagbom/internal/config"
	"github.com/printhaus/bagbom/internal/export"
	"github.com/printhaus/bagbom/internal/importer"
	"github.com/printhaus/bagbom/internal/jobnumber"
	"github.com/printhaus/bagbom/internal/model"
)

var estimateFlags struct {
	customer string
	email    string
	mobile   string
	jobName  string
	jobType  string
	width    float64
	bottom   float64
	height   float64
	gsm      float64
	quantity int
	colors   []string
	ticket   bool
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate a job and write its BOM workbook",
	Long: `Collects the job details, assigns the next job number, computes the
machine setup and material quantities, and writes the BOM workbook to
the save directory with a copy in the backup directory.

Without flags an interactive form is shown. With --customer the job is
taken entirely from flags for scripted use.`,
	RunE: runEstimate,
}

func init() {
	f := estimateCmd.Flags()
	f.StringVar(&estimateFlags.customer, "customer", "", "customer name (enables non-interactive mode)")
	f.StringVar(&estimateFlags.email, "email", "", "customer email")
	f.StringVar(&estimateFlags.mobile, "mobile", "", "customer mobile number")
	f.StringVar(&estimateFlags.jobName, "job-name", "", "job name")
	f.StringVar(&estimateFlags.jobType, "job-type", string(model.JobTypeSOS), "bag style")
	f.Float64Var(&estimateFlags.width, "width", 0, "bag width (in)")
	f.Float64Var(&estimateFlags.bottom, "bottom", 0, "bag bottom (in)")
	f.Float64Var(&estimateFlags.height, "height", 0, "bag height (in)")
	f.Float64Var(&estimateFlags.gsm, "gsm", 0, "paper grammage (g/m2)")
	f.IntVar(&estimateFlags.quantity, "quantity", 0, "number of bags")
	f.StringSliceVar(&estimateFlags.colors, "color", nil, "printed color name (repeatable, up to 6)")
	f.BoolVar(&estimateFlags.ticket, "ticket", false, "also write a QR-coded PDF job ticket")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	catalog, err := importer.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	var job model.Job
	if estimateFlags.customer != "" {
		job, err = jobFromFlags()
	} else {
		job, err = jobFromForm()
	}
	if err != nil {
		return err
	}

	gen := jobnumber.Generator{Latest: jobnumber.DirStore{Dir: cfg.BackupDir}.Latest}
	now := time.Now()
	number, err := gen.Next(now)
	if err != nil {
		return err
	}

	result, err := model.Estimate(job.Spec, catalog)
	if err != nil {
		return err
	}

	doc := export.Document{JobNumber: number, Job: job, Result: result, IssuedAt: now}
	savedPath, err := export.WriteBOM(cfg.TemplatePath, cfg.SaveDir, cfg.BackupDir, doc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("Job "+number))
	printRow(out, "Actual height", "%.2f mm", result.ActualHeightMM)
	printRow(out, "Cylinder", "%.0f mm", result.CylinderMM)
	printRow(out, "Paper roll", "%.0f mm", result.PaperRollMM)
	printRow(out, "Weight per bag", "%.4f kg", result.WeightPerBagKG)
	printRow(out, "Finished weight", "%.2f kg", result.FinishedWeightKG)
	printRow(out, "Weight incl. waste", "%.2f kg", result.TotalWeightKG)
	printRow(out, "Side glue", "%.2f kg", result.SideGlueKG)
	printRow(out, "Bottom glue", "%.2f kg", result.BottomGlueKG)
	printRow(out, "Ink", "%.2f kg", result.InkKG)
	fmt.Fprintln(out, successStyle.Render("Saved "+savedPath))

	if estimateFlags.ticket {
		ticketPath := strings.TrimSuffix(savedPath, ".xlsx") + "_ticket.pdf"
		if err := export.WriteTicket(ticketPath, doc); err != nil {
			return err
		}
		fmt.Fprintln(out, successStyle.Render("Saved "+ticketPath))
	}
	return nil
}

func printRow(out io.Writer, label, format string, v float64) {
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render(label), fmt.Sprintf(format, v))
}

// jobFromFlags builds and validates a job from command-line flags.
func jobFromFlags() (model.Job, error) {
	spec := model.JobSpec{
		WidthIn:  estimateFlags.width,
		BottomIn: estimateFlags.bottom,
		HeightIn: estimateFlags.height,
		GSM:      estimateFlags.gsm,
		Quantity: estimateFlags.quantity,
	}
	if err := spec.Validate(); err != nil {
		return model.Job{}, err
	}
	if err := model.ValidateCustomer(estimateFlags.customer, estimateFlags.email, estimateFlags.mobile); err != nil {
		return model.Job{}, err
	}
	if err := model.ValidateJobName(estimateFlags.jobName); err != nil {
		return model.Job{}, err
	}
	if err := model.ValidateColors(len(estimateFlags.colors), estimateFlags.colors); err != nil {
		return model.Job{}, err
	}
	jobType, err := parseJobType(estimateFlags.jobType)
	if err != nil {
		return model.Job{}, err
	}

	job := model.NewJob(strings.TrimSpace(estimateFlags.jobName), jobType, spec)
	job.CustomerName = strings.TrimSpace(estimateFlags.customer)
	job.CustomerEmail = strings.TrimSpace(estimateFlags.email)
	job.CustomerMobile = strings.TrimSpace(estimateFlags.mobile)
	job.Colors = trimAll(estimateFlags.colors)
	return job, nil
}

func parseJobType(s string) (model.JobType, error) {
	for _, jt := range model.JobTypes {
		if strings.EqualFold(s, string(jt)) {
			return jt, nil
		}
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

func parsePositiveInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	return v, nil
}

func parseFloatField(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}
