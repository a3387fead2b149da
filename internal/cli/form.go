package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/printhaus/bagbom/internal/model"
)

// jobFromForm collects a job interactively. Field validators give
// immediate feedback inside the form; the model validators run once
// more on the assembled job so the form and flag paths enforce the
// same rules.
func jobFromForm() (model.Job, error) {
	var (
		customer, email, mobile, jobName string
		jobType                          = string(model.JobTypeSOS)
		width, bottom, height, gsm, qty  string
		printing                         int
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Customer Name").Value(&customer).
				Validate(nonEmpty("customer name")),
			huh.NewInput().Title("Customer Email").Value(&email),
			huh.NewInput().Title("Customer Mobile").Value(&mobile),
			huh.NewInput().Title("Job Name").Value(&jobName),
		).Title("Customer"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Job Type").
				Options(jobTypeOptions()...).Value(&jobType),
			huh.NewInput().Title("Width (in)").Value(&width).
				Validate(rangeValidator("width", model.MinWidthIn, model.MaxWidthIn)),
			huh.NewInput().Title("Bottom (in)").Value(&bottom).
				Validate(rangeValidator("bottom", model.MinBottomIn, model.MaxBottomIn)),
			huh.NewInput().Title("Height (in)").Value(&height).
				Validate(rangeValidator("height", model.MinHeightIn, model.MaxHeightIn)),
			huh.NewInput().Title("GSM").Value(&gsm).
				Validate(rangeValidator("gsm", model.MinGSM, model.MaxGSM)),
			huh.NewInput().Title("Quantity").Value(&qty).
				Validate(quantityValidator),
			huh.NewSelect[int]().Title("Printing (colors)").
				Description("0 means no printing").
				Options(printingOptions()...).Value(&printing),
		).Title("Job Details"),
	)
	if err := form.Run(); err != nil {
		return model.Job{}, err
	}

	colors, err := colorsFromForm(printing)
	if err != nil {
		return model.Job{}, err
	}

	spec := model.JobSpec{}
	if spec.WidthIn, err = parseFloatField(width); err != nil {
		return model.Job{}, err
	}
	if spec.BottomIn, err = parseFloatField(bottom); err != nil {
		return model.Job{}, err
	}
	if spec.HeightIn, err = parseFloatField(height); err != nil {
		return model.Job{}, err
	}
	if spec.GSM, err = parseFloatField(gsm); err != nil {
		return model.Job{}, err
	}
	if spec.Quantity, err = parsePositiveInt(qty); err != nil {
		return model.Job{}, err
	}

	if err := spec.Validate(); err != nil {
		return model.Job{}, err
	}
	if err := model.ValidateCustomer(customer, email, mobile); err != nil {
		return model.Job{}, err
	}
	if err := model.ValidateJobName(jobName); err != nil {
		return model.Job{}, err
	}
	if err := model.ValidateColors(printing, colors); err != nil {
		return model.Job{}, err
	}

	job := model.NewJob(strings.TrimSpace(jobName), model.JobType(jobType), spec)
	job.CustomerName = strings.TrimSpace(customer)
	job.CustomerEmail = strings.TrimSpace(email)
	job.CustomerMobile = strings.TrimSpace(mobile)
	job.Colors = colors
	return job, nil
}

// colorsFromForm asks for one color name per printed color. The field
// count depends on the printing selection, so this runs as a second
// form.
func colorsFromForm(printing int) ([]string, error) {
	if printing == 0 {
		return nil, nil
	}
	values := make([]string, printing)
	fields := make([]huh.Field, printing)
	for i := range fields {
		fields[i] = huh.NewInput().
			Title(fmt.Sprintf("Color %d", i+1)).
			Value(&values[i]).
			Validate(nonEmpty(fmt.Sprintf("color %d", i+1)))
	}
	if err := huh.NewForm(huh.NewGroup(fields...).Title("Color Details")).Run(); err != nil {
		return nil, err
	}
	return trimAll(values), nil
}

func jobTypeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(model.JobTypes))
	for i, jt := range model.JobTypes {
		opts[i] = huh.NewOption(string(jt), string(jt))
	}
	return opts
}

func printingOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], model.MaxColors+1)
	for i := 0; i <= model.MaxColors; i++ {
		opts[i] = huh.NewOption(fmt.Sprint(i), i)
	}
	return opts
}

func nonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func rangeValidator(field string, min, max float64) func(string) error {
	return func(s string) error {
		v, err := parseFloatField(s)
		if err != nil {
			return err
		}
		if v < min || v > max {
			return fmt.Errorf("%s must be between %g and %g", field, min, max)
		}
		return nil
	}
}

func quantityValidator(s string) error {
	v, err := parsePositiveInt(s)
	if err != nil {
		return err
	}
	if v < model.MinQuantity {
		return fmt.Errorf("quantity must be at least %d", model.MinQuantity)
	}
	return nil
}
