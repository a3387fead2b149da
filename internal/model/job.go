package model

import "github.com/google/uuid"

// JobType identifies the bag construction style for a print job.
type JobType string

const (
	JobTypeSOS       JobType = "SOS"
	JobTypeCarryBag  JobType = "Carry Bag"
	JobTypeVBottom   JobType = "V-Bottom"
	JobTypeThumbCut  JobType = "Thumb Cut"
	JobTypeSquareCut JobType = "Square Cut"
)

// JobTypes lists the supported bag styles in menu order.
var JobTypes = []JobType{JobTypeSOS, JobTypeCarryBag, JobTypeVBottom, JobTypeThumbCut, JobTypeSquareCut}

// JobSpec holds the validated dimensional inputs for one print job.
// Dimensions are in inches, grammage in g/m2, quantity in bags.
type JobSpec struct {
	WidthIn  float64 `json:"width_in"`
	BottomIn float64 `json:"bottom_in"`
	HeightIn float64 `json:"height_in"`
	GSM      float64 `json:"gsm"`
	Quantity int     `json:"quantity"`
}

// Job ties the customer details and the job specification together.
type Job struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	CustomerName   string   `json:"customer_name"`
	CustomerEmail  string   `json:"customer_email"`
	CustomerMobile string   `json:"customer_mobile"`
	Type           JobType  `json:"type"`
	Spec           JobSpec  `json:"spec"`
	Colors         []string `json:"colors,omitempty"` // One entry per printed color; empty for unprinted jobs
}

func NewJob(name string, jobType JobType, spec JobSpec) Job {
	return Job{
		ID:   uuid.New().String()[:8],
		Name: name,
		Type: jobType,
		Spec: spec,
	}
}

// Printed reports whether the job carries any printed colors.
func (j Job) Printed() bool {
	return len(j.Colors) > 0
}
