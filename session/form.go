package session

import "errors"

var ErrFlowNotComplete = errors.New("flow is not on its last step")
var ErrNoActiveFlow = errors.New("no multi-step flow in progress")

// StepForm is a bounded 1..Total step counter. Field values are not kept.
type StepForm struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

func NewStepForm(total int) *StepForm {
	if total < 1 {
		total = 1
	}
	return &StepForm{Current: 1, Total: total}
}

// Next advances one step; a no-op on the last step.
func (f *StepForm) Next() {
	if f.Current < f.Total {
		f.Current++
	}
}

// Previous goes back one step; a no-op on the first step.
func (f *StepForm) Previous() {
	if f.Current > 1 {
		f.Current--
	}
}

func (f *StepForm) Reset() { f.Current = 1 }

func (f *StepForm) CanGoBack() bool { return f.Current > 1 }

func (f *StepForm) IsLast() bool { return f.Current == f.Total }

// Progress is the share of the step track already passed, 0..100.
func (f *StepForm) Progress() int {
	if f.Total <= 1 {
		return 100
	}
	return (f.Current - 1) * 100 / (f.Total - 1)
}

// Flow names a multi-step sequence and the view that hosts it.
type Flow string

const (
	FlowNone              Flow = ""
	FlowRegistration      Flow = "registration"
	FlowProjectSubmission Flow = "project-submission"
)

type flowDef struct {
	view   ViewID
	steps  []string
	onDone ViewID
}

var flows = map[Flow]flowDef{
	FlowRegistration: {
		view:  ViewRegister,
		steps: []string{"Datos de la cuenta", "Verificación de correo"},
	},
	FlowProjectSubmission: {
		view:   ViewNewProject,
		steps:  []string{"Datos Generales", "Impacto Social", "Finanzas", "Validación"},
		onDone: ViewEntrepreneurDashboard,
	},
}

// Steps returns the step titles of a flow.
func (fl Flow) Steps() []string {
	def := flows[fl]
	out := make([]string, len(def.steps))
	copy(out, def.steps)
	return out
}

// View is the screen hosting the flow.
func (fl Flow) View() ViewID { return flows[fl].view }

func flowForView(v ViewID) Flow {
	for fl, def := range flows {
		if def.view == v {
			return fl
		}
	}
	return FlowNone
}
