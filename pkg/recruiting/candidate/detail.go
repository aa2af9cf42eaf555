package candidate

import (
	"github.com/talenta-pe/talenta/pkg/recruiting/application"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview"
	"github.com/talenta-pe/talenta/pkg/recruiting/position"
)

// Detail es la vista agregada de un candidato: el candidato, su postulación
// más reciente con sus entrevistas, y la vacante ligada si la hay. Es la
// lectura sobre la que trabajan la agenda de entrevistas y la contratación.
type Detail struct {
	Candidate         Candidate                `json:"candidate"`
	LatestApplication *application.Application `json:"latest_application,omitempty"`
	Interviews        []interview.Interview    `json:"interviews"`
	Position          *position.Position       `json:"position,omitempty"`
}

// HasApplication indica si el candidato tiene al menos una postulación
func (d *Detail) HasApplication() bool {
	return d.LatestApplication != nil
}
