package wizard

import "github.com/hackovate/judging-portal/services"

// ServiceDirectory bundles the portal's read services into the Directory the
// flow selects from.
type ServiceDirectory struct {
	services.EvaluatorService
	services.TeamService
	services.RoundService
	services.ParameterService
}

var _ Directory = ServiceDirectory{}
