package animals

import "boi-na-nuvem/internal/domain/display"

var StatusIndicators = map[Status]display.Indicator{
	StatusActive:     {Label: "Ativo", Icon: "check-circle", Color: display.ColorSuccess},
	StatusSold:       {Label: "Vendido", Icon: "currency-dollar", Color: display.ColorInfo},
	StatusDead:       {Label: "Morto", Icon: "x-circle", Color: display.ColorDanger},
	StatusQuarantine: {Label: "Quarentena", Icon: "alert-triangle", Color: display.ColorWarning},
}

var PhaseIndicators = map[Phase]display.Indicator{
	PhaseCalf:   {Label: "Bezerro", Icon: "baby", Color: display.ColorInfo},
	PhaseHeifer: {Label: "Novilha", Icon: "cow", Color: display.ColorPrimary},
	PhaseSteer:  {Label: "Garrote", Icon: "cow", Color: display.ColorPrimary},
	PhaseCow:    {Label: "Vaca", Icon: "cow", Color: display.ColorSuccess},
	PhaseBull:   {Label: "Touro", Icon: "bull", Color: display.ColorDanger},
}

func (s Status) Valid() bool {
	_, ok := StatusIndicators[s]
	return ok
}

func (p Phase) Valid() bool {
	_, ok := PhaseIndicators[p]
	return ok
}

func (s Status) Indicator() display.Indicator { return display.Lookup(StatusIndicators, s) }

func (p Phase) Indicator() display.Indicator { return display.Lookup(PhaseIndicators, p) }
