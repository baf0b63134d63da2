package parser

import "github.com/hammamikhairi/shotgraph/internal/domain"

var propTable = tableOf(map[domain.PropKey]parseFunc[domain.Value]{
	domain.PropExitIf:                 boolValue,
	domain.PropFlow:                   numberValue,
	domain.PropVolume:                 numberValue,
	domain.PropMaxFlowOrPressureRange: numberValue,
	domain.PropTransition:             transitionValue,
	domain.PropExitFlowUnder:          numberValue,
	domain.PropTemperature:            numberValue,
	domain.PropName:                   textValue,
	domain.PropPressure:               numberValue,
	domain.PropSensor:                 sensorValue,
	domain.PropPump:                   pumpValue,
	domain.PropExitType:               exitTypeValue,
	domain.PropExitFlowOver:           numberValue,
	domain.PropExitPressureOver:       numberValue,
	domain.PropMaxFlowOrPressure:      numberValue,
	domain.PropExitPressureUnder:      numberValue,
	domain.PropSeconds:                numberValue,
	domain.PropWeight:                 numberValue,
})

// tableOf indexes value parsers by the key's source spelling.
func tableOf[K interface {
	comparable
	String() string
}](values map[K]parseFunc[domain.Value]) map[string]entry[K] {
	out := make(map[string]entry[K], len(values))
	for k, v := range values {
		out[k.String()] = entry[K]{key: k, value: v}
	}
	return out
}

var propPair = keyed(propTable, stepUnknownValue)

// prop reads one `key value` pair inside a step.
func prop(in string) (domain.Prop, string, error) {
	p, rest, err := propPair(in)
	if err != nil {
		return domain.Prop{}, in, err
	}
	if !p.known {
		return domain.Prop{Key: domain.PropUnknown, Ident: p.ident, Value: p.value}, rest, nil
	}
	return domain.Prop{Key: p.key, Value: p.value}, rest, nil
}

var props = list(prop)
